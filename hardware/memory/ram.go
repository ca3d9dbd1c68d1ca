// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package memory

import "github.com/jetsetilly/gopher2a03/hardware/memory/addresses"

// the internal RAM of the console is 2K and is mirrored four times in the
// $0000 to $1fff range
type ram [addresses.RAMMask + 1]uint8

func (r *ram) read(address addresses.Absolute) uint8 {
	return r[address&addresses.RAMMask]
}

func (r *ram) write(address addresses.Absolute, data uint8) {
	r[address&addresses.RAMMask] = data
}
