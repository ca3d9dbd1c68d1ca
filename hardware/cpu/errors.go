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

package cpu

import (
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
)

// Sentinal error patterns returned by Step().
const (
	IllegalOpcode = "cpu: illegal opcode $%02X at $%04X"
	InfiniteLoop  = "cpu: infinite loop at $%04X"
)

// InfiniteLoopAddress returns the address of the instruction that caused an
// InfiniteLoop error. The error can be wrapped by other curated errors. The
// boolean return value is false if the error is not an InfiniteLoop error.
func InfiniteLoopAddress(err error) (addresses.Absolute, bool) {
	e, ok := curated.Find(err, InfiniteLoop)
	if !ok {
		return 0, false
	}

	v := curated.Values(e)
	if len(v) != 1 {
		return 0, false
	}

	a, ok := v[0].(uint16)
	if !ok {
		return 0, false
	}

	return addresses.Absolute(a), true
}
