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

package cartridge

// Mirroring describes how the four logical nametables are mapped onto
// physical nametable memory.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	SingleLower
	SingleUpper
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SingleLower:
		return "single (lower)"
	case SingleUpper:
		return "single (upper)"
	case FourScreen:
		return "four screen"
	}
	return "unknown"
}

// physical nametable for each logical nametable
var mirroringLayout = [...][4]int{
	Horizontal:  {0, 0, 1, 1},
	Vertical:    {0, 1, 0, 1},
	SingleLower: {0, 0, 0, 0},
	SingleUpper: {1, 1, 1, 1},
	FourScreen:  {0, 1, 2, 3},
}

// Nametable returns the physical nametable for a logical nametable (0 to 3).
// The physical nametable will be 0 or 1 for every mirroring mode except
// FourScreen.
func (m Mirroring) Nametable(logical int) int {
	if m < Horizontal || m > FourScreen {
		m = Horizontal
	}
	return mirroringLayout[m][logical&0x03]
}
