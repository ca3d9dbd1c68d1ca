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

package television

import "image/color"

// Effects are the colour effects that can be applied to a pixel.
type Effects struct {
	Grayscale      bool
	EmphasizeRed   bool
	EmphasizeGreen bool
	EmphasizeBlue  bool
}

// PaletteSize is the number of entries in the system palette.
const PaletteSize = 64

// the grayscale effect masks out the hue of the palette index
const grayscaleMask = 0x30

// SystemPalette is the colour of each palette index.
var SystemPalette = [PaletteSize]color.RGBA{
	{0x54, 0x54, 0x54, 0xff}, {0x00, 0x1e, 0x74, 0xff}, {0x08, 0x10, 0x90, 0xff}, {0x30, 0x00, 0x88, 0xff},
	{0x44, 0x00, 0x64, 0xff}, {0x5c, 0x00, 0x30, 0xff}, {0x54, 0x04, 0x00, 0xff}, {0x3c, 0x18, 0x00, 0xff},
	{0x20, 0x2a, 0x00, 0xff}, {0x08, 0x3a, 0x00, 0xff}, {0x00, 0x40, 0x00, 0xff}, {0x00, 0x3c, 0x00, 0xff},
	{0x00, 0x32, 0x3c, 0xff}, {0x00, 0x00, 0x00, 0xff}, {0x00, 0x00, 0x00, 0xff}, {0x00, 0x00, 0x00, 0xff},
	{0x98, 0x96, 0x98, 0xff}, {0x08, 0x4c, 0xc4, 0xff}, {0x30, 0x32, 0xec, 0xff}, {0x5c, 0x1e, 0xe4, 0xff},
	{0x88, 0x14, 0xb0, 0xff}, {0xa0, 0x14, 0x64, 0xff}, {0x98, 0x22, 0x20, 0xff}, {0x78, 0x3c, 0x00, 0xff},
	{0x54, 0x5a, 0x00, 0xff}, {0x28, 0x72, 0x00, 0xff}, {0x08, 0x7c, 0x00, 0xff}, {0x00, 0x76, 0x28, 0xff},
	{0x00, 0x74, 0x88, 0xff}, {0x00, 0x00, 0x00, 0xff}, {0x00, 0x00, 0x00, 0xff}, {0x00, 0x00, 0x00, 0xff},
	{0xec, 0xee, 0xec, 0xff}, {0x4c, 0x9a, 0xec, 0xff}, {0x78, 0x7c, 0xec, 0xff}, {0xb0, 0x62, 0xec, 0xff},
	{0xe4, 0x54, 0xec, 0xff}, {0xec, 0x58, 0xb4, 0xff}, {0xec, 0x6a, 0x64, 0xff}, {0xd4, 0x88, 0x20, 0xff},
	{0xa0, 0xaa, 0x00, 0xff}, {0x74, 0xc4, 0x00, 0xff}, {0x4c, 0xd0, 0x20, 0xff}, {0x38, 0xcc, 0x6c, 0xff},
	{0x38, 0xc2, 0xcc, 0xff}, {0x3c, 0x3c, 0x3c, 0xff}, {0x00, 0x00, 0x00, 0xff}, {0x00, 0x00, 0x00, 0xff},
	{0xec, 0xee, 0xec, 0xff}, {0xa8, 0xcc, 0xec, 0xff}, {0xbc, 0xbc, 0xec, 0xff}, {0xd4, 0xb2, 0xec, 0xff},
	{0xec, 0xae, 0xec, 0xff}, {0xec, 0xae, 0xd4, 0xff}, {0xec, 0xba, 0xa8, 0xff}, {0xe4, 0xc4, 0x90, 0xff},
	{0xcc, 0xd2, 0x78, 0xff}, {0xb4, 0xde, 0x78, 0xff}, {0xa8, 0xe2, 0x90, 0xff}, {0x98, 0xe2, 0xb4, 0xff},
	{0xa0, 0xe2, 0xe2, 0xff}, {0xa0, 0xa2, 0xa0, 0xff}, {0x00, 0x00, 0x00, 0xff}, {0x00, 0x00, 0x00, 0xff},
}

// Colour returns the colour of the palette index with the effects applied.
// Emphasis is approximated by halving the intensity of the other two
// components.
func Colour(index uint8, effects Effects) color.RGBA {
	if effects.Grayscale {
		index &= grayscaleMask
	}

	col := SystemPalette[index%PaletteSize]

	if effects.EmphasizeRed {
		col.G /= 2
		col.B /= 2
	}
	if effects.EmphasizeGreen {
		col.R /= 2
		col.B /= 2
	}
	if effects.EmphasizeBlue {
		col.R /= 2
		col.G /= 2
	}

	return col
}
