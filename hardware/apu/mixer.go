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

package apu

// the non-linear mixing of the channels is approximated with two lookup
// tables. one for the combined pulse channels and one for the triangle,
// noise and DMC channels
var pulseTable [31]float32
var tndTable [203]float32

func init() {
	for i := range pulseTable {
		pulseTable[i] = float32(95.52 * float64(i) / (8128.0 + 100.0*float64(i)))
	}
	for i := range tndTable {
		tndTable[i] = float32(163.67 * float64(i) / (24329.0 + 100.0*float64(i)))
	}
}

func mix(pulse1, pulse2, triangle, noise, dmc uint8) float32 {
	p := int(pulse1) + int(pulse2)
	tnd := 3*int(triangle) + 2*int(noise) + int(dmc)
	return pulseTable[p%len(pulseTable)] + tndTable[tnd%len(tndTable)]
}
