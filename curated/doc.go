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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what distinguishes one curated error from another. Packages
// that produce curated errors export their patterns as constants so that
// callers can test for them without resorting to string matching:
//
//	const IllegalOpcode = "cpu: illegal opcode $%02X at $%04X"
//
//	err := curated.Errorf(IllegalOpcode, 0x02, 0xc000)
//	if curated.Is(err, IllegalOpcode) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A chain is formed by using a curated error as one of the
// placeholder values of another curated error:
//
//	f := curated.Errorf("nes: %v", err)
//	curated.Has(f, IllegalOpcode) // true
//	curated.Is(f, IllegalOpcode)  // false
//
// The values given to Errorf() are retained and can be retrieved with Values().
// This is how the cpu package recovers the address of an infinite loop from
// the error it returned.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not begin with
// duplicate adjacent parts. For example, wrapping a "cpu: ..." error with the
// pattern "cpu: %v" results in a message with only one "cpu: " prefix.
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
