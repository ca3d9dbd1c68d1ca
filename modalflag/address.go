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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// addressValue implements the flag.Value interface for 16 bit addresses.
type addressValue uint16

func (a *addressValue) String() string {
	return fmt.Sprintf("$%04x", uint16(*a))
}

func (a *addressValue) Set(s string) error {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return fmt.Errorf("not a 16 bit address")
	}
	*a = addressValue(v)

	return nil
}

// AddAddress flag for next call to Parse(). The address can be written as a
// hexadecimal number prefixed with '$' or '0x', or as a decimal number.
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	v := value
	md.flags.Var((*addressValue)(&v), name, usage)
	return &v
}
