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

package registers

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
)

// ProgramCounter represents the PC register in the 6502 CPU.
type ProgramCounter struct {
	value addresses.Absolute
}

// NewProgramCounter is the preferred method of initialisation for ProgramCounter.
func NewProgramCounter(val addresses.Absolute) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns the canonical name for the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%04X", uint16(pc.value))
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() addresses.Absolute {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val addresses.Absolute) {
	pc.value = val
}

// Add a signed value to the PC. The PC wraps around the 64K address space.
// Returns true if the new value is in a different page to the old value.
func (pc *ProgramCounter) Add(delta int) (pageCrossed bool) {
	v := pc.value
	pc.value = addresses.Offset(pc.value, delta)
	return v.Page() != pc.value.Page()
}
