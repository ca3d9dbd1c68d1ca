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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address addresses.Absolute

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. will be equal to
	// Defn.Bytes once the instruction has been decoded
	ByteCount int

	// the operand bytes of the instruction. for one byte operands only the
	// low byte is used
	InstructionData uint16

	// the address used by the instruction to access memory, after indexing
	// and indirection. not valid for immediate, implied or accumulator
	// addressing modes
	EffectiveAddress addresses.Absolute

	// the actual number of cycles taken by the instruction. this includes the
	// seven cycles of an NMI serviced before the instruction
	Cycles int

	// whether an extra cycle was required because of 8 bit addition overflow
	PageFault bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug string

	// whether branch instruction test passed (ie. branched) or not
	BranchSuccess bool

	// whether an NMI was serviced before the instruction
	NMI bool

	// whether this data has been finalised. Result is only valid once this
	// field is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%s: undecoded instruction", r.Address)
	}
	return fmt.Sprintf("%s: %s (%d cycles)", r.Address, r.Defn.Mnemonic, r.Cycles)
}

// IndirectJMPBug is the value of CPUBug when the JMP indirect page wrap is triggered.
const IndirectJMPBug = "indirect addressing bug (JMP bug)"
