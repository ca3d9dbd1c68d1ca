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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/cpu"
)

// FormatResult creates an Entry from the current state of the CPU. It should
// be called from the CPU's trace callback, when the LastResult field describes
// the decoded instruction and the registers have not yet been changed by it.
func FormatResult(mc *cpu.CPU) *Entry {
	e := &Entry{
		Result: mc.LastResult,
		Cycles: mc.Cycles,
	}
	e.format(mc, mc.X.Value())
	e.Registers = fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.Status.Value(), mc.SP.Value())
	return e
}
