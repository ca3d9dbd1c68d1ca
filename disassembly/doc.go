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

// Package disassembly formats CPU instructions for display. The format is the
// one used by the well known nestest.log file, which makes it possible to
// compare the execution of the emulated CPU with a reference trace.
//
// A typical line looks like this:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
//
// Unofficial instructions are marked with an asterisk in place of the space
// before the mnemonic.
//
// Entries are created from the state of the CPU with FormatResult(). The
// function should be called from the CPU's trace callback, before the
// instruction has been executed. The Tracer type does this and writes every
// line to an io.Writer. The Compare() function compares two traces.
//
// Decode() and Listing() disassemble memory without executing anything.
package disassembly
