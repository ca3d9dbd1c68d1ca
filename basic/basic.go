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


package basic

import (
	"bufio"
	"context"
	"io"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/logger"
)

// Addresses in the BASIC image.
const (
	ROMOrigin  = addresses.Absolute(0xc000)
	EntryPoint = addresses.Absolute(0xe07a)
	InputHook  = addresses.Absolute(0xe210)
	OutputHook = addresses.Absolute(0xe216)
)

// InputClosed is returned by the input hook when there is no more input. It
// stops the interpreter but Run() does not treat it as an error.
const InputClosed = "basic: input closed"

// special characters.
const (
	charLF        = 0x0a
	charCR        = 0x0d
	charBackspace = 0x7f
)

// Interpreter is a CPU connected to flat memory and a terminal.
type Interpreter struct {
	CPU *cpu.CPU
	Mem *memory.FlatMemory

	input  *bufio.Reader
	output io.Writer
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type. The ROM image is loaded at $C000.
func NewInterpreter(rom []uint8, input io.Reader, output io.Writer) (*Interpreter, error) {
	if len(rom) == 0 {
		return nil, curated.Errorf("basic: %v", "empty ROM image")
	}

	bas := &Interpreter{
		Mem:    memory.NewFlatMemory(int(ROMOrigin)),
		input:  bufio.NewReader(input),
		output: output,
	}

	if err := bas.Mem.Load(ROMOrigin, rom); err != nil {
		return nil, curated.Errorf("basic: %v", err)
	}

	bas.CPU = cpu.NewCPU(bas.Mem)
	bas.CPU.RegisterHook(InputHook, bas.getch)
	bas.CPU.RegisterHook(OutputHook, bas.putch)

	return bas, nil
}

// Run the interpreter from the entry point until the context is cancelled or
// the CPU stops with an error. An interpreter that stops in an infinite loop
// is an error.
func (bas *Interpreter) Run(ctx context.Context) error {
	bas.CPU.Reset()
	bas.CPU.LoadPC(EntryPoint)

	logger.Logf(logger.Allow, "basic", "starting at $%04X", uint16(EntryPoint))

	err := bas.CPU.Run(ctx, nil)
	if err != nil {
		if curated.Has(err, InputClosed) {
			return nil
		}
		return curated.Errorf("basic: %v", err)
	}
	return nil
}

// read a character into the A register. the character is echoed.
func (bas *Interpreter) getch(mc *cpu.CPU) error {
	ch, err := bas.input.ReadByte()
	if err != nil {
		if err == io.EOF {
			return curated.Errorf(InputClosed)
		}
		return err
	}

	if ch == charLF {
		ch = charCR
	}
	mc.A.Load(ch)

	if ch == charBackspace {
		_, err = io.WriteString(bas.output, "\b \b")
		return err
	}

	return bas.print(ch)
}

// write the character in the A register.
func (bas *Interpreter) putch(mc *cpu.CPU) error {
	return bas.print(mc.A.Value())
}

func (bas *Interpreter) print(ch uint8) error {
	switch ch {
	case charCR:
		return nil
	case charLF:
		_, err := io.WriteString(bas.output, "\r\n")
		return err
	}
	_, err := bas.output.Write([]byte{ch})
	return err
}
