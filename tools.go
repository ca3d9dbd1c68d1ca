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


package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/jetsetilly/gopher2a03/basic"
	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/terminal/easyterm"
)

// default values for the TRACE mode are suitable for the nestest ROM
const (
	defaultTraceEntry    = 0xc000
	defaultTraceCycles   = 26554
	defaultTraceMismatch = 15
)

// default values for the FUNCTIONAL mode are suitable for the 6502
// functional test program
const (
	defaultFunctionalEntry   = 0x0400
	defaultFunctionalSuccess = 0x336d
)

func singleArg(md *modalflag.Modes, what string) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("%s required for %s mode", what, md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func basicMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
	}

	filename, err := singleArg(md, "BASIC ROM image")
	if err != nil {
		return err
	}

	rom, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	bas, err := basic.NewInterpreter(rom, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	// characters are sent to the interpreter as they are typed. this is only
	// possible if stdin is a terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		var easy easyterm.Terminal
		if err := easy.Initialise(os.Stdin, os.Stdout); err != nil {
			return err
		}
		if err := easy.CBreakMode(); err != nil {
			return err
		}
		defer easy.CanonicalMode()

		// the interpreter can't be interrupted while it waits for input so
		// ctrl-c restores the terminal and quits immediately
		sync.state <- stateRequest{req: reqNoIntSig}
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Stop(intChan)
		go func() {
			if _, ok := <-intChan; ok {
				_ = easy.CanonicalMode()
				fmt.Print("\r\n")
				sync.state <- stateRequest{req: reqQuit}
			}
		}()
	}

	return bas.Run(context.Background())
}

func trace(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	entry := md.AddAddress("entry", defaultTraceEntry, "address at which to start execution")
	cycles := md.AddInt("cycles", defaultTraceCycles, "stop once the cycle count reaches this value")
	compare := md.AddString("compare", "", "compare the trace with a reference log")
	mismatch := md.AddInt("mismatch", defaultTraceMismatch, "number of characters that can differ in each line")
	output := md.AddString("o", "", "write the trace to file rather than stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := singleArg(md, "NES file")
	if err != nil {
		return err
	}

	_, cart, err := loadCartridge(filename)
	if err != nil {
		return err
	}

	w, closeOutput, err := createOutput(*output, stdout)
	if err != nil {
		return err
	}

	// keep a copy of the trace if it is to be compared
	var actual bytes.Buffer
	if *compare != "" {
		w = io.MultiWriter(w, &actual)
	}

	// the CPU is run without the PPU or APU
	mem := memory.NewSystemBus(nil, nil, nil, cart)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.LoadPC(addresses.Absolute(*entry))

	tr := disassembly.NewTracer(w)
	tr.Attach(mc)

	// the CPU is stopped once the traced cycle count reaches the limit. the
	// CPU can also stop because of an illegal opcode or an infinite loop
	err = mc.Run(context.Background(), func(mc *cpu.CPU) bool {
		return tr.Last == nil || tr.Last.Cycles < uint64(*cycles)
	})
	if cerr := closeOutput(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if err := tr.Err(); err != nil {
		return err
	}

	if *compare == "" {
		return nil
	}

	expected, err := os.ReadFile(*compare)
	if err != nil {
		return err
	}

	err = disassembly.Compare(&actual, bytes.NewReader(expected), *mismatch)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "trace matches %s (%d lines)\n", *compare, tr.Lines)
	return nil
}

func functional(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	entry := md.AddAddress("entry", defaultFunctionalEntry, "address at which to start execution")
	success := md.AddAddress("success", defaultFunctionalSuccess, "address of the infinite loop that indicates success")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := singleArg(md, "binary file")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	mem := memory.NewFlatMemory(0x10000)
	if err := mem.Load(0x0000, data); err != nil {
		return err
	}

	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.LoadPC(addresses.Absolute(*entry))

	err = mc.Run(context.Background(), nil)

	address, ok := cpu.InfiniteLoopAddress(err)
	if !ok {
		return err
	}
	if address != addresses.Absolute(*success) {
		return fmt.Errorf("trapped at $%04X after %d cycles: %s", uint16(address), mc.Cycles, mc)
	}

	fmt.Fprintf(stdout, "success at $%04X after %d cycles\n", uint16(address), mc.Cycles)
	return nil
}

func info(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := singleArg(md, "NES file")
	if err != nil {
		return err
	}

	cl := cartridgeloader.NewLoader(filename)
	if err := cl.Load(); err != nil {
		return err
	}
	if !cl.IsINES {
		return fmt.Errorf("%s is not an iNES file", filename)
	}

	fmt.Fprintf(stdout, "file:      %s\n", cl.ShortName())
	fmt.Fprintf(stdout, "PRG banks: %d (16K)\n", cl.PRGBanks())
	if cl.CHRBanks() == 0 {
		fmt.Fprintf(stdout, "CHR banks: 0 (CHR RAM)\n")
	} else {
		fmt.Fprintf(stdout, "CHR banks: %d (8K)\n", cl.CHRBanks())
	}

	// the mapping and mirroring at power-on can only be reported for the
	// mappers that are implemented
	m, err := cartridge.NewMapper(cl)
	if err != nil {
		fmt.Fprintf(stdout, "mapper:    %s (unsupported)\n", cartridge.MapperName(cl.Mapper))
	} else {
		fmt.Fprintf(stdout, "mapper:    %s\n", cartridge.MapperName(cl.Mapper))
		fmt.Fprintf(stdout, "mapping:   %s\n", m.MappedBanks())
		fmt.Fprintf(stdout, "mirroring: %s\n", m.Mirroring())
	}
	if cl.Battery {
		fmt.Fprintf(stdout, "battery:   yes\n")
	}
	fmt.Fprintf(stdout, "sha1:      %s\n", cl.Hash)

	return nil
}
