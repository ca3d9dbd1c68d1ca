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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/test"
)

// prepare a Modes instance in the same way as launch() would for the mode
// functions
func newModes(args ...string) *modalflag.Modes {
	md := &modalflag.Modes{Output: io.Discard}
	md.NewArgs(args)
	return md
}

// write an iNES file to the test's temporary directory. the PRG data is
// placed at the start of the first bank
func writeINES(t *testing.T, prgBanks int, chrBanks int, flags6 uint8, prg []uint8) string {
	t.Helper()

	data := make([]uint8, 16+prgBanks*0x4000+chrBanks*0x2000)
	copy(data, []uint8{'N', 'E', 'S', 0x1a, uint8(prgBanks), uint8(chrBanks), flags6})
	copy(data[16:], prg)

	// RESET vector points to $C000 for single bank images
	data[16+prgBanks*0x4000-4] = 0x00
	data[16+prgBanks*0x4000-3] = 0xc0

	filename := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o644))
	return filename
}

func TestInfo(t *testing.T) {
	filename := writeINES(t, 2, 0, 0x13, nil)

	var out bytes.Buffer
	err := info(newModes(filename), &out)
	test.DemandSuccess(t, err)

	s := out.String()
	test.ExpectSuccess(t, strings.Contains(s, "PRG banks: 2"), s)
	test.ExpectSuccess(t, strings.Contains(s, "CHR RAM"), s)
	test.ExpectSuccess(t, strings.Contains(s, "mapper:    MMC1 (001)\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, "mapping:   PRG: 0 1 CHR: 0 1\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, "mirroring: vertical"), s)
	test.ExpectSuccess(t, strings.Contains(s, "battery:   yes"), s)

	// an unimplemented mapper is named but the mapping isn't reported
	filename = writeINES(t, 1, 1, 0x40, nil)
	out.Reset()
	err = info(newModes(filename), &out)
	test.DemandSuccess(t, err)

	s = out.String()
	test.ExpectSuccess(t, strings.Contains(s, "mapper:    MMC3 (004) (unsupported)\n"), s)
	test.ExpectFailure(t, strings.Contains(s, "mapping:"), s)
	test.ExpectFailure(t, strings.Contains(s, "mirroring:"), s)
}

func TestInfoArguments(t *testing.T) {
	var out bytes.Buffer
	test.ExpectFailure(t, info(newModes(), &out))
	test.ExpectFailure(t, info(newModes("a.nes", "b.nes"), &out))
	test.ExpectFailure(t, info(newModes(filepath.Join(t.TempDir(), "missing.nes")), &out))
}

var traceProgram = []uint8{
	0xa9, 0x01, // LDA #$01
	0xa2, 0x02, // LDX #$02
	0xea,             // NOP
	0x4c, 0x00, 0xc0, // JMP $C000
}

func TestTrace(t *testing.T) {
	filename := writeINES(t, 1, 1, 0x00, traceProgram)
	reference := filepath.Join(t.TempDir(), "reference.log")

	var out bytes.Buffer
	err := trace(newModes("-cycles", "100", "-o", reference, filename), &out)
	test.DemandSuccess(t, err)

	// nothing is written to stdout when the trace goes to file
	test.ExpectEquality(t, out.Len(), 0)

	ref, err := os.ReadFile(reference)
	test.DemandSuccess(t, err)
	lines := strings.Split(strings.TrimSpace(string(ref)), "\n")
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "C000"), lines[0])
	test.ExpectSuccess(t, strings.Contains(lines[len(lines)-1], "CYC:"), lines[len(lines)-1])

	// a second trace of the same program matches the first. the trace is
	// also written to stdout so only the tail of the output is kept
	tail, err := test.NewRingWriter(256)
	test.DemandSuccess(t, err)
	err = trace(newModes("-cycles", "100", "-compare", reference, filename), tail)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tail.String(), "trace matches"), tail.String())

	// a longer trace doesn't match
	out.Reset()
	err = trace(newModes("-cycles", "200", "-compare", reference, filename), &out)
	test.ExpectFailure(t, err)
}

func TestTraceInfiniteLoop(t *testing.T) {
	filename := writeINES(t, 1, 1, 0x00, []uint8{0x4c, 0x00, 0xc0})

	out, err := test.NewCappedWriter(64)
	test.DemandSuccess(t, err)

	err = trace(newModes(filename), out)
	test.ExpectFailure(t, err)

	// the instruction is traced before the infinite loop is detected
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "C000  4C 00 C0  JMP $C000"), out.String())
}

// write a flat binary with the program at the address
func writeBinary(t *testing.T, address int, program []uint8) string {
	t.Helper()

	data := make([]uint8, address+len(program))
	copy(data[address:], program)

	filename := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o644))
	return filename
}

func TestFunctional(t *testing.T) {
	filename := writeBinary(t, 0x0400, []uint8{
		0xa9, 0x01, // LDA #$01
		0x4c, 0x02, 0x04, // JMP $0402
	})

	var out bytes.Buffer
	err := functional(newModes("-success", "$0402", filename), &out)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "success at $0402"), out.String())

	// the default success address is not where the program loops
	out.Reset()
	err = functional(newModes(filename), &out)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "trapped at $0402"), err.Error())
}

func TestFunctionalIllegalOpcode(t *testing.T) {
	filename := writeBinary(t, 0x0400, []uint8{0x02})

	var out bytes.Buffer
	err := functional(newModes("-success", "$0400", filename), &out)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, out.Len(), 0)
}
