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
	"bufio"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
)

// Tracer writes a line for every instruction executed by the CPU.
type Tracer struct {
	w     io.Writer
	err   error
	Lines int

	// the most recent entry
	Last *Entry
}

// NewTracer is the preferred method of initialisation for the Tracer type.
// The tracer is attached to the CPU with the Attach() function.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// Attach the tracer to the CPU. Any existing trace callback is replaced.
func (tr *Tracer) Attach(mc *cpu.CPU) {
	mc.SetTraceCallback(tr.trace)
}

func (tr *Tracer) trace(mc *cpu.CPU) {
	tr.Last = FormatResult(mc)
	if tr.err != nil {
		return
	}
	_, tr.err = io.WriteString(tr.w, fmt.Sprintf("%s\n", tr.Last))
	tr.Lines++
}

// Err returns the first error encountered when writing the trace.
func (tr *Tracer) Err() error {
	if tr.err != nil {
		return curated.Errorf("disassembly: %v", tr.err)
	}
	return nil
}

// Sentinal error patterns returned by Compare().
const (
	LineCountMismatch  = "disassembly: trace line counts differ (%d and %d)"
	LineLengthMismatch = "disassembly: trace line %d lengths differ\n  %s\n  %s"
	LineMismatch       = "disassembly: trace line %d differs in %d places\n  %s\n  %s"
)

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}
	return lines, nil
}

// Compare two traces line by line. Each pair of lines must be the same
// length and may differ in no more than tolerance characters. The number of
// lines in each trace must be the same.
//
// A tolerance is required because reference traces contain information that
// is not produced by the Tracer, such as the position of the PPU.
func Compare(actual io.Reader, expected io.Reader, tolerance int) error {
	a, err := readLines(actual)
	if err != nil {
		return err
	}
	b, err := readLines(expected)
	if err != nil {
		return err
	}

	if len(a) != len(b) {
		return curated.Errorf(LineCountMismatch, len(a), len(b))
	}

	for i := range a {
		if len(a[i]) != len(b[i]) {
			return curated.Errorf(LineLengthMismatch, i+1, a[i], b[i])
		}

		var n int
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				n++
			}
		}

		if n > tolerance {
			return curated.Errorf(LineMismatch, i+1, n, a[i], b[i])
		}
	}

	return nil
}
