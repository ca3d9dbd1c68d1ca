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

package disassembly_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2a03/test"
)

// the nestest ROM is run from $C000 without a PPU or APU until the cycle
// count reaches this value. the reference log ends at the same point
const nestestCycles = 26554

// the reference log includes the position of the PPU on every line, which
// the tracer does not produce. the log used by the test should be the
// version of the log without that information. the tolerance covers the
// remaining differences in the reference log
const nestestTolerance = 15

func TestNestest(t *testing.T) {
	expected, err := os.ReadFile(filepath.Join("testdata", "nestest.log"))
	if err != nil {
		t.Skipf("nestest log not available: %v", err)
	}

	cl := cartridgeloader.NewLoader(filepath.Join("testdata", "nestest.nes"))
	if err := cl.Load(); err != nil {
		t.Skipf("nestest ROM not available: %v", err)
	}

	cart, err := cartridge.NewMapper(cl)
	test.DemandSuccess(t, err)

	mem := memory.NewSystemBus(nil, nil, nil, cart)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.LoadPC(0xc000)

	actual := &bytes.Buffer{}
	tr := disassembly.NewTracer(actual)
	tr.Attach(mc)

	err = mc.Run(context.Background(), func(mc *cpu.CPU) bool {
		return tr.Last.Cycles < nestestCycles
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, tr.Err())

	err = disassembly.Compare(actual, bytes.NewReader(expected), nestestTolerance)
	test.ExpectSuccess(t, err)
}
