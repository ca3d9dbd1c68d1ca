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

package cpu_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/test"
)

// the functional test program is assembled to start at $0400 and to loop
// forever at $336D when every test has passed. any other loop is a failure
const (
	functionalEntry   = addresses.Absolute(0x0400)
	functionalSuccess = addresses.Absolute(0x336d)
)

func TestFunctional(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "6502_functional_test.bin"))
	if err != nil {
		t.Skipf("functional test program not available: %v", err)
	}

	mem := memory.NewFlatMemory(0x10000)
	test.DemandSuccess(t, mem.Load(0x0000, data))

	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.LoadPC(functionalEntry)

	err = mc.Run(context.Background(), nil)
	address, ok := cpu.InfiniteLoopAddress(err)
	if !ok {
		t.Fatalf("unexpected error: %v", err)
	}
	if address != functionalSuccess {
		t.Fatalf("trapped at %04X after %d cycles: %s", uint16(address), mc.Cycles, mc)
	}
}
