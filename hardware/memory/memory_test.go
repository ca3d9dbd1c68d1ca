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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/hardware/memory/bus"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2a03/test"
)

type mockPPU struct {
	regs [8]uint8
	oam  []uint8
	last addresses.Absolute
}

func (p *mockPPU) ReadRegister(reg addresses.Absolute, openBus uint8) uint8 {
	p.last = reg
	return p.regs[reg-addresses.PPUCTRL]
}

func (p *mockPPU) PeekRegister(reg addresses.Absolute, openBus uint8) uint8 {
	return p.regs[reg-addresses.PPUCTRL]
}

func (p *mockPPU) WriteRegister(reg addresses.Absolute, data uint8) {
	p.last = reg
	p.regs[reg-addresses.PPUCTRL] = data
}

func (p *mockPPU) WriteOAMDMA(page []uint8) {
	p.oam = append([]uint8{}, page...)
}

type mockAPU struct {
	writes map[addresses.Absolute]uint8
}

func (a *mockAPU) ReadStatus() uint8 { return 0x0f }
func (a *mockAPU) PeekStatus() uint8 { return 0x0f }
func (a *mockAPU) WriteRegister(reg addresses.Absolute, data uint8) {
	a.writes[reg] = data
}

type mockController struct {
	strobe uint8
	reads  int
}

func (c *mockController) Read() uint8 {
	c.reads++
	return 0x01
}

func (c *mockController) Peek() uint8 {
	return 0x01
}

func (c *mockController) Write(data uint8) {
	c.strobe = data
}

func newCart(t *testing.T) cartridge.Mapper {
	t.Helper()
	d := []byte{'N', 'E', 'S', 0x1a, 1, 1, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 0x4000)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0xc0
	d = append(d, prg...)
	d = append(d, make([]byte, 0x2000)...)

	cl, err := cartridgeloader.NewLoaderFromData("test.nes", d)
	test.DemandSuccess(t, err)
	m, err := cartridge.NewMapper(cl)
	test.DemandSuccess(t, err)
	return m
}

func TestInterfaces(t *testing.T) {
	var mem any = memory.NewSystemBus(nil, nil, nil, nil)
	_, ok := mem.(bus.CPUBus)
	test.ExpectSuccess(t, ok)
	_, ok = mem.(bus.DebugBus)
	test.ExpectSuccess(t, ok)

	mem = memory.NewFlatMemory(0x10000)
	_, ok = mem.(bus.CPUBus)
	test.ExpectSuccess(t, ok)
	_, ok = mem.(bus.DebugBus)
	test.ExpectSuccess(t, ok)
}

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewSystemBus(nil, nil, nil, nil)
	mem.Write(0x0001, 0x12)
	test.ExpectEquality(t, mem.Read(0x0801), 0x12)
	test.ExpectEquality(t, mem.Read(0x1001), 0x12)
	test.ExpectEquality(t, mem.Read(0x1801), 0x12)

	mem.Write(0x1fff, 0x34)
	test.ExpectEquality(t, mem.Read(0x07ff), 0x34)
}

func TestPPURegisters(t *testing.T) {
	ppu := &mockPPU{}
	mem := memory.NewSystemBus(ppu, nil, nil, nil)

	mem.Write(0x2000, 0x80)
	test.ExpectEquality(t, ppu.regs[0], 0x80)

	// mirrored every eight bytes
	mem.Write(0x3ff9, 0x1e)
	test.ExpectEquality(t, ppu.last, addresses.PPUMASK)
	test.ExpectEquality(t, ppu.regs[1], 0x1e)

	ppu.regs[2] = 0x80
	test.ExpectEquality(t, mem.Read(0x200a), 0x80)
	test.ExpectEquality(t, ppu.last, addresses.PPUSTATUS)
}

func TestOAMDMA(t *testing.T) {
	ppu := &mockPPU{}
	mem := memory.NewSystemBus(ppu, nil, nil, nil)

	for i := 0; i < 256; i++ {
		mem.Write(addresses.Absolute(0x0200+i), uint8(i))
	}
	mem.Write(addresses.OAMDMA, 0x02)

	test.DemandEquality(t, len(ppu.oam), 256)
	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, ppu.oam[i], uint8(i))
	}
}

func TestAPUAndController(t *testing.T) {
	apu := &mockAPU{writes: make(map[addresses.Absolute]uint8)}
	ctrl := &mockController{}
	mem := memory.NewSystemBus(nil, apu, ctrl, nil)

	mem.Write(addresses.Pulse1Ctrl, 0xbf)
	mem.Write(addresses.FrameCounter, 0x40)
	test.ExpectEquality(t, apu.writes[addresses.Pulse1Ctrl], 0xbf)
	test.ExpectEquality(t, apu.writes[addresses.FrameCounter], 0x40)
	test.ExpectEquality(t, mem.Read(addresses.APUStatus), 0x0f)

	// controller write goes to the controller and not the APU
	mem.Write(addresses.JOY1, 0x01)
	test.ExpectEquality(t, ctrl.strobe, 0x01)
	_, ok := apu.writes[addresses.JOY1]
	test.ExpectFailure(t, ok)

	// upper bits of the controller read come from the open bus
	mem.Write(0x0000, 0x40)
	_ = mem.Read(0x0000)
	test.ExpectEquality(t, mem.Read(addresses.JOY1), 0x41)
	test.ExpectEquality(t, ctrl.reads, 1)

	// peek has no side effects
	test.ExpectEquality(t, mem.Peek(addresses.JOY1), 0x41)
	test.ExpectEquality(t, ctrl.reads, 1)
}

func TestOpenBus(t *testing.T) {
	mem := memory.NewSystemBus(nil, nil, nil, newCart(t))

	mem.Write(0x0010, 0xaa)
	test.ExpectEquality(t, mem.OpenBus(), 0xaa)

	// nothing responds at $5000
	test.ExpectEquality(t, mem.Read(0x5000), 0xaa)

	// write-only APU register
	test.ExpectEquality(t, mem.Read(addresses.Pulse1Ctrl), 0xaa)

	// reads update the open bus
	test.ExpectEquality(t, mem.Read(0xfffd), 0xc0)
	test.ExpectEquality(t, mem.OpenBus(), 0xc0)
	test.ExpectEquality(t, mem.Read(0x5000), 0xc0)
}

func TestCartridge(t *testing.T) {
	mem := memory.NewSystemBus(nil, nil, nil, newCart(t))
	test.ExpectEquality(t, mem.Read(0xfffd), 0xc0)
	test.ExpectEquality(t, mem.Read(0xbffd), 0xc0)

	mem.Write(0x6000, 0x99)
	test.ExpectEquality(t, mem.Read(0x6000), 0x99)
}

func TestFlatMemory(t *testing.T) {
	mem := memory.NewFlatMemory(0xc000)
	test.DemandSuccess(t, mem.Load(0xc000, []uint8{0x01, 0x02}))
	test.ExpectEquality(t, mem.Read(0xc001), 0x02)

	// ROM area is not writable
	mem.Write(0xc000, 0xff)
	test.ExpectEquality(t, mem.Read(0xc000), 0x01)

	mem.Write(0x0400, 0xff)
	test.ExpectEquality(t, mem.Peek(0x0400), 0xff)

	test.ExpectFailure(t, mem.Load(0xffff, []uint8{0x01, 0x02}))
}
