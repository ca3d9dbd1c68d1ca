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

package apu

// registers common to all channels
type channel struct {
	enabled bool
	timer   timer
	length  lengthCounter
}

func (ch *channel) enable(enabled bool) {
	ch.enabled = enabled
	if !enabled {
		ch.length.value = 0
	}
}

// reload the length counter from a register value. the length counter is
// only loaded if the channel is enabled
func (ch *channel) reloadLength(reg uint8) {
	if ch.enabled {
		ch.length.reload(reg)
	}
}

var dutyTable = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 1, 1},
	{0, 0, 0, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 0, 0},
}

type pulse struct {
	channel
	envelope envelope
	sweep    sweep
	duty     uint8
	step     uint8
}

func newPulse(mode NegateMode) pulse {
	return pulse{sweep: sweep{mode: mode}}
}

func (p *pulse) writeControl(data uint8) {
	p.length.halted = data&0x20 == 0x20
	p.duty = data >> 6
	p.envelope.configure(data)
}

func (p *pulse) writeSweep(data uint8) {
	p.sweep.configure(data)
}

func (p *pulse) writeTimerLo(data uint8) {
	p.timer.setPeriodLo(data)
}

func (p *pulse) writeTimerHi(data uint8) {
	p.timer.setPeriodHi(data)
	p.step = 0
	p.reloadLength(data)
	p.envelope.restart = true
}

func (p *pulse) clockTimer() {
	if p.timer.clock() {
		p.step = (p.step + 1) % 8
	}
}

func (p *pulse) clockHalfFrame() {
	p.length.clock()
	p.sweep.clock(&p.timer)
}

func (p *pulse) output() uint8 {
	if !p.enabled || !p.length.active() {
		return 0
	}
	if p.timer.period < 8 || p.timer.period > 0x7ff {
		return 0
	}
	if dutyTable[p.duty][p.step] == 0 {
		return 0
	}
	return p.envelope.volume()
}

var triangleTable = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

type triangle struct {
	channel
	linear linearCounter
	step   uint8
}

// the control bit both halts the length counter and controls the linear
// counter reload flag
func (tr *triangle) writeControl(data uint8) {
	control := data&0x80 == 0x80
	tr.length.halted = control
	tr.linear.control = control
	tr.linear.period = data & 0x7f
}

func (tr *triangle) writeTimerLo(data uint8) {
	tr.timer.setPeriodLo(data)
}

func (tr *triangle) writeTimerHi(data uint8) {
	tr.timer.setPeriodHi(data)
	tr.linear.reload = true
	tr.reloadLength(data)
}

// the sequencer only advances if both counters are non-zero
func (tr *triangle) clockTimer() {
	if tr.timer.clock() && tr.length.active() && tr.linear.active() {
		tr.step = (tr.step + 1) % uint8(len(triangleTable))
	}
}

func (tr *triangle) output() uint8 {
	if !tr.enabled || !tr.length.active() || tr.timer.period < 2 {
		return 0
	}
	return triangleTable[tr.step]
}

var noisePeriodTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

type noise struct {
	channel
	envelope envelope
	lfsr     lfsr
}

func newNoise() noise {
	return noise{lfsr: newLFSR()}
}

func (n *noise) writeControl(data uint8) {
	n.length.halted = data&0x20 == 0x20
	n.envelope.configure(data)
}

func (n *noise) writePeriod(data uint8) {
	n.timer.period = noisePeriodTable[data&0x0f]
	if data&0x80 == 0x80 {
		n.lfsr.mode = LFSRShort
	} else {
		n.lfsr.mode = LFSRNormal
	}
}

func (n *noise) writeLength(data uint8) {
	n.reloadLength(data)
	n.envelope.restart = true
}

func (n *noise) clockTimer() {
	if n.timer.clock() {
		n.lfsr.advance()
	}
}

func (n *noise) output() uint8 {
	if !n.enabled || !n.length.active() || n.lfsr.lsb() {
		return 0
	}
	return n.envelope.volume()
}
