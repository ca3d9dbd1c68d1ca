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

// timer is the divider that drives the sequencer of every channel
type timer struct {
	period  uint16
	counter uint16
}

func (t *timer) setPeriodLo(lo uint8) {
	t.period = t.period&0xff00 | uint16(lo)
}

func (t *timer) setPeriodHi(hi uint8) {
	t.period = t.period&0x00ff | uint16(hi&0x07)<<8
}

// returns true when the timer reloads
func (t *timer) clock() bool {
	if t.counter == 0 {
		t.counter = t.period
		return true
	}
	t.counter--
	return false
}

var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

type lengthCounter struct {
	value  uint8
	halted bool
}

// the top five bits of the register value index the length table
func (l *lengthCounter) reload(reg uint8) {
	l.value = lengthTable[(reg>>3)&0x1f]
}

func (l *lengthCounter) clock() {
	if !l.halted && l.value > 0 {
		l.value--
	}
}

func (l *lengthCounter) active() bool {
	return l.value > 0
}

// the triangle channel's second length counter
type linearCounter struct {
	period  uint8
	counter uint8
	reload  bool
	control bool
}

func (l *linearCounter) clock() {
	if l.reload {
		l.counter = l.period
	} else if l.counter > 0 {
		l.counter--
	}
	if !l.control {
		l.reload = false
	}
}

func (l *linearCounter) active() bool {
	return l.counter > 0
}

// envelope generator for the pulse and noise channels. the parameter is
// either the constant volume or the period of the decay divider
type envelope struct {
	parameter uint8
	constant  bool
	loop      bool
	restart   bool
	divider   uint8
	decay     uint8
}

func (e *envelope) configure(reg uint8) {
	e.parameter = reg & 0x0f
	e.constant = reg&0x10 == 0x10
	e.loop = reg&0x20 == 0x20
}

func (e *envelope) clock() {
	if e.restart {
		e.restart = false
		e.decay = 15
		e.divider = e.parameter
		return
	}

	if e.divider > 0 {
		e.divider--
		return
	}

	e.divider = e.parameter
	if e.decay > 0 {
		e.decay--
	} else if e.loop {
		e.decay = 15
	}
}

func (e *envelope) volume() uint8 {
	if e.constant {
		return e.parameter
	}
	return e.decay
}

// NegateMode is the method used by a sweep unit to negate the period change.
type NegateMode int

// List of valid NegateMode values. Pulse channel 1 uses ones' complement and
// so subtracts one more than pulse channel 2.
const (
	OnesComplement NegateMode = iota
	TwosComplement
)

type sweep struct {
	mode NegateMode

	enabled bool
	negate  bool
	shift   uint8
	period  uint8
	divider uint8
	reload  bool
}

func (s *sweep) configure(reg uint8) {
	s.enabled = reg&0x80 == 0x80
	s.period = (reg >> 4) & 0x07
	s.negate = reg&0x08 == 0x08
	s.shift = reg & 0x07
	s.reload = true
}

func (s *sweep) clock(t *timer) {
	if s.reload {
		if s.enabled && s.divider == 0 {
			s.sweep(t)
		}
		s.divider = s.period + 1
		s.reload = false
	} else if s.divider > 0 {
		s.divider--
	} else {
		if s.enabled {
			s.sweep(t)
		}
		s.divider = s.period + 1
	}
}

// the target period is clamped to zero
func (s *sweep) sweep(t *timer) {
	delta := int(t.period >> s.shift)
	if s.negate {
		switch s.mode {
		case OnesComplement:
			delta = -delta - 1
		case TwosComplement:
			delta = -delta
		}
	}

	p := int(t.period) + delta
	if p < 0 {
		p = 0
	}
	t.period = uint16(p)
}

// LFSRMode selects the feedback tap of the noise channel's shift register.
type LFSRMode uint8

// List of valid LFSRMode values. The value is the position of the feedback
// bit.
const (
	LFSRNormal LFSRMode = 1
	LFSRShort  LFSRMode = 6
)

// 15 bit linear feedback shift register
type lfsr struct {
	state uint16
	mode  LFSRMode
}

func newLFSR() lfsr {
	return lfsr{state: 0x0001, mode: LFSRNormal}
}

func (r *lfsr) advance() {
	feedback := (r.state ^ (r.state >> r.mode)) & 0x01
	r.state = r.state>>1 | feedback<<14
}

func (r *lfsr) lsb() bool {
	return r.state&0x01 == 0x01
}
