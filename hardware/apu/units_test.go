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

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
)

func TestSweepNegate(t *testing.T) {
	ones := sweep{mode: OnesComplement}
	twos := sweep{mode: TwosComplement}
	ones.configure(0x89)
	twos.configure(0x89)

	tm := timer{period: 0x100}
	ones.sweep(&tm)
	test.ExpectEquality(t, tm.period, 0x7f)

	tm = timer{period: 0x100}
	twos.sweep(&tm)
	test.ExpectEquality(t, tm.period, 0x80)

	// no negation
	s := sweep{mode: OnesComplement}
	s.configure(0x81)
	tm = timer{period: 0x100}
	s.sweep(&tm)
	test.ExpectEquality(t, tm.period, 0x180)

	// a negative period is clamped to zero
	tm = timer{period: 0}
	ones.sweep(&tm)
	test.ExpectEquality(t, tm.period, 0)
}

func TestSweepDivider(t *testing.T) {
	s := sweep{mode: TwosComplement}

	// enabled, period 2, shift 1
	s.configure(0xa1)
	tm := timer{period: 0x100}

	// the first clock after configuration reloads the divider. the divider
	// starts at zero so the period is changed
	s.clock(&tm)
	test.ExpectEquality(t, tm.period, 0x180)
	test.ExpectEquality(t, s.divider, 3)

	for i := 0; i < 3; i++ {
		s.clock(&tm)
		test.ExpectEquality(t, tm.period, 0x180)
	}
	s.clock(&tm)
	test.ExpectEquality(t, tm.period, 0x240)
}

func TestEnvelope(t *testing.T) {
	var e envelope

	// constant volume
	e.configure(0x17)
	test.ExpectEquality(t, e.volume(), 7)

	// decay with a divider period of one
	e.configure(0x01)
	e.restart = true
	e.clock()
	test.ExpectEquality(t, e.volume(), 15)
	e.clock()
	test.ExpectEquality(t, e.volume(), 15)
	e.clock()
	test.ExpectEquality(t, e.volume(), 14)

	for i := 0; i < 28; i++ {
		e.clock()
	}
	test.ExpectEquality(t, e.volume(), 0)
	e.clock()
	e.clock()
	test.ExpectEquality(t, e.volume(), 0)

	// looping envelope returns to fifteen
	e.configure(0x21)
	e.clock()
	e.clock()
	test.ExpectEquality(t, e.volume(), 15)
}

func TestLFSR(t *testing.T) {
	r := newLFSR()
	r.advance()
	test.ExpectEquality(t, r.state, 0x4000)

	// the normal mode sequence repeats after 32767 steps
	r = newLFSR()
	n := 0
	for {
		r.advance()
		n++
		if r.state == 0x0001 || n > 40000 {
			break
		}
	}
	test.ExpectEquality(t, n, 32767)

	// the short mode sequence is much shorter
	r = newLFSR()
	r.mode = LFSRShort
	n = 0
	for {
		r.advance()
		n++
		if r.state == 0x0001 || n > 40000 {
			break
		}
	}
	test.ExpectSuccess(t, n < 100)
}

func TestTriangleCounters(t *testing.T) {
	var tr triangle
	tr.enable(true)
	tr.writeControl(0x04)
	tr.writeTimerLo(0x02)
	tr.writeTimerHi(0x00)

	// the linear counter has not been reloaded so the sequencer does not
	// advance
	for i := 0; i < 10; i++ {
		tr.clockTimer()
	}
	test.ExpectEquality(t, tr.step, 0)

	tr.linear.clock()
	test.ExpectEquality(t, tr.linear.counter, 4)
	for i := 0; i < 6; i++ {
		tr.clockTimer()
	}
	test.ExpectEquality(t, tr.step, 2)

	// the length counter being zero also stops the sequencer
	tr.length.value = 0
	for i := 0; i < 6; i++ {
		tr.clockTimer()
	}
	test.ExpectEquality(t, tr.step, 2)
	test.ExpectEquality(t, tr.output(), 0)
}

func TestMix(t *testing.T) {
	test.ExpectEquality(t, mix(0, 0, 0, 0, 0), 0.0)

	// the DMC contribution is part of the tnd table
	test.ExpectSuccess(t, mix(0, 0, 0, 0, 1) > 0.0)

	loud := mix(15, 15, 15, 15, 0)
	test.ExpectSuccess(t, loud > 0.0 && loud < 1.0)
	test.ExpectSuccess(t, mix(15, 14, 15, 15, 0) < loud)
}
