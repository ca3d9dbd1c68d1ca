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
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/logger"
)

// Status register bits.
const (
	StatusPulse1   = 0x01
	StatusPulse2   = 0x02
	StatusTriangle = 0x04
	StatusNoise    = 0x08
	StatusDMC      = 0x10
)

const frameCounterFiveStep = 0x80

// APU is the audio processing unit.
type APU struct {
	pulse1   pulse
	pulse2   pulse
	triangle triangle
	noise    noise

	Sequencer FrameSequencer

	// CPU cycles since the last sequencer step
	cycles int

	// pulse and noise timers are clocked every other CPU cycle
	odd bool

	// called on every quarter-frame event
	quarterFrame func()
}

// NewAPU is the preferred method of initialisation for the APU type. The
// quarterFrame function is called on every quarter-frame event and may be
// nil.
func NewAPU(quarterFrame func()) *APU {
	apu := &APU{quarterFrame: quarterFrame}
	apu.Reset()
	return apu
}

// Reset the APU to its power-on state.
func (apu *APU) Reset() {
	apu.pulse1 = newPulse(OnesComplement)
	apu.pulse2 = newPulse(TwosComplement)
	apu.triangle = triangle{}
	apu.noise = newNoise()
	apu.Sequencer = FrameSequencer{}
	apu.cycles = 0
	apu.odd = false
}

func (apu *APU) String() string {
	return fmt.Sprintf("status=%02x sequencer=%s", apu.PeekStatus(), apu.Sequencer)
}

// Step the APU forward one CPU cycle.
func (apu *APU) Step() {
	if apu.odd {
		apu.pulse1.clockTimer()
		apu.pulse2.clockTimer()
		apu.noise.clockTimer()
	}
	apu.odd = !apu.odd

	apu.triangle.clockTimer()

	apu.cycles++
	if apu.cycles >= CyclesPerSequencerStep {
		apu.cycles = 0
		quarter, half := apu.Sequencer.Step()
		if quarter {
			apu.clockQuarterFrame()
		}
		if half {
			apu.clockHalfFrame()
		}
	}
}

func (apu *APU) clockQuarterFrame() {
	apu.pulse1.envelope.clock()
	apu.pulse2.envelope.clock()
	apu.triangle.linear.clock()
	apu.noise.envelope.clock()
	if apu.quarterFrame != nil {
		apu.quarterFrame()
	}
}

func (apu *APU) clockHalfFrame() {
	apu.pulse1.clockHalfFrame()
	apu.pulse2.clockHalfFrame()
	apu.triangle.length.clock()
	apu.noise.length.clock()
}

// Output returns the mixed output of all channels. The value is between 0.0
// and 1.0.
func (apu *APU) Output() float32 {
	return mix(apu.pulse1.output(), apu.pulse2.output(), apu.triangle.output(), apu.noise.output(), 0)
}

// ReadStatus implements the memory.APUBus interface.
func (apu *APU) ReadStatus() uint8 {
	return apu.PeekStatus()
}

// PeekStatus implements the memory.APUBus interface. A bit is set if the
// length counter of the corresponding channel is non-zero.
func (apu *APU) PeekStatus() uint8 {
	var d uint8
	if apu.pulse1.length.active() {
		d |= StatusPulse1
	}
	if apu.pulse2.length.active() {
		d |= StatusPulse2
	}
	if apu.triangle.length.active() {
		d |= StatusTriangle
	}
	if apu.noise.length.active() {
		d |= StatusNoise
	}
	return d
}

// WriteRegister implements the memory.APUBus interface.
func (apu *APU) WriteRegister(reg addresses.Absolute, data uint8) {
	switch reg {
	case addresses.Pulse1Ctrl:
		apu.pulse1.writeControl(data)
	case addresses.Pulse1Sweep:
		apu.pulse1.writeSweep(data)
	case addresses.Pulse1TimerLo:
		apu.pulse1.writeTimerLo(data)
	case addresses.Pulse1TimerHi:
		apu.pulse1.writeTimerHi(data)
	case addresses.Pulse2Ctrl:
		apu.pulse2.writeControl(data)
	case addresses.Pulse2Sweep:
		apu.pulse2.writeSweep(data)
	case addresses.Pulse2TimerLo:
		apu.pulse2.writeTimerLo(data)
	case addresses.Pulse2TimerHi:
		apu.pulse2.writeTimerHi(data)
	case addresses.TriangleCtrl:
		apu.triangle.writeControl(data)
	case addresses.TriangleTimerLo:
		apu.triangle.writeTimerLo(data)
	case addresses.TriangleTimerHi:
		apu.triangle.writeTimerHi(data)
	case addresses.NoiseCtrl:
		apu.noise.writeControl(data)
	case addresses.NoisePeriod:
		apu.noise.writePeriod(data)
	case addresses.NoiseLength:
		apu.noise.writeLength(data)
	case addresses.APUStatus:
		apu.pulse1.enable(data&StatusPulse1 == StatusPulse1)
		apu.pulse2.enable(data&StatusPulse2 == StatusPulse2)
		apu.triangle.enable(data&StatusTriangle == StatusTriangle)
		apu.noise.enable(data&StatusNoise == StatusNoise)
	case addresses.FrameCounter:
		apu.writeFrameCounter(data)
	}
}

// selecting 5-step mode immediately produces a quarter-frame and a half-frame
// event
func (apu *APU) writeFrameCounter(data uint8) {
	mode := FourStep
	if data&frameCounterFiveStep == frameCounterFiveStep {
		mode = FiveStep
	}

	if mode != apu.Sequencer.Mode {
		logger.Logf(logger.Allow, "apu", "frame sequencer: %s", mode)
	}

	apu.Sequencer = FrameSequencer{Mode: mode}
	if mode == FiveStep {
		apu.clockQuarterFrame()
		apu.clockHalfFrame()
	}
}
