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


package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/apu"
	"github.com/jetsetilly/gopher2a03/hardware/controller"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2a03/hardware/ppu"
	"github.com/jetsetilly/gopher2a03/hardware/preferences"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/ringbuffer"
)

// AudioSink implementations receive every sample produced by the console, in
// the order they are produced. The sample is the mixed output of the APU
// converted to a signed 16 bit value.
type AudioSink interface {
	AddSample(sample int16) error
}

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	CPU        *cpu.CPU
	Mem        *memory.SystemBus
	PPU        *ppu.PPU
	APU        *apu.APU
	Controller *controller.Controller
	Cart       cartridge.Mapper

	// the television is not part of the NES but is attached to it
	TV ppu.Television

	// values taken from the preferences when the NES is created
	sampleRate int
	highWater  int
	cpuClock   int
	turbo      bool

	// audio queue. samples are only pushed to the queue once a consumer has
	// claimed it with AudioQueue()
	audio     *ringbuffer.RingBuffer[int16]
	queueing  bool
	audioSink []AudioSink

	// the number of CPU cycles between audio samples and the number of cycles
	// since the last sample
	cyclesPerSample float64
	sampleCycles    float64
}

// NewNES creates a new NES and everything associated with the hardware. The
// cartridge is attached and the console is reset ready for use.
//
// If prefs is nil the default preference values are used.
func NewNES(tv ppu.Television, cart cartridge.Mapper, prefs *preferences.Preferences) (*NES, error) {
	if cart == nil {
		return nil, curated.Errorf("nes: %v", "no cartridge")
	}

	nes := &NES{
		TV:         tv,
		Cart:       cart,
		Controller: controller.NewController(),
		sampleRate: preferences.DefaultSampleRate,
		highWater:  preferences.DefaultHighWater,
		cpuClock:   preferences.DefaultCPUClock,
		turbo:      preferences.DefaultTurbo,
	}

	bufferSize := preferences.DefaultBufferSize
	if prefs != nil {
		nes.sampleRate = prefs.SampleRate.Get().(int)
		nes.highWater = prefs.HighWater.Get().(int)
		nes.cpuClock = prefs.CPUClock.Get().(int)
		nes.turbo = prefs.Turbo.Get().(bool)
		bufferSize = prefs.BufferSize.Get().(int)
	}

	var err error
	nes.audio, err = ringbuffer.NewRingBuffer[int16](bufferSize)
	if err != nil {
		return nil, curated.Errorf("nes: %v", err)
	}

	nes.cyclesPerSample = float64(nes.cpuClock) / float64(nes.sampleRate)

	nes.PPU = ppu.NewPPU(tv, cart, func() {
		nes.CPU.NMI()
	})

	nes.APU = apu.NewAPU(func() {
		if nes.turbo {
			nes.Controller.ClockTurbo()
		}
	})

	nes.Mem = memory.NewSystemBus(nes.PPU, nes.APU, nes.Controller, cart)
	nes.CPU = cpu.NewCPU(nes.Mem)

	nes.Reset()

	logger.Logf(logger.Allow, "nes", "created console with %s cartridge", cart.ID())

	return nes, nil
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s\n%s\n%s", nes.CPU, nes.PPU, nes.APU)
}

// Reset emulates the reset button on the console. Memory and all the chips
// are reset and the PC is loaded from the RESET vector.
func (nes *NES) Reset() {
	nes.Mem.Reset()
	nes.PPU.Reset()
	nes.APU.Reset()
	nes.Controller.Reset()
	nes.CPU.Reset()
	nes.sampleCycles = 0
}

// AudioQueue returns the queue of audio samples. Samples are only added to
// the queue after the first call to this function.
//
// The queue has a single consumer. The returned value should not be shared
// between goroutines other than the emulation goroutine and the consumer.
func (nes *NES) AudioQueue() *ringbuffer.RingBuffer[int16] {
	nes.queueing = true
	return nes.audio
}

// AddAudioSink adds an AudioSink to the list of sinks. Sinks are called from
// the emulation goroutine.
func (nes *NES) AddAudioSink(s AudioSink) {
	nes.audioSink = append(nes.audioSink, s)
}

// SampleRate returns the number of audio samples produced for every second of
// emulated time.
func (nes *NES) SampleRate() int {
	return nes.sampleRate
}
