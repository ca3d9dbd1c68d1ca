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
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/logger"
)

// PPUCyclesPerCPUCycle is the ratio of the PPU clock to the CPU clock.
const PPUCyclesPerCPUCycle = 3

// Step the emulator state one CPU instruction. The PPU and APU are stepped for
// every cycle taken by the instruction, including the cycles of any NMI that
// was serviced. The number of CPU cycles is returned.
//
// An instruction that jumps to itself is not an error for the console. Games
// use that to wait for the NMI and the other chips continue to run.
func (nes *NES) Step() (int, error) {
	cycles, err := nes.CPU.Step()
	if err != nil && !curated.Is(err, cpu.InfiniteLoop) {
		return cycles, curated.Errorf("nes: %v", err)
	}

	for i := 0; i < cycles; i++ {
		if err := nes.cycle(); err != nil {
			return cycles, curated.Errorf("nes: %v", err)
		}
	}

	return cycles, nil
}

// one CPU cycle of the non-CPU hardware.
func (nes *NES) cycle() error {
	for i := 0; i < PPUCyclesPerCPUCycle; i++ {
		if err := nes.PPU.Step(); err != nil {
			return err
		}
	}

	nes.APU.Step()

	nes.sampleCycles++
	if nes.sampleCycles >= nes.cyclesPerSample {
		nes.sampleCycles -= nes.cyclesPerSample
		return nes.sample()
	}

	return nil
}

// take the current output of the APU and forward it to the audio queue and
// any sinks.
func (nes *NES) sample() error {
	s := int16((2*nes.APU.Output() - 1) * 32767)

	if nes.queueing && !nes.audio.Push(s) {
		logger.Log(logger.Allow, "nes", "audio buffer is full")
	}

	for _, a := range nes.audioSink {
		if err := a.AddSample(s); err != nil {
			return err
		}
	}

	return nil
}
