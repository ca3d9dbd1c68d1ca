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
	"context"
	"time"

	"github.com/jetsetilly/gopher2a03/logger"
)

// The continueCheck() function supplied to Run() is called at the end of
// every CPU instruction. It can be expensive to do a full continue check
// every time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false
//		}
//	}
//	return true
const PerformanceBrake = 100

// the number of CPU cycles between checks of the audio queue.
const syncPeriod = 4000

// the longest time the emulation will sleep in order to let the audio queue
// drain.
const maxThrottle = time.Second

// how often the performance meter reports.
const perfPeriod = 5 * time.Second

// Run sets the emulation running as quickly as possible, or as quickly as the
// audio queue is drained if AudioQueue() has been called. Run() returns when
// the context is cancelled or when continueCheck() returns false. A nil
// continueCheck is allowed.
//
// A cancelled context is not an error.
func (nes *NES) Run(ctx context.Context, continueCheck func(nes *NES) bool) error {
	var syncCycles int
	var perfCycles int
	perfStart := time.Now()

	for {
		// the stop signal is checked at every instruction boundary
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		cycles, err := nes.Step()
		if err != nil {
			return err
		}

		syncCycles += cycles
		perfCycles += cycles

		if syncCycles > syncPeriod {
			syncCycles -= syncPeriod

			if !nes.throttle(ctx) {
				return nil
			}

			if d := time.Since(perfStart); d > perfPeriod {
				logger.Logf(logger.Allow, "nes", "%.0f cycles per second", float64(perfCycles)/d.Seconds())
				perfCycles = 0
				perfStart = time.Now()
			}
		}

		if continueCheck != nil && !continueCheck(nes) {
			return nil
		}
	}
}

// sleep while the audio queue holds more samples than the high water mark.
// returns false if the context was cancelled while sleeping.
func (nes *NES) throttle(ctx context.Context) bool {
	if !nes.queueing {
		return true
	}

	fill := nes.audio.Len()
	if fill <= nes.highWater {
		return true
	}

	wait := time.Duration(float64(fill-nes.highWater) / float64(nes.sampleRate) * float64(time.Second))
	if wait > maxThrottle {
		wait = maxThrottle
	}

	select {
	case <-ctx.Done():
		return false
	case <-time.After(wait):
	}

	return true
}

// RunForFrameCount sets the emulator running for the specified number of
// frames. Useful for performance and regression tests.
func (nes *NES) RunForFrameCount(numFrames int) error {
	targetFrame := nes.PPU.Frame + numFrames
	for nes.PPU.Frame < targetFrame {
		if _, err := nes.Step(); err != nil {
			return err
		}
	}
	return nil
}
