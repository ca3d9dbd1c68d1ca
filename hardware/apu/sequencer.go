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

import "fmt"

// SequencerMode is the mode of the frame sequencer.
type SequencerMode int

// List of valid SequencerMode values.
const (
	FourStep SequencerMode = iota
	FiveStep
)

func (m SequencerMode) String() string {
	switch m {
	case FourStep:
		return "4-step"
	case FiveStep:
		return "5-step"
	}
	return "unknown"
}

// CyclesPerSequencerStep is the number of CPU cycles between each step of
// the frame sequencer.
const CyclesPerSequencerStep = 7457

// FrameSequencer produces the quarter-frame and half-frame events. The
// sequence length and the position of the events depends on the mode.
type FrameSequencer struct {
	Mode SequencerMode
	step int
}

func (s FrameSequencer) String() string {
	return fmt.Sprintf("%s (%d)", s.Mode, s.step)
}

// Step advances the sequencer and returns the events for the new step.
//
// In 4-step mode a quarter-frame event happens on every step and a
// half-frame event on steps one and three. In 5-step mode nothing happens on
// step three. Of the remaining steps, a half-frame event happens on steps one
// and four.
func (s *FrameSequencer) Step() (quarter bool, half bool) {
	switch s.Mode {
	case FourStep:
		s.step = (s.step + 1) % 4
		return true, s.step == 1 || s.step == 3
	case FiveStep:
		s.step = (s.step + 1) % 5
		if s.step == 3 {
			return false, false
		}
		return true, s.step == 1 || s.step == 4
	}
	return false, false
}
