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

// Package apu emulates the audio processing unit of the NES.
//
// There are four channels: two pulse channels, a triangle channel and a noise
// channel. The delta modulation channel is not emulated and contributes
// nothing to the mixed output.
//
// The APU is stepped once per CPU cycle. The triangle channel timer is
// clocked every CPU cycle and the pulse and noise timers every other CPU
// cycle. The frame sequencer is clocked every 7457 CPU cycles and produces
// the quarter-frame and half-frame events that clock the envelopes, the
// triangle linear counter, the length counters and the sweep units.
//
// The Output() function returns the mixed output of all channels as a value
// between 0.0 and 1.0. The console samples the output at the rate required
// by the audio device.
package apu
