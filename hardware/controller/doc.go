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

// Package controller emulates the standard NES controller.
//
// The state of the eight buttons is set by the host with Press() and
// Release(). These functions are safe to call from any goroutine. The
// emulation goroutine reads the buttons one at a time through the shift
// register at $4016.
//
// A button can be pressed "with turbo". While the button is held its state
// alternates every time the turbo latch is clocked. The console clocks the
// latch on every APU quarter-frame.
package controller
