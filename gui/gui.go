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


// Package gui is the base package for the graphical front-ends. It defines
// the events sent from a front-end to the emulation and the mapping of
// keyboard events to the buttons of the controller.
//
// Front-ends that need to run in the main thread (SDL for example) send
// events over a channel. The receiver of the channel decides what to do with
// the event.
package gui
