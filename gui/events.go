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


package gui

// KeyMod identifies the modifier key held down with another key.
type KeyMod int

// list of valid key modifiers
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// Event represents all the different type of events that can occur in the gui.
type Event interface{}

// EventWindowClose is sent when the window has been closed.
type EventWindowClose struct{}

// EventKeyboard is sent when a key is pressed or released. The key is named
// by the front-end. Key repeats are not sent.
type EventKeyboard struct {
	Key  string
	Mod  KeyMod
	Down bool
}
