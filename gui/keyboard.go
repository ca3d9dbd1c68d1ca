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

import (
	"github.com/jetsetilly/gopher2a03/hardware/controller"
)

// Binding is the controller button associated with a key.
type Binding struct {
	Button controller.Button
	Turbo  bool
}

// DefaultBindings maps key names to controller buttons. The key names are
// those used by SDL.
var DefaultBindings = map[string]Binding{
	"Left":   {Button: controller.Left},
	"Right":  {Button: controller.Right},
	"Up":     {Button: controller.Up},
	"Down":   {Button: controller.Down},
	"Space":  {Button: controller.Select},
	"Return": {Button: controller.Start},
	"A":      {Button: controller.A},
	"B":      {Button: controller.B},

	// turbo buttons
	"S": {Button: controller.A, Turbo: true},
	"N": {Button: controller.B, Turbo: true},
}

// Keyboard applies keyboard events to a controller.
type Keyboard struct {
	ctrl     *controller.Controller
	bindings map[string]Binding

	// if turbo is false then turbo bindings act like normal bindings
	turbo bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. The bindings can be nil, in which case the default bindings are used.
func NewKeyboard(ctrl *controller.Controller, bindings map[string]Binding, turbo bool) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{
		ctrl:     ctrl,
		bindings: bindings,
		turbo:    turbo,
	}
}

// HandleEvent presses or releases the button bound to the key. Returns true
// if the key was bound to a button.
func (kb *Keyboard) HandleEvent(ev EventKeyboard) (bool, error) {
	b, ok := kb.bindings[ev.Key]
	if !ok {
		return false, nil
	}

	if !ev.Down {
		return true, kb.ctrl.Release(b.Button)
	}

	return true, kb.ctrl.Press(b.Button, b.Turbo && kb.turbo)
}
