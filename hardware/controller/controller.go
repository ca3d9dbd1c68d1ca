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

package controller

import (
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopher2a03/curated"
)

// UnknownButton is returned by Press() and Release() for a button value
// outside the valid range.
const UnknownButton = "controller: unknown button (%d)"

// the button state is packed into a single value so that press and turbo
// can be updated together. the low byte is the pressed state and the next
// byte is the turbo state
const turboShift = 8

// Controller is the standard NES controller.
type Controller struct {
	state atomic.Uint32

	// the remaining fields are only accessed by the emulation goroutine
	strobe bool
	index  int
	turbo  bool
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) String() string {
	s := strings.Builder{}
	st := c.state.Load()
	for b := A; b < NumButtons; b++ {
		if st&(1<<b) != 0 {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(b.String())
			if st&(1<<(b+turboShift)) != 0 {
				s.WriteString("*")
			}
		}
	}
	if s.Len() == 0 {
		return "no buttons"
	}
	return s.String()
}

func (c *Controller) update(f func(uint32) uint32) {
	for {
		old := c.state.Load()
		if c.state.CompareAndSwap(old, f(old)) {
			return
		}
	}
}

// Press the button. If turbo is true the reported state of the button will
// alternate while it is held.
func (c *Controller) Press(b Button, turbo bool) error {
	if !b.valid() {
		return curated.Errorf(UnknownButton, int(b))
	}
	c.update(func(st uint32) uint32 {
		st |= 1 << b
		if turbo {
			st |= 1 << (b + turboShift)
		} else {
			st &^= 1 << (b + turboShift)
		}
		return st
	})
	return nil
}

// Release the button.
func (c *Controller) Release(b Button) error {
	if !b.valid() {
		return curated.Errorf(UnknownButton, int(b))
	}
	c.update(func(st uint32) uint32 {
		return st &^ (1 << b)
	})
	return nil
}

// IsPressed returns true if the button is held.
func (c *Controller) IsPressed(b Button) bool {
	return c.state.Load()&(1<<b) != 0
}

// ClockTurbo toggles the turbo latch.
func (c *Controller) ClockTurbo() {
	c.turbo = !c.turbo
}

// Reset the shift register and the turbo latch. The button state is not
// affected.
func (c *Controller) Reset() {
	c.strobe = false
	c.index = 0
	c.turbo = false
}

func (c *Controller) bit() uint8 {
	// the shift register is filled with ones after the eighth read
	if c.index >= int(NumButtons) {
		return 0x01
	}

	st := c.state.Load()
	pressed := st&(1<<c.index) != 0
	if pressed && st&(1<<(c.index+turboShift)) != 0 {
		pressed = c.turbo
	}

	if pressed {
		return 0x01
	}
	return 0x00
}

// Read implements the memory.ControllerBus interface. While the strobe is
// set the shift register is continuously reloaded and the state of the A
// button is returned.
func (c *Controller) Read() uint8 {
	d := c.bit()
	if !c.strobe {
		c.index++
	}
	return d
}

// Peek implements the memory.ControllerBus interface.
func (c *Controller) Peek() uint8 {
	return c.bit()
}

// Write implements the memory.ControllerBus interface.
func (c *Controller) Write(data uint8) {
	c.strobe = data&0x01 == 0x01
	if c.strobe {
		c.index = 0
	}
}
