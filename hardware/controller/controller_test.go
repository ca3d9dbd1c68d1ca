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

package controller_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/controller"
	"github.com/jetsetilly/gopher2a03/test"
)

func readAll(c *controller.Controller) []uint8 {
	c.Write(0x01)
	c.Write(0x00)
	r := make([]uint8, 10)
	for i := range r {
		r[i] = c.Read()
	}
	return r
}

func TestShiftRegister(t *testing.T) {
	c := controller.NewController()
	test.ExpectEquality(t, c.String(), "no buttons")

	test.ExpectSuccess(t, c.Press(controller.A, false))
	test.ExpectSuccess(t, c.Press(controller.Start, false))
	test.ExpectSuccess(t, c.Press(controller.Right, false))
	test.ExpectEquality(t, c.String(), "A Start Right")

	r := readAll(c)
	expected := []uint8{1, 0, 0, 1, 0, 0, 0, 1, 1, 1}
	for i := range expected {
		test.ExpectEquality(t, r[i], expected[i], i)
	}

	test.ExpectSuccess(t, c.Release(controller.Start))
	r = readAll(c)
	test.ExpectEquality(t, r[3], 0)

	test.ExpectSuccess(t, curated.Is(c.Press(controller.NumButtons, false), controller.UnknownButton))
	test.ExpectFailure(t, c.Release(controller.Button(-1)))
}

func TestStrobe(t *testing.T) {
	c := controller.NewController()
	test.ExpectSuccess(t, c.Press(controller.A, false))

	// while the strobe is high the A button is read repeatedly
	c.Write(0x01)
	for i := 0; i < 10; i++ {
		test.ExpectEquality(t, c.Read(), 1)
	}

	c.Write(0x00)
	test.ExpectEquality(t, c.Peek(), 1)
	test.ExpectEquality(t, c.Read(), 1)
	test.ExpectEquality(t, c.Peek(), 0)
	test.ExpectEquality(t, c.Read(), 0)
}

func TestTurbo(t *testing.T) {
	c := controller.NewController()
	test.ExpectSuccess(t, c.Press(controller.B, true))
	test.ExpectEquality(t, c.String(), "B*")

	// turbo latch starts low
	test.ExpectEquality(t, readAll(c)[1], 0)
	c.ClockTurbo()
	test.ExpectEquality(t, readAll(c)[1], 1)
	c.ClockTurbo()
	test.ExpectEquality(t, readAll(c)[1], 0)

	// pressing without turbo removes the turbo state
	test.ExpectSuccess(t, c.Press(controller.B, false))
	test.ExpectEquality(t, readAll(c)[1], 1)
	c.ClockTurbo()
	test.ExpectEquality(t, readAll(c)[1], 1)
}

func TestConcurrentPress(t *testing.T) {
	c := controller.NewController()

	var wg sync.WaitGroup
	for b := controller.A; b < controller.NumButtons; b++ {
		wg.Add(1)
		go func(b controller.Button) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = c.Press(b, false)
				_ = c.Release(b)
			}
			_ = c.Press(b, false)
		}(b)
	}
	wg.Wait()

	for b := controller.A; b < controller.NumButtons; b++ {
		test.ExpectSuccess(t, c.IsPressed(b), b)
	}
}
