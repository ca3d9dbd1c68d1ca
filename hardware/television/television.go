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

package television

import (
	"image"
	"sync"
)

// Dimensions of the visible frame.
const (
	Width  = 256
	Height = 240
)

// FrameTrigger implementations listen for NewFrame events. NewFrame() is
// called from the emulation goroutine.
type FrameTrigger interface {
	NewFrame(frameNum int) error
}

// Television is the frame buffer between the PPU and the presentation layer.
type Television struct {
	// the back buffer is only ever accessed by the producer
	back  *image.RGBA
	pixel int

	// the front buffer and the ready flag are protected by the mutex
	crit  sync.Mutex
	cond  *sync.Cond
	front *image.RGBA
	ready bool
	ended bool

	frameNum int
	dropped  int

	frameTriggers []FrameTrigger
}

// NewTelevision is the preferred method of initialisation for the Television
// type.
func NewTelevision() *Television {
	tv := &Television{
		back:  image.NewRGBA(image.Rect(0, 0, Width, Height)),
		front: image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
	tv.cond = sync.NewCond(&tv.crit)
	return tv
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (tv *Television) AddFrameTrigger(f FrameTrigger) {
	tv.frameTriggers = append(tv.frameTriggers, f)
}

// SetPixel writes the next pixel of the frame. Pixels are written left to
// right, top to bottom. Pixels beyond the end of the frame are ignored.
func (tv *Television) SetPixel(index uint8, effects Effects) {
	if tv.pixel >= Width*Height {
		return
	}
	col := Colour(index, effects)
	i := tv.pixel * 4
	tv.back.Pix[i] = col.R
	tv.back.Pix[i+1] = col.G
	tv.back.Pix[i+2] = col.B
	tv.back.Pix[i+3] = col.A
	tv.pixel++
}

// NewFrame marks the back buffer as complete. If the front buffer is not
// being held by the consumer then the buffers are swapped and a waiting
// consumer is woken. Otherwise the frame is dropped.
//
// The next call to SetPixel() writes to the start of the back buffer.
func (tv *Television) NewFrame() error {
	tv.pixel = 0
	tv.frameNum++

	if tv.crit.TryLock() {
		tv.back, tv.front = tv.front, tv.back
		tv.ready = true
		tv.crit.Unlock()
		tv.cond.Signal()
	} else {
		tv.dropped++
	}

	for _, f := range tv.frameTriggers {
		if err := f.NewFrame(tv.frameNum); err != nil {
			return err
		}
	}

	return nil
}

// Acquire waits for a completed frame and returns it. The frame can be used
// until Release() is called. Acquire() must not be called again before
// Release().
//
// The boolean return value is false if End() has been called, in which case
// the frame is nil and Release() must not be called.
func (tv *Television) Acquire() (*image.RGBA, bool) {
	tv.crit.Lock()
	for !tv.ready && !tv.ended {
		tv.cond.Wait()
	}
	if tv.ended {
		tv.crit.Unlock()
		return nil, false
	}
	return tv.front, true
}

// TryAcquire is the same as Acquire() except that it does not wait. The
// boolean return value is false if there is no new frame, in which case
// Release() must not be called.
func (tv *Television) TryAcquire() (*image.RGBA, bool) {
	tv.crit.Lock()
	if !tv.ready || tv.ended {
		tv.crit.Unlock()
		return nil, false
	}
	return tv.front, true
}

// Release the frame returned by Acquire() or TryAcquire().
func (tv *Television) Release() {
	tv.ready = false
	tv.crit.Unlock()
}

// End wakes any consumer waiting in Acquire(). The Television should not be
// used after End() has been called.
func (tv *Television) End() {
	tv.crit.Lock()
	tv.ended = true
	tv.crit.Unlock()
	tv.cond.Broadcast()
}

// FrameNum returns the number of frames completed since creation. Only safe
// to call from the emulation goroutine.
func (tv *Television) FrameNum() int {
	return tv.frameNum
}

// Dropped returns the number of frames dropped because the consumer was
// holding the front buffer. Only safe to call from the emulation goroutine.
func (tv *Television) Dropped() int {
	return tv.dropped
}

// LastFrame returns a copy of the most recently completed frame. It will wait
// if the consumer is holding the front buffer.
func (tv *Television) LastFrame() *image.RGBA {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	img := image.NewRGBA(tv.front.Rect)
	copy(img.Pix, tv.front.Pix)
	return img
}
