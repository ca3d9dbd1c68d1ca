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


package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/gui"
	"github.com/jetsetilly/gopher2a03/logger"
)

// Service implements the GuiCreator interface. All pending SDL events are
// forwarded to the event channel and the latest frame, if there is one, is
// presented.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(gui.EventWindowClose{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			mod := gui.KeyModNone
			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = gui.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = gui.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = gui.KeyModCtrl
			}

			scr.send(gui.EventKeyboard{
				Key:  sdl.GetKeyName(ev.Keysym.Sym),
				Mod:  mod,
				Down: ev.Type == sdl.KEYDOWN,
			})
		}
	}

	return scr.present()
}

// the event channel is buffered. events are dropped rather than blocking the
// main thread
func (scr *SdlPlay) send(ev gui.Event) {
	select {
	case scr.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdlplay", "dropped event %T", ev)
	}
}

// copy the latest frame to the texture and present it. the renderer is
// presented even if there is no new frame, using the previous contents of
// the texture.
func (scr *SdlPlay) present() error {
	if img, ok := scr.tv.TryAcquire(); ok {
		pixels, pitch, err := scr.texture.Lock(nil)
		if err != nil {
			scr.tv.Release()
			return curated.Errorf("sdlplay: %v", err)
		}
		for y := 0; y < img.Rect.Dy(); y++ {
			copy(pixels[y*pitch:], img.Pix[y*img.Stride:(y+1)*img.Stride])
		}
		scr.texture.Unlock()
		scr.tv.Release()
	}

	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	// with vsync enabled present waits for the vertical blank of the display
	scr.renderer.Present()

	return nil
}
