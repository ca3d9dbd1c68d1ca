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


// Package sdlplay is a simple SDL front-end for the console. It presents the
// frames produced by the television and sends keyboard and window events to
// the emulation over a channel.
//
// SDL requires that window creation and event handling happen on the main
// thread. NewSdlPlay() and all the methods of SdlPlay must therefore only be
// called from the main thread.
package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/gui"
	"github.com/jetsetilly/gopher2a03/hardware/television"
)

const windowTitle = "Gopher2A03"

// SdlPlay presents the frames of a television in an SDL window.
type SdlPlay struct {
	tv *television.Television

	// connects SDL events with the emulation
	events chan<- gui.Event

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// window is sized to the NES frame multiplied by the integer scale.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(tv *television.Television, scale int, events chan<- gui.Event) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{
		tv:     tv,
		events: events,
	}

	var err error

	// the audio subsystem is initialised here so that the audio device can be
	// opened by the sdlaudio package
	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(television.Width*scale), int32(television.Height*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the texture is the same size as the frame. the renderer scales it to
	// fill the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		television.Width, television.Height)
	if err != nil {
		scr.renderer.Destroy()
		scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}
