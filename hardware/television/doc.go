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

// Package television collects the pixels produced by the PPU into frames and
// hands completed frames to a consumer running in another goroutine.
//
// The Television is double buffered. The producer (the emulation goroutine)
// writes pixels into the back buffer with SetPixel() and calls NewFrame() once
// the frame is complete. The consumer (the presentation goroutine) calls
// Acquire() which blocks until a new frame is available and then holds the
// front buffer until Release() is called.
//
// The producer never waits for the consumer. If the consumer is holding the
// front buffer when a frame is completed, the new frame is dropped.
//
// The PPU produces palette indexes rather than colours. The conversion to
// RGBA takes place in SetPixel(), using the NES system palette and the
// colour effects selected by the PPU mask register.
package television
