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

// Package ringbuffer implements a fixed capacity, lock-free ring buffer for
// exactly one producer goroutine and exactly one consumer goroutine.
//
// The producer adds values with Push(). If the buffer is full the value is
// not added and Push() returns false. The consumer removes values in batches
// with Pop().
//
// The emulation uses the ring buffer to pass audio samples from the
// emulation goroutine to the audio device callback.
package ringbuffer
