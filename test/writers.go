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


package test

import (
	"fmt"
)

// CompareWriter captures everything written to it so that the output of a
// function can be compared with an expected string.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (w *CompareWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare buffered output with an expected string.
func (w *CompareWriter) Compare(s string) bool {
	return s == string(w.buffer)
}

func (w *CompareWriter) String() string {
	return string(w.buffer)
}

// CappedWriter keeps the first bytes written to it up to a fixed size. Bytes
// written once the cap has been reached are dropped without error. Useful
// for checking the start of a long output, such as a CPU trace.
type CappedWriter struct {
	buffer []byte
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{buffer: make([]byte, 0, size)}, nil
}

// Write implements the io.Writer interface. The number of bytes reported as
// written is the length of p even if some were dropped.
func (w *CappedWriter) Write(p []byte) (int, error) {
	n := min(cap(w.buffer)-len(w.buffer), len(p))
	w.buffer = append(w.buffer, p[:n]...)
	return len(p), nil
}

// Reset empties the buffer.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
}

func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// RingWriter keeps the most recent bytes written to it up to a fixed size.
// Useful for checking the end of a long output.
type RingWriter struct {
	buffer  []byte
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{buffer: make([]byte, size)}, nil
}

// Write implements the io.Writer interface.
func (w *RingWriter) Write(p []byte) (int, error) {
	n := len(p)

	// only the tail of a write that is larger than the ring can survive
	if len(p) >= len(w.buffer) {
		copy(w.buffer, p[len(p)-len(w.buffer):])
		w.cursor = 0
		w.wrapped = true
		return n, nil
	}

	for len(p) > 0 {
		c := copy(w.buffer[w.cursor:], p)
		p = p[c:]
		w.cursor += c
		if w.cursor == len(w.buffer) {
			w.cursor = 0
			w.wrapped = true
		}
	}

	return n, nil
}

// Reset empties the buffer.
func (w *RingWriter) Reset() {
	w.cursor = 0
	w.wrapped = false
}

func (w *RingWriter) String() string {
	if !w.wrapped {
		return string(w.buffer[:w.cursor])
	}
	return string(w.buffer[w.cursor:]) + string(w.buffer[:w.cursor])
}
