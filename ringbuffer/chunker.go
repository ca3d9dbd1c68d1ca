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


package ringbuffer

// Chunker is used by the consumer of a RingBuffer to take values in fixed
// size chunks. If there are not enough values in the buffer the chunk is
// padded with the last value taken from the buffer, or with the zero value if
// no value has ever been taken.
type Chunker[T any] struct {
	ring    *RingBuffer[T]
	chunk   []T
	last    T
	hasLast bool
}

// NewChunker is the preferred method of initialisation for the Chunker type.
func NewChunker[T any](ring *RingBuffer[T], size int) (*Chunker[T], error) {
	if size <= 0 {
		return nil, curatedCapacity(size)
	}
	return &Chunker[T]{
		ring:  ring,
		chunk: make([]T, size),
	}, nil
}

// Next returns the next chunk of values and the number of values that were
// taken from the buffer. A number less than the chunk size means that the
// buffer underran and the chunk has been padded.
//
// The returned slice is reused by the next call to Next().
func (c *Chunker[T]) Next() ([]T, int) {
	n := c.ring.Pop(c.chunk)
	if n > 0 {
		c.last = c.chunk[n-1]
		c.hasLast = true
	}

	var pad T
	if c.hasLast {
		pad = c.last
	}
	for i := n; i < len(c.chunk); i++ {
		c.chunk[i] = pad
	}

	return c.chunk, n
}
