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

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/gopher2a03/curated"
)

// InvalidCapacity is returned by NewRingBuffer() if the capacity is not
// greater than zero.
const InvalidCapacity = "ringbuffer: capacity must be greater than zero (%d)"

// RingBuffer is a single-producer, single-consumer queue.
type RingBuffer[T any] struct {
	buffer []T

	// the read and write positions increase without bound and are reduced to
	// a buffer index when used. the read position is only written by the
	// consumer and the write position only by the producer
	read  atomic.Uint64
	_     [56]byte
	write atomic.Uint64
}

// NewRingBuffer is the preferred method of initialisation for the RingBuffer
// type. The capacity must be greater than zero.
func NewRingBuffer[T any](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, curatedCapacity(capacity)
	}
	return &RingBuffer[T]{
		buffer: make([]T, capacity),
	}, nil
}

func curatedCapacity(capacity int) error {
	return curated.Errorf(InvalidCapacity, capacity)
}

func (r *RingBuffer[T]) String() string {
	return fmt.Sprintf("%d/%d", r.Len(), r.Cap())
}

// Cap returns the maximum number of values the buffer can hold.
func (r *RingBuffer[T]) Cap() int {
	return len(r.buffer)
}

// Len returns the number of values in the buffer. The value can be out of
// date by the time it is used if the other goroutine is active.
func (r *RingBuffer[T]) Len() int {
	return int(r.write.Load() - r.read.Load())
}

// Push adds a value to the buffer. Returns false if the buffer is full, in
// which case the value has not been added. Must only be called by the
// producer.
func (r *RingBuffer[T]) Push(v T) bool {
	w := r.write.Load()
	if w-r.read.Load() >= uint64(len(r.buffer)) {
		return false
	}
	r.buffer[w%uint64(len(r.buffer))] = v
	r.write.Store(w + 1)
	return true
}

// Pop removes up to len(dest) values from the buffer and copies them into
// dest. Returns the number of values copied. Must only be called by the
// consumer.
func (r *RingBuffer[T]) Pop(dest []T) int {
	rd := r.read.Load()
	n := int(r.write.Load() - rd)
	if n > len(dest) {
		n = len(dest)
	}
	for i := 0; i < n; i++ {
		dest[i] = r.buffer[(rd+uint64(i))%uint64(len(r.buffer))]
	}
	r.read.Store(rd + uint64(n))
	return n
}
