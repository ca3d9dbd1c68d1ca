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


package ringbuffer_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/ringbuffer"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestChunkerUnderrun(t *testing.T) {
	r, err := ringbuffer.NewRingBuffer[int16](16)
	test.DemandSuccess(t, err)

	_, err = ringbuffer.NewChunker(r, 0)
	test.ExpectFailure(t, err)

	c, err := ringbuffer.NewChunker(r, 4)
	test.DemandSuccess(t, err)

	// nothing has ever been pushed so the chunk is zero filled
	chunk, n := c.Next()
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, len(chunk), 4)
	for _, v := range chunk {
		test.ExpectEquality(t, v, int16(0))
	}

	// a full chunk
	for _, v := range []int16{1, 2, 3, 4, 5, 6} {
		test.ExpectSuccess(t, r.Push(v))
	}
	chunk, n = c.Next()
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, chunk[0], int16(1))
	test.ExpectEquality(t, chunk[3], int16(4))

	// a partial chunk is padded with the last value
	chunk, n = c.Next()
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, chunk[0], int16(5))
	test.ExpectEquality(t, chunk[1], int16(6))
	test.ExpectEquality(t, chunk[2], int16(6))
	test.ExpectEquality(t, chunk[3], int16(6))

	// an empty buffer repeats the last value
	chunk, n = c.Next()
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, chunk[0], int16(6))
	test.ExpectEquality(t, chunk[3], int16(6))
}
