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


// Package sdlaudio plays the audio samples produced by the console through an
// SDL audio device.
package sdlaudio

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/ringbuffer"
)

// the number of samples sent to the audio device at once. the precise value
// is not critical
const bufferLength = 512

// bytes per sample for the AUDIO_S16LSB format
const sampleDepth = 2

// Audio outputs sound using SDL. Samples are taken from a ring buffer that is
// filled by the emulation.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	chunker *ringbuffer.Chunker[int16]
	buffer  []uint8

	// the time taken to play one chunk
	period time.Duration

	// number of underruns since the last report
	underruns int
}

// NewAudio is the preferred method of initialisation for the Audio Type.
// Prerequisite: sdl.Init() must have been called with the INIT_AUDIO flag.
func NewAudio(sampleRate int) (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud.buffer = make([]uint8, bufferLength*sampleDepth)
	aud.period = time.Duration(float64(bufferLength) / float64(aud.spec.Freq) * float64(time.Second))

	logger.Logf(logger.Allow, "sdlaudio", "opened audio device (%dHz, %d samples)", aud.spec.Freq, aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Service keeps the audio device supplied with samples from the queue until
// the context is cancelled. It should be run in its own goroutine and it
// should be the only consumer of the queue.
func (aud *Audio) Service(ctx context.Context, queue *ringbuffer.RingBuffer[int16]) error {
	var err error
	aud.chunker, err = ringbuffer.NewChunker(queue, bufferLength)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	tck := time.NewTicker(aud.period / 2)
	defer tck.Stop()

	report := time.NewTicker(5 * time.Second)
	defer report.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-report.C:
			if aud.underruns > 0 {
				logger.Logf(logger.Allow, "sdlaudio", "%d audio underruns", aud.underruns)
				aud.underruns = 0
			}
		case <-tck.C:
			// keep two chunks queued on the device
			for sdl.GetQueuedAudioSize(aud.id) < uint32(2*len(aud.buffer)) {
				if err := aud.queueChunk(); err != nil {
					return err
				}
			}
		}
	}
}

func (aud *Audio) queueChunk() error {
	chunk, n := aud.chunker.Next()
	if n < len(chunk) {
		aud.underruns++
	}

	for i, s := range chunk {
		binary.LittleEndian.PutUint16(aud.buffer[i*sampleDepth:], uint16(s))
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}
	return nil
}

// Close the audio device.
func (aud *Audio) Close() {
	sdl.PauseAudioDevice(aud.id, true)
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
