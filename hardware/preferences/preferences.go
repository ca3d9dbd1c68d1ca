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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/prefs"
	"github.com/jetsetilly/gopher2a03/resources"
)

// Default values of the preferences.
const (
	DefaultSampleRate = 44100
	DefaultHighWater  = 770
	DefaultBufferSize = 4096
	DefaultPixelScale = 4
	DefaultCPUClock   = 1789773
	DefaultTurbo      = true
)

// Preferences defines and collates the hardware and host preferences.
type Preferences struct {
	dsk *prefs.Disk

	// audio samples per second
	SampleRate prefs.Int

	// the number of samples waiting in the audio buffer before the emulation
	// slows down
	HighWater prefs.Int

	// capacity of the audio buffer in samples
	BufferSize prefs.Int

	// the size of each NES pixel on the host display
	PixelScale prefs.Int

	// CPU cycles per second
	CPUClock prefs.Int

	// whether the turbo keys are active
	Turbo prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func positive(name string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("%s must be greater than zero", name)
		}
		return nil
	}
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.SampleRate.SetHookPre(positive("sample rate"))
	p.HighWater.SetHookPre(positive("high water mark"))
	p.BufferSize.SetHookPre(positive("buffer size"))
	p.PixelScale.SetHookPre(positive("pixel scale"))
	p.CPUClock.SetHookPre(positive("cpu clock"))

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.sampleRate", &p.SampleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.highWater", &p.HighWater)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.bufferSize", &p.BufferSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.pixelScale", &p.PixelScale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.clock", &p.CPUClock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("controller.turbo", &p.Turbo)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.SampleRate.Set(DefaultSampleRate)
	_ = p.HighWater.Set(DefaultHighWater)
	_ = p.BufferSize.Set(DefaultBufferSize)
	_ = p.PixelScale.Set(DefaultPixelScale)
	_ = p.CPUClock.Set(DefaultCPUClock)
	_ = p.Turbo.Set(DefaultTurbo)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
