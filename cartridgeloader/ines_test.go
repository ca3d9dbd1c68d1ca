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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/test"
)

// image returns an iNES image with the specified header values. the PRG and
// CHR data is filled with the bank number
func image(prgBanks, chrBanks int, flags6, flags7 uint8) []byte {
	d := []byte{'N', 'E', 'S', 0x1a, uint8(prgBanks), uint8(chrBanks), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	for b := 0; b < prgBanks; b++ {
		for i := 0; i < 0x4000; i++ {
			d = append(d, uint8(b))
		}
	}
	for b := 0; b < chrBanks; b++ {
		for i := 0; i < 0x2000; i++ {
			d = append(d, uint8(0x80+b))
		}
	}
	return d
}

func TestParse(t *testing.T) {
	cl, err := cartridgeloader.NewLoaderFromData("test.nes", image(2, 1, 0x11, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cl.IsINES)
	test.ExpectEquality(t, cl.PRGBanks(), 2)
	test.ExpectEquality(t, cl.CHRBanks(), 1)
	test.ExpectEquality(t, cl.Mapper, 1)
	test.ExpectSuccess(t, cl.VerticalMirroring)
	test.ExpectFailure(t, cl.FourScreen)
	test.ExpectEquality(t, cl.PRG[0x4000], 0x01)
	test.ExpectEquality(t, cl.CHR[0], 0x80)

	// mapper number is split across the two flag bytes
	cl, err = cartridgeloader.NewLoaderFromData("test.nes", image(1, 0, 0x28, 0x40))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.Mapper, 0x42)
	test.ExpectFailure(t, cl.VerticalMirroring)
	test.ExpectSuccess(t, cl.FourScreen)
	test.ExpectEquality(t, cl.CHRBanks(), 0)
}

func TestRejection(t *testing.T) {
	d := image(1, 1, 0x00, 0x00)
	d[3] = 0x00
	_, err := cartridgeloader.NewLoaderFromData("bad.nes", d)
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.BadSignature))

	_, err = cartridgeloader.NewLoaderFromData("v2.nes", image(1, 1, 0x00, 0x08))
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnsupportedVersion))

	_, err = cartridgeloader.NewLoaderFromData("trainer.nes", image(1, 1, 0x04, 0x00))
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.TrainerNotSupported))

	d = image(2, 1, 0x00, 0x00)
	_, err = cartridgeloader.NewLoaderFromData("short.nes", d[:len(d)-1])
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.Truncated))
}

func TestRawData(t *testing.T) {
	cl, err := cartridgeloader.NewLoaderFromData("basic.bin", []byte{0xa9, 0x00})
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cl.IsINES)
	test.ExpectEquality(t, len(cl.Data), 2)
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, image(1, 1, 0x01, 0x00), 0o600))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectSuccess(t, cl.IsINES)
	test.ExpectEquality(t, cl.ShortName(), "test")
	test.ExpectEquality(t, len(cl.Hash), 40)

	// a hash mismatch is an error
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	test.ExpectFailure(t, cl.Load())
}
