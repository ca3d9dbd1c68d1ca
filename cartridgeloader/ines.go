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

package cartridgeloader

import (
	"bytes"

	"github.com/jetsetilly/gopher2a03/curated"
)

// Sentinal error patterns for malformed iNES files.
const (
	BadSignature        = "cartridgeloader: bad NES file signature"
	UnsupportedVersion  = "cartridgeloader: unsupported NES file version (%d)"
	TrainerNotSupported = "cartridgeloader: trainer is not supported"
	Truncated           = "cartridgeloader: file is truncated (%d bytes, expected %d)"
)

// the first four bytes of every iNES file.
var signature = []byte{'N', 'E', 'S', 0x1a}

const (
	headerLen   = 16
	prgBankSize = 0x4000
	chrBankSize = 0x2000
)

// flags 6
const (
	flag6Vertical   = 0x01
	flag6Battery    = 0x02
	flag6Trainer    = 0x04
	flag6FourScreen = 0x08
)

func hasSignature(data []byte) bool {
	return bytes.HasPrefix(data, signature)
}

// parseINES interprets the header of the loaded data and slices the PRG and
// CHR data. the file is rejected before any of the Loader fields are changed
// if the header is not supported.
func (cl *Loader) parseINES() error {
	if len(cl.Data) < headerLen || !hasSignature(cl.Data) {
		return curated.Errorf(BadSignature)
	}

	hdr := cl.Data[:headerLen]

	prgBanks := int(hdr[4])
	chrBanks := int(hdr[5])
	flags6 := hdr[6]
	flags7 := hdr[7]

	version := (flags7 >> 2) & 0x03
	if version != 0 {
		return curated.Errorf(UnsupportedVersion, version)
	}

	if flags6&flag6Trainer == flag6Trainer {
		return curated.Errorf(TrainerNotSupported)
	}

	prgLen := prgBanks * prgBankSize
	chrLen := chrBanks * chrBankSize
	if len(cl.Data) < headerLen+prgLen+chrLen {
		return curated.Errorf(Truncated, len(cl.Data), headerLen+prgLen+chrLen)
	}

	cl.IsINES = true
	cl.PRG = cl.Data[headerLen : headerLen+prgLen]
	cl.CHR = cl.Data[headerLen+prgLen : headerLen+prgLen+chrLen]
	cl.Mapper = int(flags7&0xf0) | int(flags6>>4)
	cl.VerticalMirroring = flags6&flag6Vertical == flag6Vertical
	cl.FourScreen = flags6&flag6FourScreen == flag6FourScreen
	cl.Battery = flags6&flag6Battery == flag6Battery

	return nil
}

// PRGBanks returns the number of 16K PRG banks.
func (cl Loader) PRGBanks() int {
	return len(cl.PRG) / prgBankSize
}

// CHRBanks returns the number of 8K CHR banks. Zero indicates that the
// cartridge uses CHR RAM.
func (cl Loader) CHRBanks() int {
	return len(cl.CHR) / chrBankSize
}
