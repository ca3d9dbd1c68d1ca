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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated console.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported.
//
// Files in the iNES format are recognised by their signature and the header is
// parsed into the PRG, CHR, Mapper and mirroring fields of the Loader. Images
// with a trainer segment, and iNES version 2 images, are rejected. Files that
// are not in the iNES format are left as raw data in the Data field. This is
// how 6502 test programs and the BASIC interpreter image are loaded.
//
// The preferred method of initialisation for the Loader type is the
// NewLoader() function:
//
//	cl := cartridgeloader.NewLoader("roms/nestest.nes")
//	err := cl.Load()
package cartridgeloader
