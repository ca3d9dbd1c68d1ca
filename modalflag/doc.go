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

// Package modalflag is a wrapper for the flag package in the Go standard
// library.  It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "BASIC", "TRACE", "FUNCTIONAL", "INFO")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, each with its own set of flags. After the
// first call to Parse() the Mode() function says which mode was selected (the
// first in the list is the default). A new set of flags is then prepared for
// that mode with NewMode() and parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "TRACE":
//		md.NewMode()
//		entry := md.AddAddress("entry", 0xc000, "entry address")
//		cycles := md.AddInt("cycles", 26554, "stop after cycle count")
//		p, err := md.Parse()
//		switch p {
//		case ParseError:
//			return err
//		case ParseHelp:
//			return nil
//		}
//		trace(md.GetArg(0), *entry, *cycles)
//	}
//
// The AddAddress() flag type accepts 16 bit addresses in the forms commonly
// used for 6502 programs: "$c000", "0xc000" or decimal.
//
// For simplicity, all sub-mode comparisons are case insensitive.
package modalflag
