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

// Package test bundles a bunch of useful functions useful for testing
// purposes, particular useful in conjunction with the standard go test harness.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report a failure with t.Fatalf() and
// should be used when later parts of the test depend on the value being
// correct.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. Currently supported types are bool and error.
//
// It is worth describing how these functions handle the nil type because it
// is not obvious. The nil type is considered a success and consequently will
// cause ExpectFailure() to fail and ExpectSuccess() to succeed. This may not
// be how we want to interpret nil in all situations but because of how errors
// usually works (nil to indicate no error) we *need* to interpret nil in this
// way.
//
// All of the Expect*() and Demand*() functions accept optional tag values.
// These are added to the start of a failure message and help identify which
// iteration of a loop was being tested when the failure occurred.
//
// The CompareWriter, CappedWriter and RingWriter types implement the io.Writer
// interface and should be used to capture output.
package test
