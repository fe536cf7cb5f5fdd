// This file is part of GoMAME.
//
// GoMAME is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoMAME is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoMAME.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate from
// package tests. They are one-liners intended to keep the tests themselves
// readable:
//
//	v := mem.Read(0xa000)
//	test.Equate(t, v, 0xff)
//
// Equate() compares like-typed values. ExpectedSuccess() and
// ExpectedFailure() accept bools and errors and test for the obvious
// condition. Writer is an io.Writer implementation that tests whether what
// is being written matches what is expected.
package test
