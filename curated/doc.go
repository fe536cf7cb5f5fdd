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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error. Unlike fmt errors, the pattern string is kept
// and can be tested for with the Is() function:
//
//	e := curated.Errorf("latch: timeout after %d ticks", n)
//
//	if curated.Is(e, "latch: timeout after %d ticks") {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, rather than at the head of the chain only. IsAny() answers
// whether the error was created by this package at all; errors from other
// sources can be treated as unexpected.
//
// The Error() function implementation normalises the error chain such that
// adjacent duplicate parts are removed. This alleviates the problem of when
// and how to wrap an error as it is passed back up the call chain.
package curated
