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

package test

import "testing"

// Equatable is the type constraint for the Equate() function.
type Equatable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string | ~bool
}

// Equate is used to test equality between one value and another.
//
// Both values must be of the same type. In particular this means that a
// literal number argument will be an int, so a non-int value should be
// compared against an explicit conversion:
//
//	test.Equate(t, offset, uint16(8))
func Equate[T Equatable](t *testing.T, value, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equation of type %T failed (%v  - wanted %v)", value, value, expectedValue)
	}
}

// EquateSlices compares every element of the two slices. Slices of unequal
// length always fail.
func EquateSlices[T Equatable](t *testing.T, values, expectedValues []T) {
	t.Helper()
	if len(values) != len(expectedValues) {
		t.Errorf("equation of %T slices failed (length %d - wanted %d)", values, len(values), len(expectedValues))
		return
	}
	for i := range values {
		if values[i] != expectedValues[i] {
			t.Errorf("equation of %T slices failed at index %d (%v - wanted %v)", values, i, values[i], expectedValues[i])
		}
	}
}
