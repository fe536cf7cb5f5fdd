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

import (
	"strings"
	"testing"
)

// Writer is an io.Writer implementation for tests that want to check what is
// being written to it. The zero value is ready for use.
type Writer struct {
	b strings.Builder
}

// Write implements the io.Writer interface.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.b.Write(p)
}

// Compare the accumulated writes against string s.
func (w *Writer) Compare(t *testing.T, s string) bool {
	t.Helper()
	if w.b.String() != s {
		t.Errorf("writer comparison failed (%q - wanted %q)", w.b.String(), s)
		return false
	}
	return true
}

// Contains tests whether the accumulated writes contain string s.
func (w *Writer) Contains(t *testing.T, s string) bool {
	t.Helper()
	if !strings.Contains(w.b.String(), s) {
		t.Errorf("writer does not contain %q (has %q)", s, w.b.String())
		return false
	}
	return true
}

// Reset the accumulated writes.
func (w *Writer) Reset() {
	w.b.Reset()
}
