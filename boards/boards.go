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

// Package boards and its sub-packages describe specific arcade systems.
// Each sub-package wires the generic hardware components into a Machine
// for one PCB family.
//
// ROM and PROM data is never included. Callers supply the contents of
// every region the board expects; the Regions type carries them from
// whatever loading mechanism the caller uses.
package boards

import (
	"github.com/jackson2k2/mame/curated"
)

// Regions maps region names to their ROM or PROM contents. Region names
// and sizes are defined by each board package.
type Regions map[string][]uint8

// Get the named region, insisting on an exact size. Board construction
// fails cleanly on a missing or misdumped region rather than decoding
// garbage.
func (r Regions) Get(name string, size int) ([]uint8, error) {
	d, ok := r[name]
	if !ok {
		return nil, curated.Errorf("boards: missing region: %s", name)
	}
	if len(d) != size {
		return nil, curated.Errorf("boards: region %s: is %d bytes, should be %d", name, len(d), size)
	}
	return d, nil
}
