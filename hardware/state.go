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

package hardware

import (
	"io"

	"github.com/jackson2k2/mame/curated"
)

// Serialisable is implemented by components whose state survives a
// save/restore cycle. Serialised forms are fixed-size per component;
// restoration is byte-exact.
type Serialisable interface {
	Serialise(w io.Writer) error
	Deserialise(r io.Reader) error
}

type statePart struct {
	name string
	s    Serialisable
}

// AddState registers a component with the machine's save state. Components
// are saved and restored in registration order so boards must register
// them deterministically.
func (mach *Machine) AddState(name string, s Serialisable) {
	mach.state = append(mach.state, statePart{name: name, s: s})
}

// ramState adapts a plain RAM block to the Serialisable interface.
type ramState []uint8

func (ram ramState) Serialise(w io.Writer) error {
	if _, err := w.Write(ram); err != nil {
		return curated.Errorf("ram: serialise: %v", err)
	}
	return nil
}

func (ram ramState) Deserialise(r io.Reader) error {
	if _, err := io.ReadFull(r, ram); err != nil {
		return curated.Errorf("ram: deserialise: %v", err)
	}
	return nil
}

// AddRAMState registers a RAM block with the machine's save state.
func (mach *Machine) AddRAMState(name string, ram []uint8) {
	mach.AddState(name, ramState(ram))
}

// SaveState writes the state of every registered component.
func (mach *Machine) SaveState(w io.Writer) error {
	for _, p := range mach.state {
		if err := p.s.Serialise(w); err != nil {
			return curated.Errorf("machine: %s: save state: %s: %v", mach.Name, p.name, err)
		}
	}
	return nil
}

// RestoreState reads back a state written by SaveState() on an identically
// constructed machine.
func (mach *Machine) RestoreState(r io.Reader) error {
	for _, p := range mach.state {
		if err := p.s.Deserialise(r); err != nil {
			return curated.Errorf("machine: %s: restore state: %s: %v", mach.Name, p.name, err)
		}
	}
	return nil
}
