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

package input

import (
	"github.com/jackson2k2/mame/curated"
)

// Switch is one named switch within a DIP bank, covering one or more bits.
type Switch struct {
	Name string
	Mask uint8

	// value (pre-shift) by setting name
	Settings map[string]uint8

	// name of the factory default setting
	Default string
}

// DIP is a bank of up to eight DIP switches read as a single byte. The
// zero value is not usable; create with NewDIP.
type DIP struct {
	name     string
	switches []Switch
	value    uint8
}

// NewDIP creates a DIP bank from its switch table. Every switch starts at
// its factory default.
func NewDIP(name string, switches []Switch) (*DIP, error) {
	d := &DIP{
		name:     name,
		switches: switches,
	}
	for _, sw := range switches {
		v, ok := sw.Settings[sw.Default]
		if !ok {
			return nil, curated.Errorf("input: %s: switch %s has no setting named %s", name, sw.Name, sw.Default)
		}
		d.value = (d.value &^ sw.Mask) | v
	}
	return d, nil
}

// Name of the DIP bank.
func (d *DIP) Name() string {
	return d.name
}

// Select the named setting of the named switch.
func (d *DIP) Select(switchName string, setting string) error {
	for _, sw := range d.switches {
		if sw.Name != switchName {
			continue
		}
		v, ok := sw.Settings[setting]
		if !ok {
			return curated.Errorf("input: %s: switch %s has no setting named %s", d.name, switchName, setting)
		}
		d.value = (d.value &^ sw.Mask) | v
		return nil
	}
	return curated.Errorf("input: %s: no switch named %s", d.name, switchName)
}

// Read the DIP bank as the CPU sees it.
func (d *DIP) Read() uint8 {
	return d.value
}
