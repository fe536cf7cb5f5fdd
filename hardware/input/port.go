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
	"github.com/jackson2k2/mame/logger"
)

// Port is one eight bit input port. Bits are declared with the Bit()
// function; undeclared bits read as released.
type Port struct {
	name string

	// mask of bits declared active low. pressed inputs pull these bits
	// down, so the port's idle value has them high
	activeLow uint8

	// bit masks by input tag
	bits map[string]uint8

	// mask of currently actuated inputs, regardless of polarity
	pressed uint8
}

// NewPort is the preferred method of initialisation for the Port type.
func NewPort(name string) *Port {
	return &Port{
		name:      name,
		activeLow: 0xff,
		bits:      make(map[string]uint8),
	}
}

// Name of the port.
func (p *Port) Name() string {
	return p.name
}

// Bit declares an input line at the mask. The tag is the handle used by
// Set(). Declaring several lines under a shared tag (a multi-bit mask) is
// allowed. Returns the port for chaining.
func (p *Port) Bit(mask uint8, tag string) *Port {
	p.bits[tag] |= mask
	return p
}

// ActiveHigh marks the masked bits as active high rather than the default
// active low. Returns the port for chaining.
func (p *Port) ActiveHigh(mask uint8) *Port {
	p.activeLow &^= mask
	return p
}

// Set the actuated state of the tagged input.
func (p *Port) Set(tag string, pressed bool) {
	mask, ok := p.bits[tag]
	if !ok {
		logger.Logf(logger.Allow, "input", "%s: no input tagged %s", p.name, tag)
		return
	}
	if pressed {
		p.pressed |= mask
	} else {
		p.pressed &^= mask
	}
}

// Release all actuated inputs on the port.
func (p *Port) Release() {
	p.pressed = 0
}

// Read the port as the CPU sees it.
func (p *Port) Read() uint8 {
	return p.pressed ^ p.activeLow
}
