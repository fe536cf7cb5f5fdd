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

package mrdo

import (
	"github.com/jackson2k2/mame/hardware/input"
)

func (brd *Board) buildInputs() {
	brd.P1 = input.NewPort("p1").
		Bit(0x01, "left").
		Bit(0x02, "down").
		Bit(0x04, "right").
		Bit(0x08, "up").
		Bit(0x10, "button1").
		Bit(0x20, "start1").
		Bit(0x40, "start2").
		Bit(0x80, "tilt")

	brd.P2 = input.NewPort("p2").
		Bit(0x01, "left").
		Bit(0x02, "down").
		Bit(0x04, "right").
		Bit(0x08, "up").
		Bit(0x10, "button1").
		Bit(0x40, "coin1").
		Bit(0x80, "coin2")

	// the DIP tables never carry an invalid default so the errors are not
	// interesting
	brd.DSW1, _ = input.NewDIP("dsw1", []input.Switch{
		{Name: "Difficulty", Mask: 0x03, Default: "Easy", Settings: map[string]uint8{
			"Easy": 0x03, "Medium": 0x02, "Hard": 0x01, "Hardest": 0x00,
		}},
		{Name: "Rack Test", Mask: 0x04, Default: "Off", Settings: map[string]uint8{
			"Off": 0x04, "On": 0x00,
		}},
		{Name: "Special", Mask: 0x08, Default: "Easy", Settings: map[string]uint8{
			"Easy": 0x08, "Hard": 0x00,
		}},
		{Name: "Extra", Mask: 0x10, Default: "Easy", Settings: map[string]uint8{
			"Easy": 0x10, "Hard": 0x00,
		}},
		{Name: "Cabinet", Mask: 0x20, Default: "Upright", Settings: map[string]uint8{
			"Upright": 0x00, "Cocktail": 0x20,
		}},
		{Name: "Lives", Mask: 0xc0, Default: "3", Settings: map[string]uint8{
			"2": 0x00, "3": 0xc0, "4": 0x80, "5": 0x40,
		}},
	})

	brd.DSW2, _ = input.NewDIP("dsw2", []input.Switch{
		{Name: "Coin B", Mask: 0x0f, Default: "1C 1C", Settings: map[string]uint8{
			"4C 1C": 0x06, "3C 1C": 0x08, "2C 1C": 0x0a, "3C 2C": 0x07,
			"1C 1C": 0x0f, "2C 3C": 0x09, "1C 2C": 0x0e, "1C 3C": 0x0d,
			"1C 4C": 0x0c, "1C 5C": 0x0b, "Free Play": 0x00,
		}},
		{Name: "Coin A", Mask: 0xf0, Default: "1C 1C", Settings: map[string]uint8{
			"4C 1C": 0x60, "3C 1C": 0x80, "2C 1C": 0xa0, "3C 2C": 0x70,
			"1C 1C": 0xf0, "2C 3C": 0x90, "1C 2C": 0xe0, "1C 3C": 0xd0,
			"1C 4C": 0xc0, "1C 5C": 0xb0, "Free Play": 0x00,
		}},
	})
}
