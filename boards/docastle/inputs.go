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

package docastle

import (
	"github.com/jackson2k2/mame/hardware/input"
)

var coinSettings = map[string]uint8{
	"4 Coins/1 Credit":  0x06,
	"3 Coins/1 Credit":  0x08,
	"2 Coins/1 Credit":  0x0a,
	"3 Coins/2 Credits": 0x07,
	"1 Coin/1 Credit":   0x0f,
	"2 Coins/3 Credits": 0x09,
	"1 Coin/2 Credits":  0x0e,
	"1 Coin/3 Credits":  0x0d,
	"1 Coin/4 Credits":  0x0c,
	"1 Coin/5 Credits":  0x0b,
	"Free Play":         0x00,
}

func shiftSettings(settings map[string]uint8, shift int) map[string]uint8 {
	shifted := make(map[string]uint8, len(settings))
	for name, v := range settings {
		shifted[name] = v << shift
	}
	return shifted
}

func docastleDSW1() []input.Switch {
	return []input.Switch{
		{
			Name: "Difficulty",
			Mask: 0x03,
			Settings: map[string]uint8{
				"1 (Beginner)": 0x03, "2": 0x02, "3": 0x01, "4 (Advanced)": 0x00,
			},
			Default: "1 (Beginner)",
		},
		{
			Name:     "Rack Test",
			Mask:     0x04,
			Settings: map[string]uint8{"Off": 0x04, "On": 0x00},
			Default:  "Off",
		},
		{
			Name:     "Advance Level on Getting Diamond",
			Mask:     0x08,
			Settings: map[string]uint8{"Off": 0x08, "On": 0x00},
			Default:  "Off",
		},
		{
			Name:     "Difficulty of EXTRA",
			Mask:     0x10,
			Settings: map[string]uint8{"Easy": 0x10, "Difficult": 0x00},
			Default:  "Easy",
		},
		{
			Name:     "Cabinet",
			Mask:     0x20,
			Settings: map[string]uint8{"Upright": 0x00, "Cocktail": 0x20},
			Default:  "Upright",
		},
		{
			Name:     "Lives",
			Mask:     0xc0,
			Settings: map[string]uint8{"2": 0x00, "3": 0xc0, "4": 0x80, "5": 0x40},
			Default:  "3",
		},
	}
}

func dorunrunDSW1() []input.Switch {
	return []input.Switch{
		{
			Name: "Difficulty",
			Mask: 0x03,
			Settings: map[string]uint8{
				"1 (Beginner)": 0x03, "2": 0x02, "3": 0x01, "4 (Advanced)": 0x00,
			},
			Default: "1 (Beginner)",
		},
		{
			Name:     "Demo Sounds",
			Mask:     0x04,
			Settings: map[string]uint8{"Off": 0x00, "On": 0x04},
			Default:  "On",
		},
		{
			Name:     "Flip Screen",
			Mask:     0x08,
			Settings: map[string]uint8{"Off": 0x08, "On": 0x00},
			Default:  "Off",
		},
		{
			Name:     "Difficulty of EXTRA",
			Mask:     0x10,
			Settings: map[string]uint8{"Easy": 0x10, "Difficult": 0x00},
			Default:  "Easy",
		},
		{
			Name:     "Cabinet",
			Mask:     0x20,
			Settings: map[string]uint8{"Upright": 0x00, "Cocktail": 0x20},
			Default:  "Upright",
		},
		{
			Name:     "Special",
			Mask:     0x40,
			Settings: map[string]uint8{"Given": 0x40, "Not Given": 0x00},
			Default:  "Given",
		},
		{
			Name:     "Lives",
			Mask:     0x80,
			Settings: map[string]uint8{"3": 0x80, "5": 0x00},
			Default:  "3",
		},
	}
}

func (brd *Board) buildInputs() error {
	var err error

	brd.Joys = input.NewPort("JOYS").
		Bit(0x01, "p1 right").Bit(0x02, "p1 up").
		Bit(0x04, "p1 left").Bit(0x08, "p1 down").
		Bit(0x10, "p2 right").Bit(0x20, "p2 up").
		Bit(0x40, "p2 left").Bit(0x80, "p2 down")

	brd.Buttons = input.NewPort("BUTTONS").
		Bit(0x01, "p1 button1").Bit(0x02, "p1 button2").
		Bit(0x08, "p1 start").
		Bit(0x10, "p2 button1").Bit(0x20, "p2 button2").
		Bit(0x80, "p2 start")

	brd.System = input.NewPort("SYSTEM").
		Bit(0x01, "tilt").
		Bit(0x02, "service mode").
		Bit(0x04, "service coin").
		Bit(0x08, "freeze").
		Bit(0x10, "coin2").
		Bit(0x20, "coin1")

	switch brd.variant {
	case DoRunRun:
		brd.DSW1, err = input.NewDIP("DSW1", dorunrunDSW1())
	default:
		brd.DSW1, err = input.NewDIP("DSW1", docastleDSW1())
	}
	if err != nil {
		return err
	}

	brd.DSW2, err = input.NewDIP("DSW2", []input.Switch{
		{Name: "Coin B", Mask: 0x0f, Settings: coinSettings, Default: "1 Coin/1 Credit"},
		{Name: "Coin A", Mask: 0xf0, Settings: shiftSettings(coinSettings, 4), Default: "1 Coin/1 Credit"},
	})
	if err != nil {
		return err
	}

	// each port is read a nibble at a time through a pair of TMS1025
	// multiplexers
	brd.muxLow = input.NewMultiplexer()
	brd.muxHigh = input.NewMultiplexer()

	sources := map[int]func() uint8{
		1: brd.DSW2.Read,
		2: brd.DSW1.Read,
		3: brd.Joys.Read,
		5: brd.Buttons.Read,
		7: brd.System.Read,
	}
	for pos, read := range sources {
		read := read
		brd.muxLow.Connect(pos, func() uint8 { return read() & 0x0f })
		brd.muxHigh.Connect(pos, func() uint8 { return read() >> 4 })
	}

	return nil
}

// inputsRead services the shared input/flipscreen decode on the second
// CPU. The multiplexers answer with the ports selected by the previous
// access before the low address bits are latched as the new selection.
func (brd *Board) inputsRead(offset uint16) uint8 {
	buf := brd.muxHigh.Read()<<4 | brd.muxLow.Read()&0x0f

	brd.muxLow.Select(int(offset & 0x07))
	brd.muxHigh.Select(int(offset & 0x07))
	brd.flipscreenWrite(offset, 0)

	return buf
}
