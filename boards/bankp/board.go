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

package bankp

import (
	"fmt"
	"io"

	"github.com/jackson2k2/mame/boards"
	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/hardware"
	"github.com/jackson2k2/mame/hardware/input"
	"github.com/jackson2k2/mame/hardware/video"
	"github.com/jackson2k2/mame/logger"
)

// Variant selects the board revision.
type Variant int

// List of valid Variant values.
const (
	// BankPanic is the original 1984 board.
	BankPanic Variant = iota

	// CombatHawk reuses the hardware with a vertical monitor. The
	// joystick moves to the other axis and the switch bank is read
	// differently.
	CombatHawk
)

const (
	screenWidth   = 256
	screenHeight  = 256
	visibleTop    = 16
	visibleBottom = 239

	// 256 scanlines per frame, one scheduler tick per scanline
	ticksPerFrame = 256
)

// Board is the Bank Panic machine: one Z80 with the two tilemaps on the
// program bus and everything else behind the IO ports.
type Board struct {
	Mach    *hardware.Machine
	CPU     *hardware.CPU
	Variant Variant

	IN0 *input.Port
	IN1 *input.Port
	IN2 *input.Port
	DSW *input.DIP

	rom    []uint8
	ram    []uint8
	fgVram []uint8
	fgCram []uint8
	bgVram []uint8
	bgCram []uint8

	fg *video.Tilemap
	bg *video.Tilemap

	scrollX uint8

	// the video control register. see videoControlWrite()
	control uint8
}

// NewBoard creates a Bank Panic machine from the caller's ROM regions:
// maincpu (56K), fgtiles (16K), bgtiles (48K) and proms (544 bytes).
func NewBoard(variant Variant, regions boards.Regions) (*Board, error) {
	var err error

	brd := &Board{
		Mach:    hardware.NewMachine("bankp"),
		Variant: variant,
	}
	brd.Mach.TicksPerFrame = ticksPerFrame

	brd.rom, err = regions.Get("maincpu", 0xe000)
	if err != nil {
		return nil, curated.Errorf("bankp: %v", err)
	}

	brd.ram = make([]uint8, 0x1000)
	brd.fgVram = make([]uint8, 0x400)
	brd.fgCram = make([]uint8, 0x400)
	brd.bgVram = make([]uint8, 0x400)
	brd.bgCram = make([]uint8, 0x400)

	pal, err := buildPalette(regions)
	if err != nil {
		return nil, err
	}
	brd.Mach.Screen = video.NewScreen(screenWidth, screenHeight, pal)
	brd.Mach.Screen.VisibleTop = visibleTop
	brd.Mach.Screen.VisibleBottom = visibleBottom

	if err := brd.buildGfx(regions); err != nil {
		return nil, err
	}

	if err := brd.buildInputs(variant); err != nil {
		return nil, curated.Errorf("bankp: %v", err)
	}

	brd.CPU = brd.Mach.AddCPU("maincpu")
	brd.buildMemoryMap()
	brd.buildIOMap()

	brd.Mach.OnVBlank(func() error {
		brd.drawFrame()
		if brd.control&0x10 == 0x10 {
			brd.CPU.PulseNMI()
		}
		return nil
	})

	brd.Mach.OnReset(func() {
		brd.scrollX = 0
		brd.videoControlWrite(0x00)
	})

	brd.Mach.AddRAMState("ram", brd.ram)
	brd.Mach.AddRAMState("videoram1", brd.fgVram)
	brd.Mach.AddRAMState("colorram1", brd.fgCram)
	brd.Mach.AddRAMState("videoram2", brd.bgVram)
	brd.Mach.AddRAMState("colorram2", brd.bgCram)
	brd.Mach.AddState("board", brd)

	brd.Mach.Reset()

	return brd, nil
}

func (brd *Board) buildMemoryMap() {
	p := brd.CPU.Program

	p.MapROM("rom", 0x0000, 0xdfff, brd.rom)
	p.MapRAM("ram", 0xe000, 0xefff, 0x0000, brd.ram)
	brd.mapVideoRAM("videoram1", 0xf000, brd.fgVram, brd.fg)
	brd.mapVideoRAM("colorram1", 0xf400, brd.fgCram, brd.fg)
	brd.mapVideoRAM("videoram2", 0xf800, brd.bgVram, brd.bg)
	brd.mapVideoRAM("colorram2", 0xfc00, brd.bgCram, brd.bg)
}

func (brd *Board) mapVideoRAM(name string, origin uint16, ram []uint8, t *video.Tilemap) {
	brd.CPU.Program.MapHandler(name, origin, origin+0x03ff, 0x0000,
		func(offset uint16) uint8 { return ram[offset] },
		func(offset uint16, data uint8) {
			if ram[offset] != data {
				ram[offset] = data
				t.MarkTileDirty(int(offset))
			}
		})
}

func (brd *Board) buildIOMap() {
	p := brd.CPU.IO

	for i, port := range []*input.Port{brd.IN0, brd.IN1, brd.IN2} {
		i := i
		port := port
		p.MapHandler(fmt.Sprintf("in%d/sn76489 %d", i, i), uint16(i), uint16(i), 0x0000,
			func(_ uint16) uint8 { return port.Read() },
			func(_ uint16, data uint8) {
				logger.Logf(logger.Allow, "bankp", "psg %d write %02x", i, data)
			})
	}

	p.MapReadPort("dsw", 0x04, 0x0000, brd.DSW.Read)
	p.MapWritePort("scroll", 0x05, 0x0000, func(data uint8) {
		brd.scrollX = data
	})
	p.MapWritePort("video control", 0x07, 0x0000, brd.videoControlWrite)
}

func (brd *Board) buildInputs(variant Variant) error {
	var err error

	brd.IN0 = input.NewPort("IN0").
		Bit(0x10, "p1 button1").Bit(0x20, "coin1").
		Bit(0x40, "service").Bit(0x80, "p1 button2").
		ActiveHigh(0xff)
	brd.IN1 = input.NewPort("IN1").
		Bit(0x10, "p2 button1").Bit(0x20, "p1 start").
		Bit(0x40, "p2 start").Bit(0x80, "p2 button2").
		ActiveHigh(0xff)
	brd.IN2 = input.NewPort("IN2").
		Bit(0x01, "p1 button3").Bit(0x02, "p2 button3").
		Bit(0x04, "coin2").
		ActiveHigh(0xff)

	// the two-way stick sits on the other axis on the vertical monitor
	// variant
	if variant == CombatHawk {
		brd.IN0.Bit(0x01, "p1 up").Bit(0x04, "p1 down")
		brd.IN1.Bit(0x01, "p2 up").Bit(0x04, "p2 down")
	} else {
		brd.IN0.Bit(0x02, "p1 right").Bit(0x08, "p1 left")
		brd.IN1.Bit(0x02, "p2 right").Bit(0x08, "p2 left")
	}

	switch variant {
	case CombatHawk:
		brd.DSW, err = input.NewDIP("DSW1", []input.Switch{
			{
				Name:     "Flip Screen",
				Mask:     0x01,
				Settings: map[string]uint8{"Off": 0x00, "On": 0x01},
				Default:  "Off",
			},
			{
				Name: "Coinage",
				Mask: 0x06,
				Settings: map[string]uint8{
					"2 Coins/1 Credit": 0x06,
					"1 Coin/1 Credit":  0x00,
					"1 Coin/2 Credits": 0x02,
					"1 Coin/3 Credits": 0x04,
				},
				Default: "1 Coin/1 Credit",
			},
			{
				Name:     "Cabinet",
				Mask:     0x10,
				Settings: map[string]uint8{"Upright": 0x10, "Cocktail": 0x00},
				Default:  "Upright",
			},
			{
				Name:     "Difficulty",
				Mask:     0x40,
				Settings: map[string]uint8{"Easy": 0x00, "Hard": 0x40},
				Default:  "Easy",
			},
			{
				Name:     "Fuel",
				Mask:     0x80,
				Settings: map[string]uint8{"120 Units": 0x00, "90 Units": 0x80},
				Default:  "120 Units",
			},
		})
	default:
		brd.DSW, err = input.NewDIP("DSW1", []input.Switch{
			{
				Name: "Coin Switch 1",
				Mask: 0x03,
				Settings: map[string]uint8{
					"3 Coins/1 Credit": 0x03,
					"2 Coins/1 Credit": 0x02,
					"1 Coin/1 Credit":  0x00,
					"1 Coin/2 Credits": 0x01,
				},
				Default: "1 Coin/1 Credit",
			},
			{
				Name: "Coin Switch 2",
				Mask: 0x04,
				Settings: map[string]uint8{
					"2 Coins/1 Credit": 0x04,
					"1 Coin/1 Credit":  0x00,
				},
				Default: "1 Coin/1 Credit",
			},
			{
				Name:     "Lives",
				Mask:     0x08,
				Settings: map[string]uint8{"3": 0x00, "4": 0x08},
				Default:  "3",
			},
			{
				Name:     "Bonus Life",
				Mask:     0x10,
				Settings: map[string]uint8{"70k 200k 500k": 0x00, "100k 400k 800k": 0x10},
				Default:  "70k 200k 500k",
			},
			{
				Name:     "Difficulty",
				Mask:     0x20,
				Settings: map[string]uint8{"Easy": 0x00, "Hard": 0x20},
				Default:  "Easy",
			},
			{
				Name:     "Demo Sounds",
				Mask:     0x40,
				Settings: map[string]uint8{"Off": 0x00, "On": 0x40},
				Default:  "On",
			},
			{
				Name:     "Cabinet",
				Mask:     0x80,
				Settings: map[string]uint8{"Upright": 0x80, "Cocktail": 0x00},
				Default:  "Upright",
			},
		})
	}
	return err
}

// Serialise the board state not covered by the RAM blocks.
func (brd *Board) Serialise(w io.Writer) error {
	b := [2]uint8{brd.scrollX, brd.control}
	if _, err := w.Write(b[:]); err != nil {
		return curated.Errorf("bankp: serialise: %v", err)
	}
	return nil
}

// Deserialise the board state written by Serialise(). The tile caches are
// invalidated because the RAM blocks underneath them have been restored.
func (brd *Board) Deserialise(r io.Reader) error {
	b := [2]uint8{}
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return curated.Errorf("bankp: deserialise: %v", err)
	}

	brd.scrollX = b[0]
	brd.videoControlWrite(b[1])
	brd.fg.MarkAllDirty()
	brd.bg.MarkAllDirty()

	return nil
}
