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

package mrjong

import (
	"io"

	"github.com/jackson2k2/mame/boards"
	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/hardware"
	"github.com/jackson2k2/mame/hardware/input"
	"github.com/jackson2k2/mame/hardware/video"
	"github.com/jackson2k2/mame/logger"
)

const (
	screenWidth   = 256
	screenHeight  = 256
	visibleTop    = 16
	visibleBottom = 239

	// 262 scanlines per frame, one scheduler tick per scanline
	ticksPerFrame = 262
)

// Board is the Mr. Jong machine: one Z80 slot with its peripherals on the
// IO ports, a single tilemap and sixteen sprites at the head of video RAM.
type Board struct {
	Mach *hardware.Machine
	CPU  *hardware.CPU

	P1  *input.Port
	P2  *input.Port
	DSW *input.DIP

	// the undocumented jumper on IO port 3
	Jumper *input.DIP

	rom  []uint8
	ram  []uint8
	ram2 []uint8
	vram []uint8
	cram []uint8

	tilemap *video.Tilemap
	sprites *video.Gfx

	flipscreen bool
}

// NewBoard creates a Mr. Jong machine from the caller's ROM regions:
// maincpu (32K), gfx (8K) and proms (288 bytes).
func NewBoard(regions boards.Regions) (*Board, error) {
	var err error

	brd := &Board{
		Mach: hardware.NewMachine("mrjong"),
	}
	brd.Mach.TicksPerFrame = ticksPerFrame

	brd.rom, err = regions.Get("maincpu", 0x8000)
	if err != nil {
		return nil, curated.Errorf("mrjong: %v", err)
	}

	brd.ram = make([]uint8, 0x800)
	brd.ram2 = make([]uint8, 0x800)
	brd.vram = make([]uint8, 0x400)
	brd.cram = make([]uint8, 0x400)

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

	if err := brd.buildInputs(); err != nil {
		return nil, curated.Errorf("mrjong: %v", err)
	}

	brd.CPU = brd.Mach.AddCPU("maincpu")
	brd.buildMemoryMap()
	brd.buildIOMap()

	brd.Mach.OnVBlank(func() error {
		brd.drawFrame()
		brd.CPU.PulseNMI()
		return nil
	})

	brd.Mach.OnReset(func() {
		brd.flipscreen = false
		brd.tilemap.SetFlip(false)
	})

	brd.Mach.AddRAMState("ram", brd.ram)
	brd.Mach.AddRAMState("ram2", brd.ram2)
	brd.Mach.AddRAMState("videoram", brd.vram)
	brd.Mach.AddRAMState("colorram", brd.cram)
	brd.Mach.AddState("board", brd)

	brd.Mach.Reset()

	return brd, nil
}

func (brd *Board) buildMemoryMap() {
	p := brd.CPU.Program

	p.MapROM("rom", 0x0000, 0x7fff, brd.rom)
	p.MapRAM("ram", 0x8000, 0x87ff, 0x0000, brd.ram)
	p.MapRAM("ram2", 0xa000, 0xa7ff, 0x0000, brd.ram2)
	p.MapHandler("videoram", 0xe000, 0xe3ff, 0x0000,
		func(offset uint16) uint8 { return brd.vram[offset] },
		brd.videoramWrite)
	p.MapHandler("colorram", 0xe400, 0xe7ff, 0x0000,
		func(offset uint16) uint8 { return brd.cram[offset] },
		brd.colorramWrite)
}

func (brd *Board) buildIOMap() {
	p := brd.CPU.IO

	p.MapHandler("p2/flipscreen", 0x00, 0x00, 0x0000,
		func(_ uint16) uint8 { return brd.P2.Read() },
		func(_ uint16, data uint8) { brd.flipscreenWrite(data) })
	p.MapHandler("p1/sn76489 0", 0x01, 0x01, 0x0000,
		func(_ uint16) uint8 { return brd.P1.Read() },
		func(_ uint16, data uint8) {
			logger.Logf(logger.Allow, "mrjong", "psg 0 write %02x", data)
		})
	p.MapHandler("dsw/sn76489 1", 0x02, 0x02, 0x0000,
		func(_ uint16) uint8 { return brd.DSW.Read() },
		func(_ uint16, data uint8) {
			logger.Logf(logger.Allow, "mrjong", "psg 1 write %02x", data)
		})
	p.MapReadPort("jumper", 0x03, 0x0000, brd.Jumper.Read)
}

func (brd *Board) buildInputs() error {
	var err error

	brd.P1 = input.NewPort("P1").
		Bit(0x01, "p1 up").Bit(0x02, "p1 left").
		Bit(0x04, "p1 right").Bit(0x08, "p1 down").
		Bit(0x10, "p1 button1").
		Bit(0x20, "coin1").Bit(0x40, "coin2").
		ActiveHigh(0xff)

	// the top line of the second port idles high
	brd.P2 = input.NewPort("P2").
		Bit(0x01, "p2 up").Bit(0x02, "p2 left").
		Bit(0x04, "p2 right").Bit(0x08, "p2 down").
		Bit(0x10, "p2 button1").
		Bit(0x20, "p1 start").Bit(0x40, "p2 start").
		ActiveHigh(0x7f)

	brd.DSW, err = input.NewDIP("DSW", []input.Switch{
		{
			Name:     "Cabinet",
			Mask:     0x01,
			Settings: map[string]uint8{"Upright": 0x01, "Cocktail": 0x00},
			Default:  "Upright",
		},
		{
			Name:     "Flip Screen",
			Mask:     0x02,
			Settings: map[string]uint8{"Off": 0x00, "On": 0x02},
			Default:  "Off",
		},
		{
			Name:     "Bonus Life",
			Mask:     0x04,
			Settings: map[string]uint8{"30k": 0x00, "50k": 0x04},
			Default:  "30k",
		},
		{
			Name:     "Difficulty",
			Mask:     0x08,
			Settings: map[string]uint8{"Normal": 0x00, "Hard": 0x08},
			Default:  "Normal",
		},
		{
			Name:     "Lives",
			Mask:     0x30,
			Settings: map[string]uint8{"3": 0x00, "4": 0x10, "5": 0x20, "6": 0x30},
			Default:  "3",
		},
		{
			Name: "Coinage",
			Mask: 0xc0,
			Settings: map[string]uint8{
				"2 Coins/1 Credit": 0xc0,
				"1 Coin/1 Credit":  0x00,
				"1 Coin/2 Credits": 0x40,
				"1 Coin/3 Credits": 0x80,
			},
			Default: "1 Coin/1 Credit",
		},
	})
	if err != nil {
		return err
	}

	brd.Jumper, err = input.NewDIP("UNK", []input.Switch{
		{
			Name:     "Invincibility",
			Mask:     0x01,
			Settings: map[string]uint8{"Off": 0x00, "On": 0x01},
			Default:  "Off",
		},
	})
	return err
}

func (brd *Board) videoramWrite(offset uint16, data uint8) {
	if brd.vram[offset] != data {
		brd.vram[offset] = data
		brd.tilemap.MarkTileDirty(int(offset))
	}
}

func (brd *Board) colorramWrite(offset uint16, data uint8) {
	if brd.cram[offset] != data {
		brd.cram[offset] = data
		brd.tilemap.MarkTileDirty(int(offset))
	}
}

func (brd *Board) flipscreenWrite(data uint8) {
	brd.flipscreen = data&0x04 == 0x04
	brd.tilemap.SetFlip(brd.flipscreen)
}

// Serialise the board state not covered by the RAM blocks.
func (brd *Board) Serialise(w io.Writer) error {
	b := [1]uint8{}
	if brd.flipscreen {
		b[0] = 0x01
	}
	if _, err := w.Write(b[:]); err != nil {
		return curated.Errorf("mrjong: serialise: %v", err)
	}
	return nil
}

// Deserialise the board state written by Serialise(). The tile cache is
// invalidated because the RAM blocks underneath it have been restored.
func (brd *Board) Deserialise(r io.Reader) error {
	b := [1]uint8{}
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return curated.Errorf("mrjong: deserialise: %v", err)
	}

	brd.flipscreen = b[0] != 0x00
	brd.tilemap.SetFlip(brd.flipscreen)
	brd.tilemap.MarkAllDirty()

	return nil
}
