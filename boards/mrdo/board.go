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
	"io"

	"github.com/jackson2k2/mame/boards"
	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/hardware"
	"github.com/jackson2k2/mame/hardware/bus"
	"github.com/jackson2k2/mame/hardware/input"
	"github.com/jackson2k2/mame/hardware/video"
	"github.com/jackson2k2/mame/logger"
)

// Variant selects the board revision.
type Variant int

// List of valid Variant values.
const (
	// MrDo is the original Universal release. The protection readback is
	// answered from program ROM.
	MrDo Variant = iota

	// MrDoTaito is the Taito licensed revision with the PAL16R6 answering
	// the protection readback.
	MrDoTaito

	// MrLo is the bootleg with the protection device removed.
	MrLo
)

// screen geometry. the bitmap covers the full 256x256 tilemap space with
// the monitor's visible window marked on the screen. 262 scanlines per
// frame, one scheduler tick per scanline
const (
	screenWidth   = 256
	screenHeight  = 256
	visibleTop    = 32
	visibleBottom = 223
	ticksPerFrame = 262
)

// Board is the Mr. Do! machine: one Z80 slot, two tilemaps and a sprite
// generator sharing a 320 pen palette.
type Board struct {
	Mach *hardware.Machine
	CPU  *hardware.CPU

	P1   *input.Port
	P2   *input.Port
	DSW1 *input.DIP
	DSW2 *input.DIP

	variant Variant

	rom []uint8
	ram []uint8

	// two tilemap layers, each split across a tile code plane and an
	// attribute plane
	fieldram [2][]uint8
	colorram [2][]uint8

	spriteram []uint8

	tilemaps [2]*video.Tilemap
	sprites  *video.Gfx

	flipscreen bool
	scrollX    uint8
	scrollY    uint8

	// protection state. palU001 is the PAL16R6 output register; protAddr
	// stands in for the Z80 HL register pair on the bypass path
	palU001  uint8
	protAddr uint16
}

// NewBoard creates a Mr. Do! machine from the caller's ROM regions. The
// regions are maincpu (32K), bgtiles (8K), fgtiles (8K), sprites (8K) and
// proms (128 bytes).
func NewBoard(variant Variant, regions boards.Regions) (*Board, error) {
	var err error

	brd := &Board{
		variant: variant,
		Mach:    hardware.NewMachine("mrdo"),
	}
	brd.Mach.TicksPerFrame = ticksPerFrame

	brd.rom, err = regions.Get("maincpu", 0x8000)
	if err != nil {
		return nil, curated.Errorf("mrdo: %v", err)
	}

	brd.ram = make([]uint8, 0x1000)
	for i := range brd.fieldram {
		brd.fieldram[i] = make([]uint8, 0x400)
		brd.colorram[i] = make([]uint8, 0x400)
	}
	brd.spriteram = make([]uint8, 0x100)

	pal, err := brd.buildPalette(regions)
	if err != nil {
		return nil, err
	}
	brd.Mach.Screen = video.NewScreen(screenWidth, screenHeight, pal)
	brd.Mach.Screen.VisibleTop = visibleTop
	brd.Mach.Screen.VisibleBottom = visibleBottom

	if err := brd.buildTilemaps(regions); err != nil {
		return nil, err
	}

	brd.buildInputs()

	brd.CPU = brd.Mach.AddCPU("maincpu")
	brd.buildMemoryMap()

	brd.Mach.OnVBlank(func() error {
		brd.drawFrame()
		brd.CPU.SetIRQLine(true)
		return nil
	})

	brd.Mach.OnReset(func() {
		// PAL outputs are high on power-up
		brd.palU001 = 0xff

		brd.flipscreen = false
		brd.scrollX = 0
		brd.scrollY = 0
		brd.tilemaps[0].SetScrollX(0)
		brd.tilemaps[0].SetScrollY(0)
		for _, tm := range brd.tilemaps {
			tm.SetFlip(false)
		}
	})

	brd.Mach.AddRAMState("ram", brd.ram)
	brd.Mach.AddRAMState("bg fieldram", brd.fieldram[0])
	brd.Mach.AddRAMState("bg colorram", brd.colorram[0])
	brd.Mach.AddRAMState("fg fieldram", brd.fieldram[1])
	brd.Mach.AddRAMState("fg colorram", brd.colorram[1])
	brd.Mach.AddRAMState("spriteram", brd.spriteram)
	brd.Mach.AddState("video", brd)

	brd.Mach.Reset()

	return brd, nil
}

func (brd *Board) buildMemoryMap() {
	p := brd.CPU.Program

	p.MapROM("rom", 0x0000, 0x7fff, brd.rom)

	p.MapHandler("bg colorram", 0x8000, 0x83ff, 0x0000,
		func(offset uint16) uint8 { return brd.colorram[0][offset] },
		func(offset uint16, data uint8) { brd.colorramWrite(0, offset, data) })
	p.MapHandler("bg fieldram", 0x8400, 0x87ff, 0x0000,
		func(offset uint16) uint8 { return brd.fieldram[0][offset] },
		func(offset uint16, data uint8) { brd.fieldramWrite(0, offset, data) })
	p.MapHandler("fg colorram", 0x8800, 0x8bff, 0x0000,
		func(offset uint16) uint8 { return brd.colorram[1][offset] },
		func(offset uint16, data uint8) { brd.colorramWrite(1, offset, data) })
	p.MapHandler("fg fieldram", 0x8c00, 0x8fff, 0x0000,
		func(offset uint16) uint8 { return brd.fieldram[1][offset] },
		func(offset uint16, data uint8) { brd.fieldramWrite(1, offset, data) })

	p.MapHandler("spriteram", 0x9000, 0x90ff, 0x0700,
		nil,
		func(offset uint16, data uint8) { brd.spriteram[offset] = data })

	p.MapWritePort("flipscreen", 0x9800, 0x07f8, brd.flipscreenWrite)
	p.MapWritePort("sn76489 0", 0x9801, 0x07f8, func(data uint8) {
		logger.Logf(logger.Allow, "mrdo", "psg 0 write %02x", data)
	})
	p.MapWritePort("sn76489 1", 0x9802, 0x07f8, func(data uint8) {
		logger.Logf(logger.Allow, "mrdo", "psg 1 write %02x", data)
	})
	p.MapReadPort("protection", 0x9803, 0x07f8, brd.protectionRead)

	p.MapReadPort("p1", 0xa000, 0x0ff8, brd.P1.Read)
	p.MapReadPort("p2", 0xa001, 0x0ff8, brd.P2.Read)
	p.MapReadPort("dsw1", 0xa002, 0x0ff8, brd.DSW1.Read)
	p.MapReadPort("dsw2", 0xa003, 0x0ff8, brd.DSW2.Read)

	p.MapRAM("ram", 0xe000, 0xefff, 0x0000, brd.ram)

	p.MapWritePort("scrollx", 0xf000, 0x07ff, brd.scrollxWrite)
	p.MapWritePort("scrolly", 0xf800, 0x07ff, brd.scrollyWrite)
}

func (brd *Board) scrollxWrite(data uint8) {
	brd.scrollX = data

	// tilemap scroll offsets are map relative; the register shifts the
	// image the other way
	brd.tilemaps[0].SetScrollX(-int(data))
}

func (brd *Board) scrollyWrite(data uint8) {
	brd.scrollY = data

	// the register shifts the image downwards, which is a negative map
	// relative offset. vertical scroll is not inverted by the flipscreen
	// circuit so the negation is dropped when the screen is flipped
	if brd.flipscreen {
		brd.tilemaps[0].SetScrollY(int(data))
	} else {
		brd.tilemaps[0].SetScrollY((256 - int(data)) & 0xff)
	}
}

func (brd *Board) flipscreenWrite(data uint8) {
	// bits 1-3 select the playfield priority but no revision of the game
	// uses them
	brd.flipscreen = data&0x01 == 0x01
	for _, tm := range brd.tilemaps {
		tm.SetFlip(brd.flipscreen)
	}
}

// SetProtectionAddress stands in for the Z80 HL register pair on the
// bypass path of the protection readback, which the original hardware
// answers with a program ROM byte.
func (brd *Board) SetProtectionAddress(addr uint16) {
	brd.protAddr = addr
}

func (brd *Board) protectionRead() uint8 {
	switch brd.variant {
	case MrDo:
		return brd.rom[brd.protAddr&0x7fff]
	case MrDoTaito:
		return brd.palU001
	}
	return bus.FloatingBus
}

// each write to tile RAM clocks the PAL16R6 with the data byte. only the
// Taito revision has the device fitted.
func (brd *Board) protectionWrite(data uint8) {
	if brd.variant != MrDoTaito {
		return
	}

	i9 := data >> 0 & 0x01
	i8 := data >> 1 & 0x01
	i6 := data >> 3 & 0x01
	i5 := data >> 4 & 0x01
	i4 := data >> 5 & 0x01
	i3 := data >> 6 & 0x01
	i2 := data >> 7 & 0x01

	// product terms extracted from the PAL dump
	t1 := i2 & (1 ^ i3) & i4 & (1 ^ i5) & (1 ^ i6) & (1 ^ i8) & i9
	t2 := (1 ^ i2) & (1 ^ i3) & i4 & i5 & (1 ^ i6) & i8 & (1 ^ i9)
	t3 := i2 & i3 & (1 ^ i4) & (1 ^ i5) & i6 & (1 ^ i8) & i9
	t4 := (1 ^ i2) & i3 & i4 & (1 ^ i5) & i6 & i8 & i9

	r13 := t1 << 1
	r14 := (t1 | t2) << 2
	r15 := (t1 | t3) << 3
	r16 := t1 << 4
	r17 := (t1 | t3) << 5
	r18 := (t3 | t4) << 6

	brd.palU001 = ^(r18 | r17 | r16 | r15 | r14 | r13)
}

func (brd *Board) fieldramWrite(layer int, offset uint16, data uint8) {
	if brd.fieldram[layer][offset] != data {
		brd.fieldram[layer][offset] = data
		brd.tilemaps[layer].MarkTileDirty(int(offset))
	}
	brd.protectionWrite(data)
}

func (brd *Board) colorramWrite(layer int, offset uint16, data uint8) {
	if brd.colorram[layer][offset] != data {
		brd.colorram[layer][offset] = data
		brd.tilemaps[layer].MarkTileDirty(int(offset))
	}
	brd.protectionWrite(data)
}

// Serialise the board state not covered by the RAM blocks.
func (brd *Board) Serialise(w io.Writer) error {
	b := []uint8{
		boolByte(brd.flipscreen),
		brd.scrollX,
		brd.scrollY,
		brd.palU001,
		uint8(brd.protAddr),
		uint8(brd.protAddr >> 8),
	}
	if _, err := w.Write(b); err != nil {
		return curated.Errorf("mrdo: serialise: %v", err)
	}
	return nil
}

// Deserialise the board state written by Serialise().
func (brd *Board) Deserialise(r io.Reader) error {
	b := make([]uint8, 6)
	if _, err := io.ReadFull(r, b); err != nil {
		return curated.Errorf("mrdo: deserialise: %v", err)
	}

	brd.flipscreenWrite(b[0])
	brd.scrollxWrite(b[1])
	brd.scrollyWrite(b[2])
	brd.palU001 = b[3]
	brd.protAddr = uint16(b[4]) | uint16(b[5])<<8

	// RAM blocks are restored separately so every tile is stale
	for _, tm := range brd.tilemaps {
		tm.MarkAllDirty()
	}

	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 0x01
	}
	return 0x00
}
