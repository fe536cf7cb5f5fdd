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
	"fmt"
	"io"

	"github.com/jackson2k2/mame/boards"
	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/hardware"
	"github.com/jackson2k2/mame/hardware/bus"
	"github.com/jackson2k2/mame/hardware/input"
	"github.com/jackson2k2/mame/hardware/latch"
	"github.com/jackson2k2/mame/hardware/video"
	"github.com/jackson2k2/mame/hardware/watchdog"
	"github.com/jackson2k2/mame/logger"
)

// Variant selects the board revision.
type Variant int

// List of valid Variant values.
const (
	// DoCastle is the original Mr. Do's Castle map.
	DoCastle Variant = iota

	// DoRunRun covers Do! Run Run and Mr. Do's Wild Ride, which rearrange
	// the first CPU's map and invert the tile pen split.
	DoRunRun
)

const (
	screenWidth   = 256
	screenHeight  = 256
	visibleBottom = 191

	// 264 scanlines per frame, one scheduler tick per scanline
	ticksPerFrame = 264

	// the hand-off token shared by the latch suspend and resume paths
	handOffToken = 500

	// a hand-off is answered within the frame on working software; a
	// wedged peer forfeits after this many ticks
	handOffMaxWait = ticksPerFrame

	// frames without a watchdog strobe before the machine resets
	watchdogFrames = 8
)

// Board is the Mr. Do's Castle machine.
type Board struct {
	Mach *hardware.Machine

	// the three Z80 slots in schematic order. the game program, the
	// input/sound handler and the sprite RAM doorway
	CPU [3]*hardware.CPU

	// the synchronising latch between CPU 0 and CPU 1
	Latch *latch.Latch

	Watchdog *watchdog.Watchdog

	Joys    *input.Port
	Buttons *input.Port
	System  *input.Port
	DSW1    *input.DIP
	DSW2    *input.DIP

	variant Variant

	rom  [3][]uint8
	ram  [3][]uint8
	vram []uint8
	cram []uint8

	spriteram []uint8

	tilemap *video.Tilemap
	sprites *video.Gfx

	// the two TMS1025 chips splitting every input port into nibbles
	muxLow  *input.Multiplexer
	muxHigh *input.Multiplexer

	flipscreen bool
}

// NewBoard creates a Mr. Do's Castle machine from the caller's ROM
// regions: cpu1 (64K), cpu2 (16K), cpu3 (512 bytes), gfx8x8 (16K),
// gfx16x16 (32K) and proms (512 bytes).
//
// The strategy argument selects how the inter-CPU latch synchronises the
// first two slots.
func NewBoard(variant Variant, strategy latch.Strategy, regions boards.Regions) (*Board, error) {
	var err error

	brd := &Board{
		variant: variant,
		Mach:    hardware.NewMachine("docastle"),
	}
	brd.Mach.TicksPerFrame = ticksPerFrame

	romSizes := []int{0x10000, 0x4000, 0x200}
	romNames := []string{"cpu1", "cpu2", "cpu3"}
	for i := range brd.rom {
		brd.rom[i], err = regions.Get(romNames[i], romSizes[i])
		if err != nil {
			return nil, curated.Errorf("docastle: %v", err)
		}
	}

	brd.ram[0] = make([]uint8, 0x1800)
	brd.ram[1] = make([]uint8, 0x800)
	brd.ram[2] = make([]uint8, 0x800)
	brd.vram = make([]uint8, 0x400)
	brd.cram = make([]uint8, 0x400)
	brd.spriteram = make([]uint8, 0x200)

	pal, err := buildPalette(regions)
	if err != nil {
		return nil, err
	}
	brd.Mach.Screen = video.NewScreen(screenWidth, screenHeight, pal)
	brd.Mach.Screen.VisibleBottom = visibleBottom

	if err := brd.buildGfx(regions); err != nil {
		return nil, err
	}

	if err := brd.buildInputs(); err != nil {
		return nil, curated.Errorf("docastle: %v", err)
	}

	for i := range brd.CPU {
		brd.CPU[i] = brd.Mach.AddCPU(romNames[i])
	}

	switch strategy {
	case latch.WaitLine:
		brd.Latch = latch.NewWaitLineLatch(brd.CPU[0])
	default:
		brd.Latch = latch.NewLatch(brd.Mach.Sched, handOffToken, handOffMaxWait)
		brd.Latch.AttachExpiry(brd.Mach.Sched)
	}

	brd.Watchdog = watchdog.NewWatchdog(watchdogFrames*ticksPerFrame, func() {
		logger.Log(logger.Allow, "docastle", "watchdog expired")
		brd.Mach.Reset()
	})
	brd.Mach.Sched.AddRunner("watchdog", brd.Watchdog)

	switch variant {
	case DoRunRun:
		brd.buildDoRunRunMaps()
	default:
		brd.buildDoCastleMaps()
	}

	brd.Mach.OnVBlank(func() error {
		brd.drawFrame()

		// the CRTC vsync output interrupts the first CPU and the sprite
		// doorway; its cursor-derived raster interrupt is folded into the
		// same point of the frame
		brd.CPU[0].SetIRQLine(true)
		brd.CPU[1].SetIRQLine(true)
		brd.CPU[2].PulseNMI()
		return nil
	})

	brd.Mach.OnReset(func() {
		brd.Latch.Reset()
		brd.Watchdog.Reset()
		brd.flipscreen = false
		brd.tilemap.SetFlip(false)
	})

	for i := range brd.ram {
		brd.Mach.AddRAMState(romNames[i]+" ram", brd.ram[i])
	}
	brd.Mach.AddRAMState("videoram", brd.vram)
	brd.Mach.AddRAMState("colorram", brd.cram)
	brd.Mach.AddRAMState("spriteram", brd.spriteram)
	brd.Mach.AddState("latch", brd.Latch)
	brd.Mach.AddState("board", brd)

	brd.Mach.Reset()

	return brd, nil
}

func (brd *Board) buildDoCastleMaps() {
	p0 := brd.CPU[0].Program
	p0.MapROM("rom", 0x0000, 0x7fff, brd.rom[0][:0x8000])
	p0.MapRAM("ram", 0x8000, 0x97ff, 0x0000, brd.ram[0])
	p0.MapRAM("spriteram", 0x9800, 0x99ff, 0x0000, brd.spriteram)
	p0.MapHandler("latch", 0xa000, 0xa008, 0x0000,
		func(offset uint16) uint8 { return brd.Latch.Read(latch.BWrites, offset) },
		func(offset uint16, data uint8) { brd.Latch.Write(latch.AWrites, offset, data) })
	p0.MapWritePort("watchdog", 0xa800, 0x0000, brd.Watchdog.Strobe)
	p0.MapHandler("videoram", 0xb000, 0xb3ff, 0x0800,
		func(offset uint16) uint8 { return brd.vram[offset] },
		brd.videoramWrite)
	p0.MapHandler("colorram", 0xb400, 0xb7ff, 0x0800,
		func(offset uint16) uint8 { return brd.cram[offset] },
		brd.colorramWrite)
	p0.MapWritePort("nmi trigger", 0xe000, 0x0000, brd.nmiTriggerWrite)

	p1 := brd.CPU[1].Program
	p1.MapROM("rom", 0x0000, 0x3fff, brd.rom[1])
	p1.MapRAM("ram", 0x8000, 0x87ff, 0x0000, brd.ram[1])
	p1.MapHandler("latch", 0xa000, 0xa008, 0x0000,
		func(offset uint16) uint8 { return brd.Latch.Read(latch.AWrites, offset) },
		func(offset uint16, data uint8) { brd.Latch.Write(latch.BWrites, offset, data) })
	// bit 7 of the address is latched as the flipscreen state so it must
	// survive into the handler offset
	p1.MapHandler("inputs", 0xc000, 0xc087, 0x0000,
		brd.inputsRead, brd.flipscreenWrite)
	brd.mapSoundPorts(p1, 0xe000)

	brd.buildSpriteDoorwayMap()
}

func (brd *Board) buildDoRunRunMaps() {
	p0 := brd.CPU[0].Program
	p0.MapROM("rom", 0x0000, 0x1fff, brd.rom[0][:0x2000])
	p0.MapRAM("ram", 0x2000, 0x37ff, 0x0000, brd.ram[0])
	p0.MapRAM("spriteram", 0x3800, 0x39ff, 0x0000, brd.spriteram)
	p0.MapROM("rom upper", 0x4000, 0x9fff, brd.rom[0][0x4000:0xa000])
	p0.MapHandler("latch", 0xa000, 0xa008, 0x0000,
		func(offset uint16) uint8 { return brd.Latch.Read(latch.BWrites, offset) },
		func(offset uint16, data uint8) { brd.Latch.Write(latch.AWrites, offset, data) })
	p0.MapWritePort("watchdog", 0xa800, 0x0000, brd.Watchdog.Strobe)
	p0.MapHandler("videoram", 0xb000, 0xb3ff, 0x0000,
		func(offset uint16) uint8 { return brd.vram[offset] },
		brd.videoramWrite)
	p0.MapHandler("colorram", 0xb400, 0xb7ff, 0x0000,
		func(offset uint16) uint8 { return brd.cram[offset] },
		brd.colorramWrite)
	p0.MapWritePort("nmi trigger", 0xb800, 0x0000, brd.nmiTriggerWrite)

	p1 := brd.CPU[1].Program
	p1.MapROM("rom", 0x0000, 0x3fff, brd.rom[1])
	p1.MapRAM("ram", 0x8000, 0x87ff, 0x0000, brd.ram[1])
	brd.mapSoundPorts(p1, 0xa000)
	p1.MapHandler("inputs", 0xc000, 0xc087, 0x0000,
		brd.inputsRead, brd.flipscreenWrite)
	p1.MapHandler("latch", 0xe000, 0xe008, 0x0000,
		func(offset uint16) uint8 { return brd.Latch.Read(latch.AWrites, offset) },
		func(offset uint16, data uint8) { brd.Latch.Write(latch.BWrites, offset, data) })

	brd.buildSpriteDoorwayMap()
}

// the third CPU is a doorway for sprite RAM. its tiny program copies the
// sprite list from the first CPU through to the sprite chip unmodified
func (brd *Board) buildSpriteDoorwayMap() {
	p2 := brd.CPU[2].Program
	p2.MapROM("rom", 0x0000, 0x01ff, brd.rom[2])
	p2.MapRAM("ram", 0x4000, 0x47ff, 0x0000, brd.ram[2])
	p2.MapReadPort("latch from cpu1", 0x8000, 0x0000, func() uint8 {
		return brd.spriteram[0]
	})
	p2.MapHandler("sprite chip", 0xc000, 0xc7ff, 0x0000, nil,
		func(_ uint16, _ uint8) {})
}

// the second CPU drives four SN76489A programmable sound generators
// spaced 0x400 apart. audio synthesis is out of scope so the writes are
// logged and dropped
func (brd *Board) mapSoundPorts(p *bus.Bus, base uint16) {
	for i := 0; i < 4; i++ {
		i := i
		p.MapWritePort(fmt.Sprintf("sn76489a %d", i), base+uint16(i)*0x400, 0x0000, func(data uint8) {
			logger.Logf(logger.Allow, "docastle", "psg %d write %02x", i, data)
		})
	}
}

func (brd *Board) nmiTriggerWrite(_ uint8) {
	brd.CPU[1].PulseNMI()
}

func (brd *Board) videoramWrite(offset uint16, data uint8) {
	brd.vram[offset] = data
	brd.tilemap.MarkTileDirty(int(offset))
}

func (brd *Board) colorramWrite(offset uint16, data uint8) {
	brd.cram[offset] = data
	brd.tilemap.MarkTileDirty(int(offset))
}

// Serialise the board state not covered by the memory areas.
func (brd *Board) Serialise(w io.Writer) error {
	b := [1]uint8{}
	if brd.flipscreen {
		b[0] = 0x01
	}
	if _, err := w.Write(b[:]); err != nil {
		return curated.Errorf("docastle: serialise: %v", err)
	}
	return nil
}

// Deserialise the board state written by Serialise(). The tile cache is
// invalidated because the memory areas it derives from have been restored
// underneath it.
func (brd *Board) Deserialise(r io.Reader) error {
	b := [1]uint8{}
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return curated.Errorf("docastle: deserialise: %v", err)
	}

	brd.flipscreen = b[0] != 0x00
	brd.tilemap.SetFlip(brd.flipscreen)
	brd.tilemap.MarkAllDirty()

	return nil
}
