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

package bus_test

import (
	"strings"
	"testing"

	"github.com/jackson2k2/mame/hardware/bus"
	"github.com/jackson2k2/mame/logger"
	"github.com/jackson2k2/mame/test"
)

func TestRAM(t *testing.T) {
	b := bus.NewBus("cpu1")
	ram := make([]uint8, 0x800)
	b.MapRAM("ram", 0x8000, 0x87ff, 0, ram)

	b.Write(0x8000, 0x12)
	b.Write(0x87ff, 0x34)
	test.Equate(t, b.Read(0x8000), uint8(0x12))
	test.Equate(t, b.Read(0x87ff), uint8(0x34))
	test.Equate(t, ram[0x7ff], uint8(0x34))
}

func TestROM(t *testing.T) {
	b := bus.NewBus("cpu1")
	rom := make([]uint8, 0x100)
	rom[0x42] = 0x99
	b.MapROM("rom", 0x0000, 0x00ff, rom)

	test.Equate(t, b.Read(0x0042), uint8(0x99))

	// writes to ROM decode but have no effect
	b.Write(0x0042, 0x00)
	test.Equate(t, b.Read(0x0042), uint8(0x99))
}

func TestMirror(t *testing.T) {
	b := bus.NewBus("cpu1")
	ram := make([]uint8, 0x100)
	b.MapRAM("spriteram", 0x9000, 0x90ff, 0x0700, ram)

	// the decoder ignores the mirror bits so the same byte appears at
	// every repetition of the range
	b.Write(0x9012, 0x56)
	test.Equate(t, b.Read(0x9712), uint8(0x56))
	test.Equate(t, b.Read(0x9312), uint8(0x56))
}

func TestHandlerOffsets(t *testing.T) {
	b := bus.NewBus("cpu1")

	var lastOffset uint16
	var lastData uint8
	b.MapHandler("latch", 0xa000, 0xa008, 0,
		func(offset uint16) uint8 { return uint8(offset) },
		func(offset uint16, data uint8) { lastOffset = offset; lastData = data },
	)

	// handlers see range-relative offsets
	test.Equate(t, b.Read(0xa008), uint8(8))
	b.Write(0xa005, 0xbb)
	test.Equate(t, lastOffset, uint16(5))
	test.Equate(t, lastData, uint8(0xbb))
}

func TestUnmapped(t *testing.T) {
	b := bus.NewBus("cpu1")
	test.Equate(t, b.Read(0x1234), bus.FloatingBus)
	b.Write(0x1234, 0x00) // logged and dropped
}

func TestUnmappedLoggedOnce(t *testing.T) {
	logger.Clear()

	b := bus.NewBus("cpu1")

	// a program polling an absent device makes the same access every
	// frame. alternating the direction stops the logger folding repeats
	// so each log entry is counted below
	for i := 0; i < 4; i++ {
		test.Equate(t, b.Read(0x1234), bus.FloatingBus)
		b.Write(0x1234, 0x00)
	}

	// a new address gets its own entry
	test.Equate(t, b.Read(0x5678), bus.FloatingBus)

	logger.BorrowLog(func(entries []logger.Entry) {
		var reads int
		var writes int
		for _, e := range entries {
			if strings.HasPrefix(e.Detail, "unmapped read") {
				reads++
				test.Equate(t, e.Repeated, 0)
			}
			if strings.HasPrefix(e.Detail, "unmapped write") {
				writes++
				test.Equate(t, e.Repeated, 0)
			}
		}
		test.Equate(t, reads, 2)
		test.Equate(t, writes, 1)
	})
}

func TestIOMask(t *testing.T) {
	b := bus.NewBus("io")
	b.SetMask(0x00ff)

	var port uint8 = 0x3c
	b.MapReadPort("IN0", 0x00, 0, func() uint8 { return port })

	// IO decoders only look at the low address byte
	test.Equate(t, b.Read(0x4100), uint8(0x3c))
}

func TestMapOrder(t *testing.T) {
	b := bus.NewBus("cpu1")
	ram := make([]uint8, 0x1000)
	b.MapRAM("ram", 0xe000, 0xefff, 0, ram)
	b.MapWritePort("scrollx", 0xf000, 0x07ff, func(_ uint8) {})

	// first match wins
	b.Write(0xe100, 0x01)
	test.Equate(t, b.Read(0xe100), uint8(0x01))
}
