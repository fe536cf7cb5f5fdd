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

package mrjong_test

import (
	"bytes"
	"testing"

	"github.com/jackson2k2/mame/boards"
	"github.com/jackson2k2/mame/boards/mrjong"
	"github.com/jackson2k2/mame/hardware/video"
	"github.com/jackson2k2/mame/test"
)

func testRegions() boards.Regions {
	proms := make([]uint8, 0x120)

	// colour 0 at full intensity. the pen lookup table is left zeroed so
	// every pen resolves to colour 0
	proms[0x00] = 0xff

	gfx := make([]uint8, 0x2000)

	// tile 1 solid: both planes set across its eight rows
	for i := 8; i < 16; i++ {
		gfx[i] = 0xff
		gfx[0x1000+i] = 0xff
	}

	return boards.Regions{
		"maincpu": make([]uint8, 0x8000),
		"gfx":     gfx,
		"proms":   proms,
	}
}

func TestNewBoard(t *testing.T) {
	brd, err := mrjong.NewBoard(testRegions())
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, brd.Mach.RunFrame())
}

func TestMissingRegion(t *testing.T) {
	regions := testRegions()
	delete(regions, "proms")
	_, err := mrjong.NewBoard(regions)
	test.ExpectedFailure(t, err)
}

func TestPalette(t *testing.T) {
	regions := testRegions()

	// pen 5 looked up to colour 0
	regions["proms"][0x25] = 0x00

	brd, err := mrjong.NewBoard(regions)
	test.ExpectedSuccess(t, err)

	pal := brd.Mach.Screen.Palette
	white := video.RGB{R: 255, G: 255, B: 255}
	if pal.Color(5) != white {
		t.Errorf("pen 5 should decode to white, got %v", pal.Color(5))
	}
}

func TestScanOrder(t *testing.T) {
	brd, err := mrjong.NewBoard(testRegions())
	test.ExpectedSuccess(t, err)

	// tile index 0 carries the solid character. video RAM is scanned
	// from the bottom-right so it lands in the last tile position
	brd.CPU.Program.Write(0xe000, 0x01)
	test.ExpectedSuccess(t, brd.Mach.RunFrame())

	b := brd.Mach.Screen.Bitmap
	test.Equate(t, b.Pen(255, 255), uint16(3))
	test.Equate(t, b.Pen(0, 0), uint16(0))
}

func TestFlipscreen(t *testing.T) {
	brd, err := mrjong.NewBoard(testRegions())
	test.ExpectedSuccess(t, err)

	brd.CPU.Program.Write(0xe000, 0x01)
	brd.CPU.IO.Write(0x00, 0x04)
	test.ExpectedSuccess(t, brd.Mach.RunFrame())

	b := brd.Mach.Screen.Bitmap
	test.Equate(t, b.Pen(0, 0), uint16(3))
	test.Equate(t, b.Pen(255, 255), uint16(0))
}

func TestSprite(t *testing.T) {
	regions := testRegions()

	// sprite 0 solid
	for i := 0; i < 32; i++ {
		regions["gfx"][i] = 0xff
		regions["gfx"][0x1000+i] = 0xff
	}

	brd, err := mrjong.NewBoard(regions)
	test.ExpectedSuccess(t, err)

	// sprite 0 at (100,100) in colour 1
	brd.CPU.Program.Write(0xe000, 100)  // ypos
	brd.CPU.Program.Write(0xe001, 0x00) // code 0, no flip
	brd.CPU.Program.Write(0xe002, 124)  // xpos = 224-124
	brd.CPU.Program.Write(0xe003, 0x01) // colour 1

	test.ExpectedSuccess(t, brd.Mach.RunFrame())

	b := brd.Mach.Screen.Bitmap
	test.Equate(t, b.Pen(100, 100), uint16(1*4+3))
	test.Equate(t, b.Pen(116, 100), uint16(0))
}

func TestIOPorts(t *testing.T) {
	brd, err := mrjong.NewBoard(testRegions())
	test.ExpectedSuccess(t, err)

	// active high ports idle low, apart from the second port's top line
	test.Equate(t, brd.CPU.IO.Read(0x01), uint8(0x00))
	test.Equate(t, brd.CPU.IO.Read(0x00), uint8(0x80))

	brd.P1.Set("coin1", true)
	test.Equate(t, brd.CPU.IO.Read(0x01), uint8(0x20))

	// factory default switch positions and the jumper
	test.Equate(t, brd.CPU.IO.Read(0x02), uint8(0x01))
	test.Equate(t, brd.CPU.IO.Read(0x03), uint8(0x00))
}

func TestSaveRestore(t *testing.T) {
	brd, err := mrjong.NewBoard(testRegions())
	test.ExpectedSuccess(t, err)

	p := brd.CPU.Program
	p.Write(0x8000, 0x12)
	p.Write(0xe000, 0x34)
	p.Write(0xe400, 0x56)

	buf := &bytes.Buffer{}
	test.ExpectedSuccess(t, brd.Mach.SaveState(buf))

	p.Write(0x8000, 0x00)
	brd.Mach.Reset()

	test.ExpectedSuccess(t, brd.Mach.RestoreState(bytes.NewReader(buf.Bytes())))

	test.Equate(t, p.Read(0x8000), uint8(0x12))
	test.Equate(t, p.Read(0xe000), uint8(0x34))
	test.Equate(t, p.Read(0xe400), uint8(0x56))
}
