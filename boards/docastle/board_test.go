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

package docastle_test

import (
	"bytes"
	"testing"

	"github.com/jackson2k2/mame/boards"
	"github.com/jackson2k2/mame/boards/docastle"
	"github.com/jackson2k2/mame/digest"
	"github.com/jackson2k2/mame/hardware/latch"
	"github.com/jackson2k2/mame/hardware/video"
	"github.com/jackson2k2/mame/test"
)

func testRegions() boards.Regions {
	proms := make([]uint8, 0x200)

	// colour 0 at full intensity on all three ladders
	proms[0x00] = 0xff

	return boards.Regions{
		"cpu1":     make([]uint8, 0x10000),
		"cpu2":     make([]uint8, 0x4000),
		"cpu3":     make([]uint8, 0x200),
		"gfx8x8":   make([]uint8, 0x4000),
		"gfx16x16": make([]uint8, 0x8000),
		"proms":    proms,
	}
}

func TestNewBoard(t *testing.T) {
	brd, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, testRegions())
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, brd.Mach.RunFrame())
}

func TestMissingRegion(t *testing.T) {
	regions := testRegions()
	delete(regions, "gfx16x16")
	_, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, regions)
	test.ExpectedFailure(t, err)
}

func TestPalette(t *testing.T) {
	brd, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, testRegions())
	test.ExpectedSuccess(t, err)

	pal := brd.Mach.Screen.Palette

	// each PROM entry decodes to the same colour with and without the
	// pen bit that the hardware ignores
	white := video.RGB{R: 255, G: 255, B: 255}
	if pal.Color(0x000) != white {
		t.Errorf("pen 0x000 should decode to white, got %v", pal.Color(0x000))
	}
	if pal.Color(0x008) != white {
		t.Errorf("pen 0x008 should decode to white, got %v", pal.Color(0x008))
	}
	if pal.Color(0x001) != (video.RGB{}) {
		t.Errorf("pen 0x001 should decode to black, got %v", pal.Color(0x001))
	}
}

// scriptCPUs drives the first CPU through a complete message and the
// second through an idle period, a full read of the message and a full
// reply. Returns counters tracking how far each program has run.
func scriptCPUs(brd *docastle.Board, msg []uint8, reply []uint8, bIdle int) (*int, *int, *[9]uint8) {
	aSteps := new(int)
	brd.CPU[0].SetProgram(func() error {
		if *aSteps < len(msg) {
			brd.CPU[0].Program.Write(0xa000+uint16(*aSteps), msg[*aSteps])
		}
		*aSteps++
		return nil
	})

	bSteps := new(int)
	received := new([9]uint8)
	brd.CPU[1].SetProgram(func() error {
		step := *bSteps - bIdle
		switch {
		case step < 0:
			// idle while the message is being composed
		case step < len(received):
			received[step] = brd.CPU[1].Program.Read(0xa000 + uint16(step))
		case step < len(received)+len(reply):
			i := step - len(received)
			brd.CPU[1].Program.Write(0xa000+uint16(i), reply[i])
		}
		*bSteps++
		return nil
	})

	return aSteps, bSteps, received
}

func TestHandOff(t *testing.T) {
	brd, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, testRegions())
	test.ExpectedSuccess(t, err)

	msg := []uint8{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18}
	reply := []uint8{0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28}
	aSteps, _, received := scriptCPUs(brd, msg, reply, 9)

	// the write to the final message offset suspends the first CPU
	test.ExpectedSuccess(t, brd.Mach.Sched.Run(9))
	test.Equate(t, *aSteps, 9)
	test.Equate(t, brd.Latch.AwaitingPeer(), true)

	// the second CPU reads the message and composes its reply while the
	// first stays frozen
	test.ExpectedSuccess(t, brd.Mach.Sched.Run(17))
	test.Equate(t, *aSteps, 9)
	test.Equate(t, brd.Latch.AwaitingPeer(), true)

	// the reply's final write resolves the hand-off. the first CPU missed
	// its slot on this tick so it runs again on the next
	test.ExpectedSuccess(t, brd.Mach.Sched.Run(1))
	test.Equate(t, brd.Latch.AwaitingPeer(), false)
	test.Equate(t, *aSteps, 9)

	test.ExpectedSuccess(t, brd.Mach.Sched.Run(1))
	test.Equate(t, *aSteps, 10)

	for i := range msg {
		test.Equate(t, received[i], msg[i])
	}
	for i := range reply {
		test.Equate(t, brd.CPU[0].Program.Read(0xa000+uint16(i)), reply[i])
	}
}

func TestHandOffTimeout(t *testing.T) {
	brd, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, testRegions())
	test.ExpectedSuccess(t, err)

	msg := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	aSteps := new(int)
	brd.CPU[0].SetProgram(func() error {
		if *aSteps < len(msg) {
			brd.CPU[0].Program.Write(0xa000+uint16(*aSteps), msg[*aSteps])
		}
		*aSteps++
		return nil
	})

	// the peer never answers
	test.ExpectedSuccess(t, brd.Mach.Sched.Run(9))
	test.Equate(t, *aSteps, 9)
	test.Equate(t, brd.Latch.AwaitingPeer(), true)

	// the suspension holds until the tick the bounded wait expires on
	test.ExpectedSuccess(t, brd.Mach.Sched.Run(263))
	test.Equate(t, *aSteps, 9)

	test.ExpectedSuccess(t, brd.Mach.Sched.Run(1))
	test.Equate(t, *aSteps, 10)
	test.Equate(t, brd.Latch.AwaitingPeer(), false)
}

func TestResetMidHandOff(t *testing.T) {
	brd, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, testRegions())
	test.ExpectedSuccess(t, err)

	msg := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	aSteps := new(int)
	brd.CPU[0].SetProgram(func() error {
		if *aSteps < len(msg) {
			brd.CPU[0].Program.Write(0xa000+uint16(*aSteps), msg[*aSteps])
		}
		*aSteps++
		return nil
	})

	test.ExpectedSuccess(t, brd.Mach.Sched.Run(9))
	test.Equate(t, brd.Latch.AwaitingPeer(), true)

	brd.Mach.Reset()

	test.Equate(t, brd.Latch.AwaitingPeer(), false)
	test.Equate(t, brd.Mach.Sched.Clock(), uint64(0))

	// buffers do not survive a reset
	for i := 0; i < 9; i++ {
		test.Equate(t, brd.CPU[1].Program.Read(0xa000+uint16(i)), uint8(0))
	}
}

func TestWaitLineStrategy(t *testing.T) {
	brd, err := docastle.NewBoard(docastle.DoCastle, latch.WaitLine, testRegions())
	test.ExpectedSuccess(t, err)

	// an access by the first CPU stalls it on its WAIT input
	brd.CPU[0].Program.Write(0xa000, 0x55)
	test.Equate(t, brd.CPU[0].WaitLine(), true)

	// the second CPU's access releases it and sees the latched byte
	test.Equate(t, brd.CPU[1].Program.Read(0xa000), uint8(0x55))
	test.Equate(t, brd.CPU[0].WaitLine(), false)

	// and the same in the other direction
	brd.CPU[1].Program.Write(0xa000, 0xaa)
	test.Equate(t, brd.CPU[0].WaitLine(), false)
	test.Equate(t, brd.CPU[0].Program.Read(0xa000), uint8(0xaa))
	test.Equate(t, brd.CPU[0].WaitLine(), true)

	brd.Mach.Reset()
	test.Equate(t, brd.CPU[0].WaitLine(), false)
}

func TestWatchdog(t *testing.T) {
	brd, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, testRegions())
	test.ExpectedSuccess(t, err)

	// ticking through the full watchdog period with no strobe resets the
	// machine, which winds the scheduler clock back
	test.ExpectedSuccess(t, brd.Mach.Sched.Run(8 * 264))
	test.Equate(t, brd.Mach.Sched.Clock(), uint64(0))
}

func TestWatchdogStrobe(t *testing.T) {
	brd, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, testRegions())
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, brd.Mach.Sched.Run(8*264 - 1))
	brd.CPU[0].Program.Write(0xa800, 0x00)
	test.ExpectedSuccess(t, brd.Mach.Sched.Run(8*264 - 1))
	test.Equate(t, brd.Mach.Sched.Clock(), uint64(16*264-2))
}

func TestInputMultiplexing(t *testing.T) {
	brd, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, testRegions())
	test.ExpectedSuccess(t, err)

	p1 := brd.CPU[1].Program

	// the answer is always a beat behind: a read returns the ports
	// selected by the previous access
	p1.Read(0xc003)
	brd.Joys.Set("p1 right", true)
	test.Equate(t, p1.Read(0xc002), uint8(0xfe))

	// factory default switch positions
	test.Equate(t, p1.Read(0xc001), uint8(0xdf))
	test.Equate(t, p1.Read(0xc007), uint8(0xff))

	// system port with a coin held
	brd.System.Set("coin1", true)
	test.Equate(t, p1.Read(0xc000), uint8(0xdf))
}

func TestFrameDigestReproducible(t *testing.T) {
	frames := func() string {
		regions := testRegions()

		// a non-trivial display: striped tiles and one striped sprite
		for i := 0; i < 32; i++ {
			regions["gfx8x8"][i] = 0xa5
		}
		for i := 0; i < 128; i++ {
			regions["gfx16x16"][i] = 0x5a
		}
		for i := 0; i < 0x100; i++ {
			regions["proms"][i] = uint8(i)
		}

		brd, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, regions)
		test.ExpectedSuccess(t, err)

		dig := digest.NewVideo()
		brd.Mach.Screen.AddRenderer(dig)

		brd.CPU[0].Program.Write(0x9800, 0x40)
		brd.CPU[0].Program.Write(0x9801, 0x40)
		brd.CPU[0].Program.Write(0x9803, 0x00)

		for i := 0; i < 5; i++ {
			test.ExpectedSuccess(t, brd.Mach.RunFrame())
		}
		return dig.Hash()
	}

	first := frames()
	second := frames()
	if first != second {
		t.Errorf("identical runs produced different digests: %s != %s", first, second)
	}
}

func TestSaveRestore(t *testing.T) {
	brd, err := docastle.NewBoard(docastle.DoCastle, latch.Buffered, testRegions())
	test.ExpectedSuccess(t, err)

	p0 := brd.CPU[0].Program
	p0.Write(0xb000, 0x12)
	p0.Write(0xb400, 0x34)
	p0.Write(0x9800, 0x56)
	p0.Write(0xa000, 0x78)
	p0.Write(0xa001, 0x9a)

	buf := &bytes.Buffer{}
	test.ExpectedSuccess(t, brd.Mach.SaveState(buf))

	p0.Write(0xb000, 0x00)
	p0.Write(0x9800, 0x00)
	brd.Mach.Reset()

	test.ExpectedSuccess(t, brd.Mach.RestoreState(bytes.NewReader(buf.Bytes())))

	test.Equate(t, p0.Read(0xb000), uint8(0x12))
	test.Equate(t, p0.Read(0xb400), uint8(0x34))
	test.Equate(t, p0.Read(0x9800), uint8(0x56))
	test.Equate(t, brd.CPU[1].Program.Read(0xa000), uint8(0x78))
	test.Equate(t, brd.CPU[1].Program.Read(0xa001), uint8(0x9a))
}
