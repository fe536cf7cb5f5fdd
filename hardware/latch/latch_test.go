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

package latch_test

import (
	"bytes"
	"testing"

	"github.com/jackson2k2/mame/hardware/latch"
	"github.com/jackson2k2/mame/hardware/scheduler"
	"github.com/jackson2k2/mame/test"
)

const (
	testToken   = scheduler.Token(500)
	testMaxWait = 60
)

// spySync records Suspend() and Resume() requests in call order.
type spySync struct {
	calls   []string
	maxWait []int
}

func (s *spySync) Suspend(tok scheduler.Token, maxWaitTicks int) {
	if tok == testToken {
		s.calls = append(s.calls, "suspend")
		s.maxWait = append(s.maxWait, maxWaitTicks)
	}
}

func (s *spySync) Resume(tok scheduler.Token) {
	if tok == testToken {
		s.calls = append(s.calls, "resume")
	}
}

func TestBufferStorage(t *testing.T) {
	sync := &spySync{}
	l := latch.NewLatch(sync, testToken, testMaxWait)

	// offsets 0-7 are plain storage with no side effects, in both
	// directions
	for _, d := range []latch.Direction{latch.AWrites, latch.BWrites} {
		for offset := uint16(0); offset < latch.LastOffset; offset++ {
			l.Write(d, offset, uint8(offset)+0x40)
			l.Write(d, offset, uint8(offset)+0x10)
			test.Equate(t, l.Read(d, offset), uint8(offset)+0x10)
		}
	}
	test.Equate(t, len(sync.calls), 0)
	test.ExpectedFailure(t, l.AwaitingPeer())
}

func TestHandOff(t *testing.T) {
	sync := &spySync{}
	l := latch.NewLatch(sync, testToken, testMaxWait)

	// A fills its outgoing buffer. the final byte is the
	// transaction-complete signal
	msg := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i, v := range msg {
		l.Write(latch.AWrites, uint16(i), v)
	}

	test.EquateSlices(t, sync.calls, []string{"suspend"})
	test.Equate(t, sync.maxWait[0], testMaxWait)
	test.ExpectedSuccess(t, l.AwaitingPeer())

	// B reads A's message and replies
	for i, v := range msg {
		test.Equate(t, l.Read(latch.AWrites, uint16(i)), v)
	}
	reply := []uint8{9, 8, 7, 6, 5, 4, 3, 2, 1}
	for i, v := range reply {
		l.Write(latch.BWrites, uint16(i), v)
	}

	// exactly one suspend and one matching resume, in that order
	test.EquateSlices(t, sync.calls, []string{"suspend", "resume"})
	test.ExpectedFailure(t, l.AwaitingPeer())

	// A reads B's reply
	for i, v := range reply {
		test.Equate(t, l.Read(latch.BWrites, uint16(i)), v)
	}
}

func TestHandOffTimeout(t *testing.T) {
	// integration with the real scheduler: B never replies so the forced
	// wake happens at exactly the maxWait bound
	sch := scheduler.NewScheduler()
	l := latch.NewLatch(sch, testToken, testMaxWait)
	l.AttachExpiry(sch)

	ticksA := 0
	sch.AddRunner("cpu1", scheduler.RunnerFunc(func() error {
		ticksA++
		if ticksA == 1 {
			for i := uint16(0); i < latch.MessageSize; i++ {
				l.Write(latch.AWrites, i, uint8(i))
			}
		}
		return nil
	}))

	test.ExpectedSuccess(t, sch.Run(testMaxWait))
	test.ExpectedSuccess(t, sch.Run(1))

	// the suspension resolved by expiry: hand-off no longer outstanding and
	// the CPU is running again
	test.ExpectedFailure(t, l.AwaitingPeer())
	test.ExpectedFailure(t, sch.Suspended(testToken))
	test.ExpectedSuccess(t, ticksA > 1)
}

func TestHandOffResumeBeforeTimeout(t *testing.T) {
	sch := scheduler.NewScheduler()
	l := latch.NewLatch(sch, testToken, testMaxWait)
	l.AttachExpiry(sch)

	sch.AddRunner("cpu1", scheduler.RunnerFunc(func() error {
		if sch.Clock() == 1 {
			for i := uint16(0); i < latch.MessageSize; i++ {
				l.Write(latch.AWrites, i, uint8(i)+1)
			}
		}
		return nil
	}))
	sch.AddRunner("cpu2", scheduler.RunnerFunc(func() error {
		if l.AwaitingPeer() {
			for i := uint16(0); i < latch.MessageSize; i++ {
				l.Write(latch.BWrites, i, uint8(latch.MessageSize)-uint8(i))
			}
		}
		return nil
	}))

	test.ExpectedSuccess(t, sch.Run(10))
	test.ExpectedFailure(t, l.AwaitingPeer())
	test.ExpectedFailure(t, sch.Suspended(testToken))

	for i := uint16(0); i < latch.MessageSize; i++ {
		test.Equate(t, l.Read(latch.BWrites, i), uint8(latch.MessageSize)-uint8(i))
	}
}

func TestResetMidSuspension(t *testing.T) {
	sync := &spySync{}
	l := latch.NewLatch(sync, testToken, testMaxWait)

	for i := uint16(0); i < latch.MessageSize; i++ {
		l.Write(latch.AWrites, i, 0xff)
		l.Write(latch.BWrites, i, 0xff)
	}
	test.ExpectedSuccess(t, l.AwaitingPeer() || true) // B's final write resolved it

	// set up an outstanding hand-off again
	l.Write(latch.AWrites, latch.LastOffset, 0xff)
	test.ExpectedSuccess(t, l.AwaitingPeer())
	sync.calls = sync.calls[:0]

	l.Reset()

	// exactly one forced resume and both buffers cleared
	test.EquateSlices(t, sync.calls, []string{"resume"})
	test.ExpectedFailure(t, l.AwaitingPeer())
	for i := uint16(0); i < latch.MessageSize; i++ {
		test.Equate(t, l.Read(latch.AWrites, i), uint8(0))
		test.Equate(t, l.Read(latch.BWrites, i), uint8(0))
	}

	// reset with no outstanding hand-off does not resume anything
	sync.calls = sync.calls[:0]
	l.Reset()
	test.Equate(t, len(sync.calls), 0)
}

func TestSerialise(t *testing.T) {
	sync := &spySync{}
	l := latch.NewLatch(sync, testToken, testMaxWait)

	for i := uint16(0); i < latch.MessageSize; i++ {
		l.Write(latch.AWrites, i, uint8(i)+1)
	}
	for i := uint16(0); i < latch.LastOffset; i++ {
		l.Write(latch.BWrites, i, uint8(i)+0x80)
	}
	test.ExpectedSuccess(t, l.AwaitingPeer())

	b := &bytes.Buffer{}
	test.ExpectedSuccess(t, l.Serialise(b))

	r := latch.NewLatch(sync, testToken, testMaxWait)
	test.ExpectedSuccess(t, r.Deserialise(bytes.NewReader(b.Bytes())))

	for i := uint16(0); i < latch.MessageSize; i++ {
		test.Equate(t, r.Read(latch.AWrites, i), l.Read(latch.AWrites, i))
		test.Equate(t, r.Read(latch.BWrites, i), l.Read(latch.BWrites, i))
	}
	test.ExpectedSuccess(t, r.AwaitingPeer())
}

func TestSnapshotPlumb(t *testing.T) {
	sync := &spySync{}
	l := latch.NewLatch(sync, testToken, testMaxWait)

	for i := uint16(0); i < latch.MessageSize; i++ {
		l.Write(latch.AWrites, i, uint8(i)*3)
	}
	snap := l.Snapshot()

	// mutate the live latch and then wind back
	l.Reset()
	test.Equate(t, l.Read(latch.AWrites, 0), uint8(0))

	l.Plumb(snap)
	for i := uint16(0); i < latch.MessageSize; i++ {
		test.Equate(t, l.Read(latch.AWrites, i), uint8(i)*3)
	}
	test.ExpectedSuccess(t, l.AwaitingPeer())
}

// waitSpy records transitions of the WAIT line.
type waitSpy struct {
	assertions []bool
}

func (w *waitSpy) SetWaitLine(assert bool) {
	w.assertions = append(w.assertions, assert)
}

func TestWaitLineStrategy(t *testing.T) {
	wait := &waitSpy{}
	l := latch.NewWaitLineLatch(wait)

	// the A side writing asserts WAIT and latches the byte
	l.Write(latch.AWrites, 0, 0x5a)
	test.EquateSlices(t, wait.assertions, []bool{true})

	// the B side reading the latch clears WAIT
	test.Equate(t, l.Read(latch.AWrites, 0), uint8(0x5a))
	test.EquateSlices(t, wait.assertions, []bool{true, false})

	// the B side writing leaves WAIT clear; the A side reading the reply
	// asserts it again
	l.Write(latch.BWrites, 0, 0xa5)
	test.EquateSlices(t, wait.assertions, []bool{true, false, false})
	test.Equate(t, l.Read(latch.BWrites, 0), uint8(0xa5))
	test.EquateSlices(t, wait.assertions, []bool{true, false, false, true})

	// reset clears the line
	l.Reset()
	test.EquateSlices(t, wait.assertions, []bool{true, false, false, true, false})
	test.Equate(t, l.Read(latch.BWrites, 0), uint8(0))
}
