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

package latch

import (
	"github.com/jackson2k2/mame/hardware/scheduler"
	"github.com/jackson2k2/mame/logger"
)

// MessageSize is the size of one complete message through the latch. The
// write to the final offset of a message is the transaction-complete signal.
const MessageSize = 9

// LastOffset is the offset whose write completes a transaction.
const LastOffset = MessageSize - 1

// Direction identifies one of the two message buffers by the CPU that
// writes to it.
type Direction int

// List of valid Direction values.
const (
	AWrites Direction = iota
	BWrites
)

func (d Direction) String() string {
	switch d {
	case AWrites:
		return "A"
	case BWrites:
		return "B"
	}
	return "undefined"
}

// Strategy selects how CPU synchronisation is realised. See the package
// documentation for a discussion of the two strategies.
type Strategy int

// List of valid Strategy values.
const (
	// Buffered is the mailbox approximation: suspend the first CPU after
	// its complete message, resume it on the reply or on timeout.
	Buffered Strategy = iota

	// WaitLine models the single hardware latch byte and drives the first
	// CPU's WAIT input on every access.
	WaitLine
)

// WaitLiner is implemented by CPU cores that honour a WAIT input between
// bus cycles. Only used by the WaitLine strategy.
type WaitLiner interface {
	SetWaitLine(assert bool)
}

// Latch is the bidirectional mailbox shared by two CPUs. All access is
// through the Read() and Write() entry points; the memory dispatch layer
// routes the appropriate address ranges to them on behalf of whichever CPU
// is currently executing.
//
// Offsets passed to Read() and Write() must be in the range 0 to
// MessageSize-1. Address decoding upstream constrains the offset so an
// out-of-range value is a contract violation by the caller and is not
// checked here.
type Latch struct {
	sync scheduler.Synchroniser
	tok  scheduler.Token

	// maximum number of scheduler ticks a hand-off suspension can last
	maxWait int

	// one buffer per direction, indexed by Direction
	buffer [2][MessageSize]uint8

	// a hand-off is outstanding: the A side has completed a message and is
	// suspended pending the B side's reply (or timeout)
	awaitingPeer bool

	strategy Strategy

	// the single hardware byte and the first CPU's WAIT input. WaitLine
	// strategy only
	latched uint8
	wait    WaitLiner
}

// NewLatch creates a buffered-strategy latch. The token correlates this
// latch's suspensions with its resumes; maxWait bounds a suspension in
// scheduler ticks.
func NewLatch(sync scheduler.Synchroniser, tok scheduler.Token, maxWait int) *Latch {
	return &Latch{
		sync:    sync,
		tok:     tok,
		maxWait: maxWait,
	}
}

// NewWaitLineLatch creates a latch using the hardware-accurate WaitLine
// strategy, driving the supplied WAIT input of the first CPU.
func NewWaitLineLatch(wait WaitLiner) *Latch {
	return &Latch{
		strategy: WaitLine,
		wait:     wait,
	}
}

// AttachExpiry registers the latch with the scheduler's expiry notifications
// so that a timed-out hand-off is accounted for. Buffered strategy only;
// optional, but without it a timeout leaves the awaiting-peer state stale
// until the next hand-off.
func (l *Latch) AttachExpiry(sch *scheduler.Scheduler) {
	sch.AddExpiryListener(func(tok scheduler.Token) {
		if tok != l.tok {
			return
		}
		if l.awaitingPeer {
			l.awaitingPeer = false
			logger.Logf(logger.Allow, "latch", "hand-off timeout after %d ticks", l.maxWait)
		}
	})
}

// Read returns the byte at the offset of the buffer identified by the
// direction. Reads have no side effect in the buffered strategy.
func (l *Latch) Read(direction Direction, offset uint16) uint8 {
	if l.strategy == WaitLine {
		// an access by the A side stalls it until the B side's access. A
		// reads the BWrites buffer so the direction tells us which side is
		// on the bus
		l.wait.SetWaitLine(direction == BWrites)
		return l.latched
	}

	return l.buffer[direction][offset]
}

// Write stores the byte at the offset of the buffer identified by the
// direction. A write to LastOffset is the transaction-complete signal: the
// A side's completion suspends it pending the reply; the B side's
// completion triggers the resume.
func (l *Latch) Write(direction Direction, offset uint16, data uint8) {
	if l.strategy == WaitLine {
		l.wait.SetWaitLine(direction == AWrites)
		l.latched = data
		return
	}

	l.buffer[direction][offset] = data

	if offset != LastOffset {
		return
	}

	switch direction {
	case AWrites:
		// freeze execution of the first CPU until the second has used the
		// shared memory. the bound means a wedged peer cannot freeze the
		// machine; see the package documentation
		l.awaitingPeer = true
		l.sync.Suspend(l.tok, l.maxWait)
	case BWrites:
		// awake the first CPU
		l.awaitingPeer = false
		l.sync.Resume(l.tok)
	}
}

// AwaitingPeer returns true when a hand-off is outstanding.
func (l *Latch) AwaitingPeer() bool {
	return l.awaitingPeer
}

// Reset clears both buffers and forcibly resolves an outstanding hand-off,
// as though the bounded wait had expired at the moment of reset. A stale
// suspension must not survive into the next session.
func (l *Latch) Reset() {
	l.buffer[AWrites] = [MessageSize]uint8{}
	l.buffer[BWrites] = [MessageSize]uint8{}
	l.latched = 0

	if l.strategy == WaitLine {
		l.wait.SetWaitLine(false)
		return
	}

	if l.awaitingPeer {
		l.awaitingPeer = false
		l.sync.Resume(l.tok)
		logger.Log(logger.Allow, "latch", "reset with hand-off outstanding")
	}
}
