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
	"io"

	"github.com/jackson2k2/mame/curated"
)

// Snapshot creates a copy of the latch state suitable for later restoration
// with Plumb().
func (l *Latch) Snapshot() *Latch {
	n := *l
	return &n
}

// Plumb a previously snapshotted latch back into the machine. The scheduler
// connections of the receiver replace those in the snapshot.
func (l *Latch) Plumb(snapshot *Latch) {
	l.buffer = snapshot.buffer
	l.awaitingPeer = snapshot.awaitingPeer
	l.latched = snapshot.latched
}

// number of bytes in the serialised form: both buffers verbatim, the
// hardware latch byte and the awaiting-peer flag.
const serialisedSize = MessageSize*2 + 2

// Serialise the latch state. Both buffers are written verbatim, in
// direction order, followed by the latched byte and the awaiting-peer flag.
func (l *Latch) Serialise(w io.Writer) error {
	var b [serialisedSize]uint8
	copy(b[:MessageSize], l.buffer[AWrites][:])
	copy(b[MessageSize:MessageSize*2], l.buffer[BWrites][:])
	b[MessageSize*2] = l.latched
	if l.awaitingPeer {
		b[MessageSize*2+1] = 0x01
	}

	if _, err := w.Write(b[:]); err != nil {
		return curated.Errorf("latch: serialise: %v", err)
	}
	return nil
}

// Deserialise the latch state written by Serialise(). Buffer contents are
// restored byte-for-byte.
func (l *Latch) Deserialise(r io.Reader) error {
	var b [serialisedSize]uint8
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return curated.Errorf("latch: deserialise: %v", err)
	}

	copy(l.buffer[AWrites][:], b[:MessageSize])
	copy(l.buffer[BWrites][:], b[MessageSize:MessageSize*2])
	l.latched = b[MessageSize*2]
	l.awaitingPeer = b[MessageSize*2+1] != 0x00

	return nil
}
