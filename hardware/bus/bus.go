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

package bus

import (
	"github.com/jackson2k2/mame/logger"
)

// FloatingBus is the value read from an address that decodes to nothing.
const FloatingBus = uint8(0xff)

// Read8 is a read handler for a mapped range. The offset is relative to the
// start of the range.
type Read8 func(offset uint16) uint8

// Write8 is a write handler for a mapped range. The offset is relative to
// the start of the range.
type Write8 func(offset uint16, data uint8)

type entry struct {
	name   string
	start  uint16
	end    uint16
	mirror uint16
	read   Read8
	write  Write8
}

// Bus is the address space of one virtual CPU. Build the map with the
// Map*() functions; route accesses with Read() and Write().
type Bus struct {
	name    string
	mask    uint16
	entries []entry

	// unmapped accesses are logged on first sight only. a program polling
	// an absent device would otherwise flood the log
	loggedReads  map[uint16]bool
	loggedWrites map[uint16]bool
}

// NewBus is the preferred method of initialisation for the Bus type. The
// name identifies the bus in diagnostics.
func NewBus(name string) *Bus {
	return &Bus{
		name:         name,
		mask:         0xffff,
		loggedReads:  make(map[uint16]bool),
		loggedWrites: make(map[uint16]bool),
	}
}

// SetMask applies a global address mask before decoding. IO decoders that
// only look at the low address byte use a mask of 0x00ff.
func (b *Bus) SetMask(mask uint16) {
	b.mask = mask
}

// MapHandler binds an address range to a pair of handler functions. Either
// handler can be nil, leaving that direction unmapped. The mirror mask
// names the address bits the decoder ignores.
func (b *Bus) MapHandler(name string, start uint16, end uint16, mirror uint16, read Read8, write Write8) {
	b.entries = append(b.entries, entry{
		name:   name,
		start:  start,
		end:    end,
		mirror: mirror,
		read:   read,
		write:  write,
	})
}

// MapRAM binds an address range to the backing slice, readable and
// writable. The slice must cover the range.
func (b *Bus) MapRAM(name string, start uint16, end uint16, mirror uint16, backing []uint8) {
	b.MapHandler(name, start, end, mirror,
		func(offset uint16) uint8 { return backing[offset] },
		func(offset uint16, data uint8) { backing[offset] = data },
	)
}

// MapROM binds an address range to the backing slice, read only. Writes to
// ROM decode but have no effect, as on the real board.
func (b *Bus) MapROM(name string, start uint16, end uint16, backing []uint8) {
	b.MapHandler(name, start, end, 0,
		func(offset uint16) uint8 { return backing[offset] },
		nil,
	)
}

// MapReadPort binds a single address to a port-style read function.
func (b *Bus) MapReadPort(name string, address uint16, mirror uint16, read func() uint8) {
	b.MapHandler(name, address, address, mirror,
		func(_ uint16) uint8 { return read() },
		nil,
	)
}

// MapWritePort binds a single address to a port-style write function.
func (b *Bus) MapWritePort(name string, address uint16, mirror uint16, write func(data uint8)) {
	b.MapHandler(name, address, address, mirror,
		nil,
		func(_ uint16, data uint8) { write(data) },
	)
}

func (b *Bus) decode(address uint16) (*entry, uint16) {
	address &= b.mask
	for i := range b.entries {
		e := &b.entries[i]
		a := address &^ e.mirror
		if a >= e.start && a <= e.end {
			return e, a - e.start
		}
	}
	return nil, 0
}

// Read the byte at the address. An unmapped read returns the floating bus
// value.
func (b *Bus) Read(address uint16) uint8 {
	e, offset := b.decode(address)
	if e == nil || e.read == nil {
		if !b.loggedReads[address] {
			b.loggedReads[address] = true
			logger.Logf(logger.Allow, b.name, "unmapped read %#04x", address)
		}
		return FloatingBus
	}
	return e.read(offset)
}

// Write the byte to the address. An unmapped write is logged and dropped.
func (b *Bus) Write(address uint16, data uint8) {
	e, offset := b.decode(address)
	if e == nil || e.write == nil {
		if !b.loggedWrites[address] {
			b.loggedWrites[address] = true
			logger.Logf(logger.Allow, b.name, "unmapped write %#04x = %#02x", address, data)
		}
		return
	}
	e.write(offset, data)
}
