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

package input

// Multiplexer models a pair of 4-bit input expander chips sharing a port
// select: the low chip carries the low nibble of each source port, the high
// chip the high nibble. The CPU writes the select and then reads the two
// nibbles reassembled into a byte, passed through a non-inverting buffer.
type Multiplexer struct {
	sources  map[int]func() uint8
	selected int
}

// NewMultiplexer is the preferred method of initialisation for the
// Multiplexer type.
func NewMultiplexer() *Multiplexer {
	return &Multiplexer{
		sources: make(map[int]func() uint8),
	}
}

// Connect a source port to the numbered select position.
func (m *Multiplexer) Connect(position int, read func() uint8) {
	m.sources[position] = read
}

// Select the port position subsequent Read() calls present.
func (m *Multiplexer) Select(position int) {
	m.selected = position
}

// Read the currently selected source port. An unconnected position reads
// as an idle active-low port.
func (m *Multiplexer) Read() uint8 {
	if src, ok := m.sources[m.selected]; ok {
		return src()
	}
	return 0xff
}
