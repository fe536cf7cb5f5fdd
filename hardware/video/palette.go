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

package video

// RGB is a fully resolved display colour.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Palette maps pens to colours, optionally through an indirection table.
// Pens are what the rendering pipeline works in; colours are what the
// screen shows. For boards without colour indirection the two are mapped
// one to one.
type Palette struct {
	colors []RGB

	// pen to colour index. identity unless SetPenIndirect is used
	pens []uint16
}

func NewPalette(numPens int, numColors int) *Palette {
	p := &Palette{
		colors: make([]RGB, numColors),
		pens:   make([]uint16, numPens),
	}
	for i := range p.pens {
		if i < numColors {
			p.pens[i] = uint16(i)
		}
	}
	return p
}

// NumPens in the palette.
func (p *Palette) NumPens() int {
	return len(p.pens)
}

// SetIndirectColor sets an entry in the colour table.
func (p *Palette) SetIndirectColor(index int, c RGB) {
	p.colors[index] = c
}

// SetPenIndirect points a pen at an entry in the colour table.
func (p *Palette) SetPenIndirect(pen int, index uint16) {
	p.pens[pen] = index
}

// SetPenColor sets a pen's colour directly, bypassing any indirection.
func (p *Palette) SetPenColor(pen int, c RGB) {
	p.pens[pen] = uint16(pen)
	if pen < len(p.colors) {
		p.colors[pen] = c
	}
}

// Color resolves a pen to its display colour.
func (p *Palette) Color(pen uint16) RGB {
	if int(pen) >= len(p.pens) {
		return RGB{}
	}
	idx := p.pens[pen]
	if int(idx) >= len(p.colors) {
		return RGB{}
	}
	return p.colors[idx]
}

// Weights computes the relative output levels of a resistor ladder DAC.
// One weight per resistor, in the order given, scaled so the sum of all
// weights is 255. The convention follows the resnet computation in the
// original drivers: each resistor's contribution is proportional to the
// reciprocal of its value.
func Weights(resistances ...float64) []float64 {
	w := make([]float64, len(resistances))
	var sum float64
	for i, r := range resistances {
		if r > 0 {
			w[i] = 1.0 / r
		}
		sum += w[i]
	}
	if sum == 0 {
		return w
	}
	scale := 255.0 / sum
	for i := range w {
		w[i] *= scale
	}
	return w
}

// Combine sums the weights selected by the set bits of bits, least
// significant bit selecting the first weight, and clamps to the 0-255
// component range.
func Combine(weights []float64, bits uint8) uint8 {
	var v float64
	for i, w := range weights {
		if bits>>i&0x01 == 0x01 {
			v += w
		}
	}
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
