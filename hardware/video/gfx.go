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

import (
	"github.com/jackson2k2/mame/curated"
)

// Layout describes how the pixels of one graphics element are arranged in
// a ROM region. All offsets are in bits. Offset values, and the Total
// field, may be expressed as a fraction of the region with Frac(); the
// fraction is resolved against the region size at decode time.
type Layout struct {
	// size of one element in pixels
	Width  int
	Height int

	// number of elements in the region
	Total int

	// bit offset of each bitplane from the start of an element. the number
	// of planes is the colour depth
	PlaneOffset []int

	// bit offset of each column and row within a plane
	XOffset []int
	YOffset []int

	// bits from the start of one element to the start of the next
	CharIncrement int
}

// fracFlag marks an offset as a fraction of the region size.
const fracFlag = 1 << 30

// Frac expresses an offset as num/den of the ROM region size. The direct
// equivalent of the RGN_FRAC macro in the original driver tables.
func Frac(num int, den int) int {
	return fracFlag | num<<8 | den
}

func resolveOffset(offset int, regionBits int) int {
	if offset&fracFlag == 0 {
		return offset
	}
	num := (offset >> 8) & 0x3fffff
	den := offset & 0xff
	return regionBits / den * num
}

// Step returns count offsets starting at start and increasing by step.
// The direct equivalent of the STEPx macros in the original driver tables.
func Step(start int, step int, count int) []int {
	s := make([]int, count)
	for i := range s {
		s[i] = start + i*step
	}
	return s
}

// Element is a set of decoded graphics elements: every pixel resolved to a
// pen number.
type Element struct {
	Width  int
	Height int
	Total  int
	Depth  int

	// pen data, Total*Width*Height entries, element major then row major
	pens []uint8
}

// Decode a ROM region into an Element according to the layout. Bits are
// read most significant first, matching the original decode order.
func Decode(region []uint8, l Layout) (*Element, error) {
	regionBits := len(region) * 8

	total := l.Total
	if total&fracFlag != 0 {
		total = resolveOffset(total, regionBits) / l.CharIncrement
	}

	if len(l.XOffset) != l.Width || len(l.YOffset) != l.Height {
		return nil, curated.Errorf("gfx: layout offsets do not match element size")
	}

	e := &Element{
		Width:  l.Width,
		Height: l.Height,
		Total:  total,
		Depth:  len(l.PlaneOffset),
		pens:   make([]uint8, total*l.Width*l.Height),
	}

	readBit := func(bit int) uint8 {
		if bit < 0 || bit >= regionBits {
			return 0
		}
		return (region[bit/8] >> (7 - bit%8)) & 0x01
	}

	planes := make([]int, len(l.PlaneOffset))
	for p, off := range l.PlaneOffset {
		planes[p] = resolveOffset(off, regionBits)
	}

	i := 0
	for c := 0; c < total; c++ {
		base := c * l.CharIncrement
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				var pen uint8
				for p := range planes {
					bit := base + planes[p] + l.YOffset[y] + l.XOffset[x]
					pen |= readBit(bit) << (len(planes) - 1 - p)
				}
				e.pens[i] = pen
				i++
			}
		}
	}

	return e, nil
}

// Pen returns the pen at the pixel coordinate of the numbered element.
func (e *Element) Pen(code int, x int, y int) uint8 {
	return e.pens[(code*e.Height+y)*e.Width+x]
}

// Gfx pairs a decoded Element with its position in the palette's pen
// space, in the manner of a graphics decode table entry.
type Gfx struct {
	El        *Element
	ColorBase int

	// pens per colour. zero means the natural granularity of the element
	// depth
	Granularity int
}

func (g *Gfx) granularity() int {
	if g.Granularity != 0 {
		return g.Granularity
	}
	return 1 << g.El.Depth
}

// TransPen draws the element with the pen transPen transparent. A negative
// transPen draws opaque.
func (g *Gfx) TransPen(b *Bitmap, code int, color int, flipx bool, flipy bool, x int, y int, transPen int) {
	base := uint16(g.ColorBase + color*g.granularity())
	g.draw(b, code, flipx, flipy, x, y, func(pen uint8, px int, py int) {
		if int(pen) == transPen {
			return
		}
		b.SetPen(px, py, base+uint16(pen))
	})
}

// PrioTransMask draws the element against the bitmap's priority buffer.
// Pens with their bit set in transMask are transparent. A pixel is masked
// out if the priority buffer value p at its position gives a non-zero
// (1<<p)&prioMask; pixels that do draw promote the buffer value to 31.
func (g *Gfx) PrioTransMask(b *Bitmap, code int, color int, flipx bool, flipy bool, x int, y int, prioMask uint32, transMask uint32) {
	base := uint16(g.ColorBase + color*g.granularity())
	g.draw(b, code, flipx, flipy, x, y, func(pen uint8, px int, py int) {
		if transMask>>pen&0x01 == 0x01 {
			return
		}
		p := b.Priority(px, py)
		if (uint32(1)<<p)&prioMask != 0 {
			return
		}
		b.SetPen(px, py, base+uint16(pen))
		b.SetPriority(px, py, 31)
	})
}

func (g *Gfx) draw(b *Bitmap, code int, flipx bool, flipy bool, x int, y int, plot func(pen uint8, px int, py int)) {
	if code < 0 || code >= g.El.Total {
		return
	}
	for sy := 0; sy < g.El.Height; sy++ {
		py := y + sy
		if flipy {
			py = y + g.El.Height - 1 - sy
		}
		if py < 0 || py >= b.Height {
			continue
		}
		for sx := 0; sx < g.El.Width; sx++ {
			px := x + sx
			if flipx {
				px = x + g.El.Width - 1 - sx
			}
			if px < 0 || px >= b.Width {
				continue
			}
			plot(g.El.Pen(code, sx, sy), px, py)
		}
	}
}
