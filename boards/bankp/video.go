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

package bankp

import (
	"github.com/jackson2k2/mame/boards"
	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/hardware/video"
)

// 2bpp characters with both planes packed into the same bytes, the pixel
// columns split across a nibble boundary
var fgLayout = video.Layout{
	Width:         8,
	Height:        8,
	Total:         video.Frac(1, 1),
	PlaneOffset:   []int{0, 4},
	XOffset:       append(video.Step(8*8+3, -1, 4), video.Step(3, -1, 4)...),
	YOffset:       video.Step(0, 8, 8),
	CharIncrement: 16 * 8,
}

// 3bpp with one plane in each third of the region
var bgLayout = video.Layout{
	Width:         8,
	Height:        8,
	Total:         video.Frac(1, 3),
	PlaneOffset:   []int{video.Frac(0, 3), video.Frac(1, 3), video.Frac(2, 3)},
	XOffset:       video.Step(7, -1, 8),
	YOffset:       video.Step(0, 8, 8),
	CharIncrement: 8 * 8,
}

// pen reserved as a guaranteed black for the display-off state. it sits
// one past the pens reachable through the lookup PROMs
const blackPen = 0x200

// buildPalette decodes the colour PROM through the resistor ladder and
// the two 256x4 pen lookup PROMs. A7 of both lookup PROMs is tied to
// ground; the colour bank select drives D4 of the colour PROM address
// instead, so each pen resolves twice, once into each half of the
// thirty-two colours.
func buildPalette(regions boards.Regions) (*video.Palette, error) {
	prom, err := regions.Get("proms", 0x220)
	if err != nil {
		return nil, curated.Errorf("bankp: %v", err)
	}

	rgWeights := video.Weights(1000, 470, 220)
	bWeights := video.Weights(470, 220)

	pal := video.NewPalette(0x201, 0x21)

	for i := 0; i < 0x20; i++ {
		r := video.Combine(rgWeights, prom[i]&0x07)
		g := video.Combine(rgWeights, prom[i]>>3&0x07)
		b := video.Combine(bWeights, prom[i]>>6&0x03)
		pal.SetIndirectColor(i, video.RGB{R: r, G: g, B: b})
	}
	pal.SetIndirectColor(0x20, video.RGB{})
	pal.SetPenIndirect(blackPen, 0x20)

	fgLookup := prom[0x20:]
	bgLookup := prom[0x120:]
	for i := 0; i < 0x80; i++ {
		pal.SetPenIndirect(i, uint16(fgLookup[i]&0x0f))
		pal.SetPenIndirect(i|0x80, uint16(fgLookup[i]&0x0f)|0x10)
		pal.SetPenIndirect(0x100|i, uint16(bgLookup[i]&0x0f))
		pal.SetPenIndirect(0x180|i, uint16(bgLookup[i]&0x0f)|0x10)
	}

	return pal, nil
}

func (brd *Board) buildGfx(regions boards.Regions) error {
	fgRegion, err := regions.Get("fgtiles", 0x4000)
	if err != nil {
		return curated.Errorf("bankp: %v", err)
	}
	bgRegion, err := regions.Get("bgtiles", 0xc000)
	if err != nil {
		return curated.Errorf("bankp: %v", err)
	}
	prom, err := regions.Get("proms", 0x220)
	if err != nil {
		return curated.Errorf("bankp: %v", err)
	}

	fgTiles, err := video.Decode(fgRegion, fgLayout)
	if err != nil {
		return curated.Errorf("bankp: fg tiles: %v", err)
	}
	bgTiles, err := video.Decode(bgRegion, bgLayout)
	if err != nil {
		return curated.Errorf("bankp: bg tiles: %v", err)
	}

	fgGfx := &video.Gfx{El: fgTiles}
	bgGfx := &video.Gfx{El: bgTiles, ColorBase: 0x100}

	brd.fg = video.NewTilemap(func(tileIndex int) video.TileInfo {
		attr := brd.fgCram[tileIndex]
		group := int(attr >> 3 & 0x1f)
		color := group
		if brd.control&0x08 == 0x08 {
			color |= 0x20
		}
		return video.TileInfo{
			Gfx:   fgGfx,
			Code:  int(brd.fgVram[tileIndex]) | int(attr&0x03)<<8,
			Color: color,
			FlipX: attr&0x04 == 0x04,
			Group: group,
		}
	}, 32, 32, 8, 8)

	brd.bg = video.NewTilemap(func(tileIndex int) video.TileInfo {
		attr := brd.bgCram[tileIndex]
		group := int(attr >> 4 & 0x0f)
		color := group
		if brd.control&0x08 == 0x08 {
			color |= 0x10
		}
		return video.TileInfo{
			Gfx:   bgGfx,
			Code:  int(brd.bgVram[tileIndex]) | int(attr&0x07)<<8,
			Color: color,
			FlipX: attr&0x08 == 0x08,
			Group: group,
		}
	}, 32, 32, 8, 8)

	// a pen is transparent when its lookup nibble is zero. the masks are
	// taken from the group's own colour, ignoring the colour bank select
	for g := 0; g < 0x20; g++ {
		var mask uint32
		for p := 0; p < 4; p++ {
			if prom[0x20+g*4+p]&0x0f == 0x00 {
				mask |= 1 << p
			}
		}
		brd.fg.SetTransMask(g, mask)
	}
	for g := 0; g < 0x10; g++ {
		var mask uint32
		for p := 0; p < 8; p++ {
			if prom[0x120+g*8+p]&0x0f == 0x00 {
				mask |= 1 << p
			}
		}
		brd.bg.SetTransMask(g, mask)
	}

	return nil
}

// videoControlWrite handles the register at IO port 7. Bits 0-1 are the
// tilemap priority, bit 2 turns the display on, bit 3 selects the colour
// bank, bit 4 gates the vblank NMI and bit 5 flips the screen.
func (brd *Board) videoControlWrite(data uint8) {
	if (brd.control^data)&0x08 != 0x00 {
		brd.fg.MarkAllDirty()
		brd.bg.MarkAllDirty()
	}
	brd.control = data

	flip := data&0x20 == 0x20
	brd.fg.SetFlip(flip)
	brd.bg.SetFlip(flip)
}

func (brd *Board) drawFrame() {
	b := brd.Mach.Screen.Bitmap

	if brd.control&0x04 != 0x04 {
		b.Fill(blackPen)
		return
	}

	// tilemap scroll offsets are map relative; the register shifts the
	// image the other way
	if brd.control&0x20 == 0x20 {
		brd.fg.SetScrollX(-(240 - int(brd.scrollX)))
		brd.bg.SetScrollX(-240)
	} else {
		brd.fg.SetScrollX(-int(brd.scrollX))
		brd.bg.SetScrollX(0)
	}

	// only bit 1 of the priority field appears to matter
	if brd.control&0x02 == 0x02 {
		brd.fg.Draw(b, video.DrawOpts{Opaque: true})
		brd.bg.Draw(b, video.DrawOpts{Layer0: true})
	} else {
		brd.bg.Draw(b, video.DrawOpts{Opaque: true})
		brd.fg.Draw(b, video.DrawOpts{Layer0: true})
	}
}
