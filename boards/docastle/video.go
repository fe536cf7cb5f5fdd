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

package docastle

import (
	"github.com/jackson2k2/mame/boards"
	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/hardware/video"
)

// 4bpp packed layouts, one nibble per pixel with the first pixel in the
// high nibble
var tileLayout = video.Layout{
	Width:         8,
	Height:        8,
	Total:         video.Frac(1, 1),
	PlaneOffset:   video.Step(0, 1, 4),
	XOffset:       video.Step(0, 4, 8),
	YOffset:       video.Step(0, 4*8, 8),
	CharIncrement: 32 * 8,
}

var spriteLayout = video.Layout{
	Width:         16,
	Height:        16,
	Total:         video.Frac(1, 1),
	PlaneOffset:   video.Step(0, 1, 4),
	XOffset:       video.Step(0, 4, 16),
	YOffset:       video.Step(0, 4*16, 16),
	CharIncrement: 128 * 8,
}

// buildPalette decodes the colour PROM. Red and green run through a
// 200/390/820 ohm ladder, blue through the 390/820 pair.
//
// The graphics decode as 4bpp with the top pen bit used for transparency
// or priority, so each PROM entry lands on two pens, one for each value
// of the ignored bit.
func buildPalette(regions boards.Regions) (*video.Palette, error) {
	prom, err := regions.Get("proms", 0x200)
	if err != nil {
		return nil, curated.Errorf("docastle: %v", err)
	}

	rgWeights := video.Weights(200, 390, 820)
	bWeights := video.Weights(390, 820)

	pal := video.NewPalette(0x200, 0x200)

	for i := 0; i < 0x100; i++ {
		r := video.Combine(rgWeights, prom[i]>>7&0x01|prom[i]>>5&0x02|prom[i]>>3&0x04)
		g := video.Combine(rgWeights, prom[i]>>4&0x01|prom[i]>>2&0x02|prom[i]&0x04)
		b := video.Combine(bWeights, prom[i]>>1&0x01|prom[i]<<1&0x02)

		c := video.RGB{R: r, G: g, B: b}
		pal.SetPenColor(int(uint16(i&0xf8)<<1|uint16(i&0x07)), c)
		pal.SetPenColor(int(uint16(i&0xf8)<<1|0x08|uint16(i&0x07)), c)
	}

	return pal, nil
}

func (brd *Board) buildGfx(regions boards.Regions) error {
	tileRegion, err := regions.Get("gfx8x8", 0x4000)
	if err != nil {
		return curated.Errorf("docastle: %v", err)
	}
	tiles, err := video.Decode(tileRegion, tileLayout)
	if err != nil {
		return curated.Errorf("docastle: gfx8x8: %v", err)
	}

	spriteRegion, err := regions.Get("gfx16x16", 0x8000)
	if err != nil {
		return curated.Errorf("docastle: %v", err)
	}
	sprites, err := video.Decode(spriteRegion, spriteLayout)
	if err != nil {
		return curated.Errorf("docastle: gfx16x16: %v", err)
	}
	brd.sprites = &video.Gfx{El: sprites}

	tileGfx := &video.Gfx{El: tiles}
	brd.tilemap = video.NewTilemap(func(tileIndex int) video.TileInfo {
		code := int(brd.vram[tileIndex])
		if brd.cram[tileIndex]&0x20 == 0x20 {
			code |= 0x100
		}
		return video.TileInfo{
			Gfx:   tileGfx,
			Code:  code,
			Color: int(brd.cram[tileIndex] & 0x1f),
		}
	}, 32, 32, 8, 8)

	// the tile pens split into a front and a back half. which half is in
	// front differs between the two board revisions
	switch brd.variant {
	case DoRunRun:
		brd.tilemap.SetTransMask(0, 0xff00)
	default:
		brd.tilemap.SetTransMask(0, 0x00ff)
	}

	// the tilemap is offset a character row's worth of scanlines against
	// the sprite coordinate space
	brd.tilemap.SetScrollY(32)

	return nil
}

func (brd *Board) flipscreenWrite(offset uint16, _ uint8) {
	brd.flipscreen = offset&0x80 == 0x80
	brd.tilemap.SetFlip(brd.flipscreen)
}

func (brd *Board) drawSprites(b *video.Bitmap) {
	// sprites obscure each other through the priority buffer. the fill
	// value marks pixels no sprite has touched
	b.FillPriority(1)

	for offs := len(brd.spriteram) - 4; offs >= 0; offs -= 4 {
		src := brd.spriteram[offs:]

		xpos := (int(src[1])+8)&0xff - 8
		ypos := int(src[0]) - 32
		attr := src[2]
		flipx := attr&0x40 == 0x40
		flipy := attr&0x80 == 0x80
		color := int(attr & 0x1f)
		code := int(src[3])

		if brd.flipscreen {
			xpos = 240 - xpos
			ypos = 176 - ypos
			flipx = !flipx
			flipy = !flipy
		}

		// first the sprite itself, then its pen 15 mask, which hides any
		// earlier-drawn sprite underneath while leaving the tile layer
		// visible
		brd.sprites.PrioTransMask(b, code, color, flipx, flipy, xpos, ypos, 0x0000, 0x80ff)
		brd.sprites.PrioTransMask(b, code, color, flipx, flipy, xpos, ypos, 0x0002, 0x7fff)
	}
}

func (brd *Board) drawFrame() {
	b := brd.Mach.Screen.Bitmap

	// tiles first, all pens. sprites next. the front half of the tile
	// pens last, covering the sprites
	brd.tilemap.Draw(b, video.DrawOpts{Opaque: true})
	brd.drawSprites(b)
	brd.tilemap.Draw(b, video.DrawOpts{Layer0: true})
}
