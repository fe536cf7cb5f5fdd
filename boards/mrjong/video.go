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

package mrjong

import (
	"github.com/jackson2k2/mame/boards"
	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/hardware/video"
)

// 2bpp with one plane in each half of the region, rows stored bottom
// first
var tileLayout = video.Layout{
	Width:         8,
	Height:        8,
	Total:         video.Frac(1, 2),
	PlaneOffset:   []int{video.Frac(0, 2), video.Frac(1, 2)},
	XOffset:       video.Step(0, 1, 8),
	YOffset:       video.Step(7*8, -8, 8),
	CharIncrement: 8 * 8,
}

var spriteLayout = video.Layout{
	Width:         16,
	Height:        16,
	Total:         video.Frac(1, 2),
	PlaneOffset:   []int{video.Frac(0, 2), video.Frac(1, 2)},
	XOffset:       append(video.Step(8*8, 1, 8), video.Step(0, 1, 8)...),
	YOffset:       append(video.Step(23*8, -8, 8), video.Step(7*8, -8, 8)...),
	CharIncrement: 32 * 8,
}

// buildPalette decodes the two colour PROMs: sixteen colours from a
// 1k/470/220 ohm ladder, then a lookup table mapping the 128 pens onto
// them.
func buildPalette(regions boards.Regions) (*video.Palette, error) {
	prom, err := regions.Get("proms", 0x120)
	if err != nil {
		return nil, curated.Errorf("mrjong: %v", err)
	}

	rgWeights := video.Weights(1000, 470, 220)
	bWeights := video.Weights(470, 220)

	pal := video.NewPalette(0x80, 0x10)

	for i := 0; i < 0x10; i++ {
		r := video.Combine(rgWeights, prom[i]&0x07)
		g := video.Combine(rgWeights, prom[i]>>3&0x07)
		b := video.Combine(bWeights, prom[i]>>6&0x03)
		pal.SetIndirectColor(i, video.RGB{R: r, G: g, B: b})
	}

	lookup := prom[0x20:]
	for i := 0; i < 0x80; i++ {
		pal.SetPenIndirect(i, uint16(lookup[i]&0x0f))
	}

	return pal, nil
}

func (brd *Board) buildGfx(regions boards.Regions) error {
	region, err := regions.Get("gfx", 0x2000)
	if err != nil {
		return curated.Errorf("mrjong: %v", err)
	}

	tiles, err := video.Decode(region, tileLayout)
	if err != nil {
		return curated.Errorf("mrjong: tiles: %v", err)
	}
	sprites, err := video.Decode(region, spriteLayout)
	if err != nil {
		return curated.Errorf("mrjong: sprites: %v", err)
	}
	brd.sprites = &video.Gfx{El: sprites}

	tileGfx := &video.Gfx{El: tiles}
	brd.tilemap = video.NewTilemap(func(tileIndex int) video.TileInfo {
		attr := brd.cram[tileIndex]
		code := int(brd.vram[tileIndex])
		if attr&0x20 == 0x20 {
			code |= 0x100
		}
		return video.TileInfo{
			Gfx:   tileGfx,
			Code:  code,
			Color: int(attr & 0x1f),
			FlipX: attr&0x40 == 0x40,
			FlipY: attr&0x80 == 0x80,
		}
	}, 32, 32, 8, 8)

	// video RAM is addressed from the bottom-right corner of the screen
	brd.tilemap.SetScanFlipXY(true)

	return nil
}

// the first sixteen entries of video RAM double as the sprite list
func (brd *Board) drawSprites(b *video.Bitmap) {
	for offs := 0x40 - 4; offs >= 0; offs -= 4 {
		src := brd.vram[offs:]

		ypos := int(src[0])
		xpos := 224 - int(src[2])
		flipx := src[1]&0x01 == 0x01
		flipy := src[1]&0x02 == 0x02
		color := int(src[3] & 0x1f)
		code := int(src[1] >> 2 & 0x3f)
		if src[3]&0x20 == 0x20 {
			code |= 0x40
		}

		if brd.flipscreen {
			xpos = 192 - xpos
			ypos = 240 - ypos
			flipx = !flipx
			flipy = !flipy
		}

		brd.sprites.TransPen(b, code, color, flipx, flipy, xpos, ypos, 0)
	}
}

func (brd *Board) drawFrame() {
	b := brd.Mach.Screen.Bitmap
	brd.tilemap.Draw(b, video.DrawOpts{})
	brd.drawSprites(b)
}
