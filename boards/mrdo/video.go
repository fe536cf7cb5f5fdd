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

package mrdo

import (
	"github.com/jackson2k2/mame/boards"
	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/hardware/video"
)

// both tile regions share the same layout: 8x8 2bpp with one plane in
// each half of the region, columns stored left pixel in the high bit
var charLayout = video.Layout{
	Width:         8,
	Height:        8,
	Total:         video.Frac(1, 2),
	PlaneOffset:   []int{video.Frac(0, 2), video.Frac(1, 2)},
	XOffset:       video.Step(7, -1, 8),
	YOffset:       video.Step(0, 8, 8),
	CharIncrement: 8 * 8,
}

var spriteLayout = video.Layout{
	Width:  16,
	Height: 16,
	Total:  video.Frac(1, 1),
	PlaneOffset: []int{4, 0},
	XOffset: []int{
		3, 2, 1, 0, 11, 10, 9, 8,
		19, 18, 17, 16, 27, 26, 25, 24,
	},
	YOffset:       video.Step(0, 32, 16),
	CharIncrement: 64 * 8,
}

// Each tile layer has 64 colours of 4 pens mapped at the bottom of the
// pen space. Sprites take 16 colours of 4 pens above them.
const spritePenBase = 64 * 4

// buildPalette decodes the two palette PROMs and the sprite colour lookup
// PROM.
//
// The two PROMs drive the RGB output through a resistor ladder of 150,
// 120, 100 and 75 ohm resistors behind diodes, with a 220 ohm pulldown on
// each component. The diode voltage drop makes the response non-linear so
// the generic ladder arithmetic is not used here.
func (brd *Board) buildPalette(regions boards.Regions) (*video.Palette, error) {
	prom, err := regions.Get("proms", 0x80)
	if err != nil {
		return nil, curated.Errorf("mrdo: %v", err)
	}

	const r1 = 150.0
	const r2 = 120.0
	const r3 = 100.0
	const r4 = 75.0
	const pull = 220.0
	const potAdjust = 0.7 // diode voltage drop

	var pot [16]float64
	var weight [16]int
	for i := 0x0f; i >= 0; i-- {
		par := 0.0
		if i&0x01 == 0x01 {
			par += 1.0 / r1
		}
		if i&0x02 == 0x02 {
			par += 1.0 / r2
		}
		if i&0x04 == 0x04 {
			par += 1.0 / r3
		}
		if i&0x08 == 0x08 {
			par += 1.0 / r4
		}
		if par > 0 {
			par = 1.0 / par
			pot[i] = pull/(pull+par) - potAdjust
		}

		weight[i] = int(0xff * pot[i] / pot[0x0f])
		if weight[i] < 0 {
			weight[i] = 0
		}
	}

	pal := video.NewPalette(spritePenBase+16*4, 0x100)

	for i := 0; i < 0x100; i++ {
		// the low bits PROM in the upper half, the high bits PROM in the
		// lower
		a1 := (i>>3)&0x1c + i&0x03 + 0x20
		a2 := i&0x1c + i&0x03

		component := func(shift int) uint8 {
			bits0 := int(prom[a1]>>shift) & 0x03
			bits2 := int(prom[a2]>>shift) & 0x03
			return uint8(weight[bits0+bits2<<2])
		}

		pal.SetIndirectColor(i, video.RGB{
			R: component(0),
			G: component(2),
			B: component(4),
		})
	}

	// tile pens map straight through
	for i := 0; i < 0x100; i++ {
		pal.SetPenIndirect(i, uint16(i))
	}

	// sprite pens go through the colour lookup PROM. the high nibble
	// serves sprite colours 8-15
	lookup := prom[0x40:]
	for i := 0; i < 0x40; i++ {
		entry := lookup[i&0x1f]
		if i&0x20 == 0x20 {
			entry >>= 4
		} else {
			entry &= 0x0f
		}
		pal.SetPenIndirect(spritePenBase+i, uint16(entry)+uint16(entry&0x0c)<<3)
	}

	return pal, nil
}

func (brd *Board) buildTilemaps(regions boards.Regions) error {
	regionNames := [2]string{"bgtiles", "fgtiles"}
	var gfx [2]*video.Gfx

	for layer, name := range regionNames {
		region, err := regions.Get(name, 0x2000)
		if err != nil {
			return curated.Errorf("mrdo: %v", err)
		}
		el, err := video.Decode(region, charLayout)
		if err != nil {
			return curated.Errorf("mrdo: %s: %v", name, err)
		}
		gfx[layer] = &video.Gfx{El: el}
	}

	spriteRegion, err := regions.Get("sprites", 0x2000)
	if err != nil {
		return curated.Errorf("mrdo: %v", err)
	}
	el, err := video.Decode(spriteRegion, spriteLayout)
	if err != nil {
		return curated.Errorf("mrdo: sprites: %v", err)
	}
	brd.sprites = &video.Gfx{El: el, ColorBase: spritePenBase}

	for layer := 0; layer < 2; layer++ {
		layer := layer
		brd.tilemaps[layer] = video.NewTilemap(func(tileIndex int) video.TileInfo {
			attr := brd.colorram[layer][tileIndex]
			code := int(brd.fieldram[layer][tileIndex])
			if attr&0x80 == 0x80 {
				code |= 0x100
			}
			return video.TileInfo{
				Gfx:         gfx[layer],
				Code:        code,
				Color:       int(attr & 0x3f),
				ForceLayer0: attr&0x40 == 0x40,
			}
		}, 32, 32, 8, 8)
		brd.tilemaps[layer].SetTransparentPen(0)
	}

	return nil
}

func (brd *Board) drawSprites(b *video.Bitmap) {
	for offs := len(brd.spriteram) - 4; offs >= 0; offs -= 4 {
		src := brd.spriteram[offs:]
		if src[1] == 0 {
			continue
		}
		brd.sprites.TransPen(b,
			int(src[0]),         // code
			int(src[2]&0x0f),    // color
			src[2]&0x10 == 0x10, // flipx
			src[2]&0x20 == 0x20, // flipy
			int(src[3]),         // xpos
			256-int(src[1]),     // ypos
			0)
	}
}

func (brd *Board) drawFrame() {
	b := brd.Mach.Screen.Bitmap
	b.Fill(0)
	brd.tilemaps[0].Draw(b, video.DrawOpts{})
	brd.tilemaps[1].Draw(b, video.DrawOpts{})
	brd.drawSprites(b)
}
