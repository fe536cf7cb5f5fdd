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

// TileInfo is the result of a tilemap callback: which element to draw at a
// tile position and how.
type TileInfo struct {
	Gfx   *Gfx
	Code  int
	Color int
	FlipX bool
	FlipY bool

	// Group selects which entry of the transparency mask table applies to
	// this tile. Most boards use a single group.
	Group int

	// ForceLayer0 draws the tile fully opaque regardless of transparency
	// settings
	ForceLayer0 bool
}

// GetTileInfo is called for each tile index when the tilemap refreshes
// its cache.
type GetTileInfo func(tileIndex int) TileInfo

// Tilemap renders a fixed grid of tiles with scrolling and per-pen
// transparency. Tile pen data is cached and refreshed lazily through the
// dirty flags.
type Tilemap struct {
	cols       int
	rows       int
	tileWidth  int
	tileHeight int

	info GetTileInfo

	// pen cache for the whole map, row major in pixels
	pens  []uint16
	prio  []uint8
	attrs []TileInfo
	dirty []bool

	width  int
	height int

	scrollX int
	scrollY int
	flip    bool

	// tile indices are assigned to grid positions bottom-right first
	scanFlipXY bool

	// transparent pen for single-pen transparency. -1 for opaque maps
	transPen int

	// pen mask table indexed by tile group. a set bit marks the pen
	// transparent
	transMasks map[int]uint32
}

func NewTilemap(info GetTileInfo, cols int, rows int, tileWidth int, tileHeight int) *Tilemap {
	t := &Tilemap{
		cols:       cols,
		rows:       rows,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		info:       info,
		width:      cols * tileWidth,
		height:     rows * tileHeight,
		transPen:   -1,
		transMasks: make(map[int]uint32),
	}
	t.pens = make([]uint16, t.width*t.height)
	t.prio = make([]uint8, t.width*t.height)
	t.attrs = make([]TileInfo, cols*rows)
	t.dirty = make([]bool, cols*rows)
	t.MarkAllDirty()
	return t
}

// SetTransparentPen marks one pen value transparent for every tile.
func (t *Tilemap) SetTransparentPen(pen int) {
	t.transPen = pen
}

// SetTransMask sets the per-group transparency pen mask. A set bit in
// fgMask removes that pen from the layer 0 (front) pass, leaving it to the
// back pass.
func (t *Tilemap) SetTransMask(group int, fgMask uint32) {
	t.transMasks[group] = fgMask
}

func (t *Tilemap) SetScrollX(scroll int) {
	t.scrollX = scroll
}

func (t *Tilemap) SetScrollY(scroll int) {
	t.scrollY = scroll
}

// SetScanFlipXY reverses the assignment of tile indices to grid
// positions in both axes: index zero becomes the bottom-right tile.
func (t *Tilemap) SetScanFlipXY(flip bool) {
	if t.scanFlipXY != flip {
		t.scanFlipXY = flip
		t.MarkAllDirty()
	}
}

// SetFlip flips the whole map in both axes. Used for cocktail cabinet
// screen inversion.
func (t *Tilemap) SetFlip(flip bool) {
	if t.flip != flip {
		t.flip = flip
		t.MarkAllDirty()
	}
}

// MarkTileDirty forces the tile at the index to be redecoded on the next
// draw.
func (t *Tilemap) MarkTileDirty(tileIndex int) {
	if tileIndex >= 0 && tileIndex < len(t.dirty) {
		t.dirty[tileIndex] = true
	}
}

func (t *Tilemap) MarkAllDirty() {
	for i := range t.dirty {
		t.dirty[i] = true
	}
}

func (t *Tilemap) refresh() {
	for i, d := range t.dirty {
		if !d {
			continue
		}
		t.dirty[i] = false

		ti := t.info(i)
		t.attrs[i] = ti

		col := i % t.cols
		row := i / t.cols
		if t.scanFlipXY {
			col = t.cols - 1 - col
			row = t.rows - 1 - row
		}

		flipx := ti.FlipX
		flipy := ti.FlipY
		if t.flip {
			col = t.cols - 1 - col
			row = t.rows - 1 - row
			flipx = !flipx
			flipy = !flipy
		}

		base := uint16(ti.Gfx.ColorBase + ti.Color*ti.Gfx.granularity())
		x0 := col * t.tileWidth
		y0 := row * t.tileHeight

		for sy := 0; sy < t.tileHeight; sy++ {
			py := y0 + sy
			if flipy {
				py = y0 + t.tileHeight - 1 - sy
			}
			for sx := 0; sx < t.tileWidth; sx++ {
				px := x0 + sx
				if flipx {
					px = x0 + t.tileWidth - 1 - sx
				}
				pen := ti.Gfx.El.Pen(ti.Code, sx, sy)
				t.pens[py*t.width+px] = base + uint16(pen)
				t.prio[py*t.width+px] = pen
			}
		}
	}
}

// DrawOpts control a tilemap draw pass.
type DrawOpts struct {
	// Opaque draws every pixel regardless of transparency settings
	Opaque bool

	// Layer0 restricts drawing to the pens outside the group's transparency
	// mask, making this a front layer pass
	Layer0 bool

	// Priority written to the bitmap's priority buffer for every pixel
	// drawn
	Priority uint8
}

// Draw renders the visible window of the tilemap into the bitmap,
// honouring scroll, transparency and the priority buffer.
func (t *Tilemap) Draw(b *Bitmap, opts DrawOpts) {
	t.refresh()

	for y := 0; y < b.Height; y++ {
		sy := (y + t.scrollY) % t.height
		if sy < 0 {
			sy += t.height
		}
		for x := 0; x < b.Width; x++ {
			sx := (x + t.scrollX) % t.width
			if sx < 0 {
				sx += t.width
			}

			col := sx / t.tileWidth
			row := sy / t.tileHeight
			if t.scanFlipXY != t.flip {
				col = t.cols - 1 - col
				row = t.rows - 1 - row
			}
			tileIndex := row*t.cols + col
			ti := t.attrs[tileIndex]

			rawPen := t.prio[sy*t.width+sx]

			if !opts.Opaque {
				if ti.ForceLayer0 {
					// forced tiles belong entirely to the front pass
					if !opts.Layer0 && len(t.transMasks) > 0 {
						continue
					}
				} else if mask, ok := t.transMasks[ti.Group]; ok {
					masked := mask>>rawPen&0x01 == 0x01
					if opts.Layer0 == masked {
						continue
					}
				} else if t.transPen >= 0 && int(rawPen) == t.transPen {
					continue
				}
			}

			b.SetPen(x, y, t.pens[sy*t.width+sx])
			b.SetPriority(x, y, opts.Priority)
		}
	}
}
