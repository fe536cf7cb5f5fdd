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

// Bitmap holds one frame of pen data plus the per-pixel priority buffer
// used when sprites and tilemaps are mixed.
type Bitmap struct {
	Width  int
	Height int

	pens     []uint16
	priority []uint8
}

func NewBitmap(width int, height int) *Bitmap {
	return &Bitmap{
		Width:    width,
		Height:   height,
		pens:     make([]uint16, width*height),
		priority: make([]uint8, width*height),
	}
}

func (b *Bitmap) Pen(x int, y int) uint16 {
	return b.pens[y*b.Width+x]
}

func (b *Bitmap) SetPen(x int, y int, pen uint16) {
	b.pens[y*b.Width+x] = pen
}

func (b *Bitmap) Priority(x int, y int) uint8 {
	return b.priority[y*b.Width+x]
}

func (b *Bitmap) SetPriority(x int, y int, p uint8) {
	b.priority[y*b.Width+x] = p
}

// Fill every pen in the bitmap.
func (b *Bitmap) Fill(pen uint16) {
	for i := range b.pens {
		b.pens[i] = pen
	}
}

// ClearPriority zeroes the priority buffer. Called at the start of every
// frame before any priority-aware drawing.
func (b *Bitmap) ClearPriority() {
	b.FillPriority(0)
}

// FillPriority sets every entry of the priority buffer.
func (b *Bitmap) FillPriority(p uint8) {
	for i := range b.priority {
		b.priority[i] = p
	}
}

// Renderer implementations receive completed frames from the Screen.
type Renderer interface {
	NewFrame(b *Bitmap, p *Palette) error
}

// Screen owns the frame bitmap and forwards completed frames to any
// attached renderers.
type Screen struct {
	Bitmap  *Bitmap
	Palette *Palette

	// vertical range of visible scanlines, inclusive
	VisibleTop    int
	VisibleBottom int

	renderers []Renderer

	frameNum int
}

func NewScreen(width int, height int, pal *Palette) *Screen {
	return &Screen{
		Bitmap:        NewBitmap(width, height),
		Palette:       pal,
		VisibleTop:    0,
		VisibleBottom: height - 1,
	}
}

// AddRenderer attaches a frame consumer.
func (s *Screen) AddRenderer(r Renderer) {
	s.renderers = append(s.renderers, r)
}

// FrameNum of the most recently completed frame.
func (s *Screen) FrameNum() int {
	return s.frameNum
}

// EndFrame marks the bitmap complete and hands it to every renderer.
func (s *Screen) EndFrame() error {
	s.frameNum++
	for _, r := range s.renderers {
		if err := r.NewFrame(s.Bitmap, s.Palette); err != nil {
			return err
		}
	}
	return nil
}
