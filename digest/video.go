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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jackson2k2/mame/hardware/video"
)

// Video is an implementation of the video.Renderer interface. It folds a
// SHA-1 value of the resolved frame image into a running digest. It does
// not display the image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

const pixelDepth = 3

func NewVideo() *Video {
	return &Video{}
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum of the most recently digested frame.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame implements the video.Renderer interface. Fingerprints are
// chained: the previous digest value heads the data being hashed, so the
// final hash depends on every frame seen since the last reset.
func (dig *Video) NewFrame(b *video.Bitmap, p *video.Palette) error {
	l := len(dig.digest) + b.Width*b.Height*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	copy(dig.pixels, dig.digest[:])

	i := len(dig.digest)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := p.Color(b.Pen(x, y))
			dig.pixels[i] = c.R
			dig.pixels[i+1] = c.G
			dig.pixels[i+2] = c.B
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
	return nil
}
