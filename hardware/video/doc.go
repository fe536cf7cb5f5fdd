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

// Package video implements the video pipeline shared by all boards:
// decoding of planar character and sprite ROMs into pen data, the indexed
// palette with its resistor-ladder PROM arithmetic, the tilemap renderer
// and the screen that hands finished frames to registered renderers.
//
// The pipeline is pen-based throughout. Tilemaps and sprites compose into
// a bitmap of palette pens; colour is resolved only when the frame is
// complete. This mirrors the indirection on the real boards, where the
// video hardware emits pen numbers and the PROM ladder turns them into
// voltages.
package video
