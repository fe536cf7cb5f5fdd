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

// Package bankp implements the Sanritsu/Sega Bank Panic board, also used
// by Combat Hawk. A single Z80 drives two character tilemaps: a
// scrolling 2bpp foreground and a fixed 3bpp background. There are no
// sprites.
//
// A video control register on the IO bus arbitrates everything else:
// tilemap priority, display blanking, a colour bank select feeding the
// lookup PROMs, the vblank NMI gate and screen flip.
package bankp
