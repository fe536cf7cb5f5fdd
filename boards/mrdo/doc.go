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

// Package mrdo describes the Universal Mr. Do! board. A single Z80 slot
// with two 32x32 tilemaps, a scrolling playfield, sprites, a two-PROM
// resistor ladder palette and, on the Taito licensed revision, a PAL16R6
// protection device clocked by tile RAM writes.
package mrdo
