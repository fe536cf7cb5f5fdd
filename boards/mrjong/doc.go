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

// Package mrjong implements the Kiwako Mr. Jong board, also sold as Crazy
// Blocks and BlockBuster. A single Z80 with its peripherals on the IO
// ports, one background tilemap scanned from the bottom-right corner and
// a sprite list stored in the first entries of video RAM.
//
// The colour pipeline is indirect: a 32 byte PROM defines sixteen colours
// and a 256 byte PROM maps the 128 pens onto them.
package mrjong
