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

// Package bus implements the memory-mapped dispatch for one virtual CPU. A
// board builds an address map by binding address ranges to RAM, ROM or
// read/write handler functions; the bus then routes every access by the CPU
// to the bound target, passing the range-relative offset the way the
// original address decoders did.
//
// Ranges can declare a mirror mask: address bits that the decoder ignores,
// making the range appear repeatedly through the address space.
//
// Accesses that decode to nothing read as a floating bus value and are
// logged, they are never an error. The emulated program cannot observe a
// fault that the hardware would not have produced.
package bus
