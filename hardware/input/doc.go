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

// Package input models the input ports of an arcade PCB: joysticks, buttons
// and coin switches wired to the bits of an eight bit port, and banks of
// DIP switches. Ports are read as bytes through the memory or IO bus; the
// inputs on these boards are active low so an idle port reads as 0xff.
//
// The Multiplexer type models the pair of 4-bit input expander chips found
// on the Mr. Do's Castle hardware, which split every source port into
// nibbles and present them under a port select written by the CPU.
package input
