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

// Package docastle describes the Universal Mr. Do's Castle board family,
// which also runs Do! Run Run, Mr. Do's Wild Ride and Kick Rider.
//
// Three Z80 slots share the work: the first runs the game, the second
// handles inputs and sound, the third gates sprite RAM through to the
// sprite chip. The first two communicate through a bidirectional latch
// at a000-a008; every exchange is a nine byte message each way, with the
// ninth byte acting as the transaction-complete signal. The hardware
// enforces the hand-off through the first CPU's WAIT line; see the
// hardware/latch package for the two ways this is modelled.
package docastle
