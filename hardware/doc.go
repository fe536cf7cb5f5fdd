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

// Package hardware is the top level container for the emulated components
// of an arcade board: the CPU slots, the cooperative scheduler that drives
// them, the screen and the serialisable machine state.
//
// A Machine on its own does nothing. Board packages describe a specific
// arcade system by populating a Machine: adding CPU slots, mapping memory
// and ports onto the slots' buses, attaching a latch between slots that
// share one, and registering per-frame work.
//
// The sub-packages of the hardware package implement the individual
// components: scheduler, bus, latch, video, input and watchdog.
package hardware
