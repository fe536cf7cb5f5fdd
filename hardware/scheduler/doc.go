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

// Package scheduler implements the cooperative timeline that multiplexes the
// virtual CPUs and devices of a machine. It is deliberately simple: a single
// goroutine advances a virtual clock one tick at a time and on every tick
// gives each registered runner the chance to do a bounded amount of work.
// There is no real parallelism. Any interleaving of bus accesses is an
// interleaving of complete calls, never a torn access.
//
// Runners can be suspended against a trigger token. A suspended runner is
// skipped by the dispatch loop until either the token is triggered by a
// Resume() call or the bounded wait expires. Suspension is requested by the
// currently dispatched runner only, which mirrors how a CPU can only stall
// itself on a bus access.
//
// The Synchroniser interface is the narrow view of the scheduler that
// memory-mapped devices are given. Devices should not be able to reach the
// dispatch loop itself.
package scheduler
