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

// Package latch implements the shared latch through which two tightly
// coupled CPUs exchange data on boards like Mr. Do's Castle.
//
// On the real hardware the latch is a single bidirectional byte. Whenever
// the first CPU reads or writes it, the CPU's WAIT input is asserted; the
// WAIT line is cleared when the second CPU accesses the latch in turn. The
// WAIT line enforces synchronisation at the bus-cycle level.
//
// Reproducing the bus-cycle behaviour requires a CPU core that can stall
// mid-instruction. The package therefore offers two strategies, selected at
// construction and never mixed:
//
// The buffered strategy (the default) takes advantage of how the programs
// actually use the latch. The first CPU always writes a nine byte message
// and the write of the final byte is the signal that the message is
// complete. At that point the first CPU is suspended against a trigger
// token, giving the second CPU time to read the message and write its nine
// byte reply; the reply's final byte triggers the token and the first CPU
// resumes. The suspension is bounded: if the second CPU never reaches its
// half of the hand-off, the first CPU resumes anyway when the bound
// expires. Real hardware would hold the WAIT line forever in that
// situation; the bounded wait trades that fidelity for the guarantee that
// a wedged program cannot freeze the whole machine.
//
// The wait-line strategy models the single hardware byte and drives a
// WaitLine implementation on every access by the first CPU, for hosts whose
// CPU cores honour a WAIT input between bus cycles.
package latch
