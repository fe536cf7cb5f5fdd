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

package hardware

import (
	"github.com/jackson2k2/mame/hardware/bus"
)

// CPU is one processor slot on the board. The slot owns the program and IO
// buses the processor sees and the control lines the board can drive; the
// processor itself is a program function attached with SetProgram() and
// run by the scheduler.
//
// The program function is called once per scheduler tick while none of the
// control lines hold the slot. What one tick of work means is up to the
// board.
type CPU struct {
	label string

	// the address spaces seen by this slot
	Program *bus.Bus
	IO      *bus.Bus

	program func() error

	wait bool
	halt bool

	nmiPending bool
	irqLine    bool
}

// NewCPU creates a CPU slot with empty program and IO buses. The IO bus is
// masked to the low byte of the address in the manner of Z80 port
// addressing.
func NewCPU(label string) *CPU {
	c := &CPU{
		label:   label,
		Program: bus.NewBus(label + ":program"),
		IO:      bus.NewBus(label + ":io"),
	}
	c.IO.SetMask(0x00ff)
	return c
}

func (c *CPU) Label() string {
	return c.label
}

// SetProgram attaches the function that performs one tick of work for the
// slot.
func (c *CPU) SetProgram(program func() error) {
	c.program = program
}

// SetWaitLine drives the slot's WAIT input. While asserted the slot
// performs no work.
func (c *CPU) SetWaitLine(assert bool) {
	c.wait = assert
}

// WaitLine returns the current state of the WAIT input.
func (c *CPU) WaitLine() bool {
	return c.wait
}

// SetHaltLine stops or restarts the slot. Used by boards that hold a
// secondary CPU in reset until the main program releases it.
func (c *CPU) SetHaltLine(assert bool) {
	c.halt = assert
}

// PulseNMI latches a non-maskable interrupt for the program function to
// pick up with TakeNMI().
func (c *CPU) PulseNMI() {
	c.nmiPending = true
}

// TakeNMI returns true once for every PulseNMI().
func (c *CPU) TakeNMI() bool {
	t := c.nmiPending
	c.nmiPending = false
	return t
}

// SetIRQLine drives the slot's maskable interrupt line.
func (c *CPU) SetIRQLine(assert bool) {
	c.irqLine = assert
}

// IRQLine returns the current state of the maskable interrupt line.
func (c *CPU) IRQLine() bool {
	return c.irqLine
}

// Tick implements the scheduler.Runner interface.
func (c *CPU) Tick() error {
	if c.wait || c.halt || c.program == nil {
		return nil
	}
	return c.program()
}

// Reset the slot's control lines and pending interrupts. The attached
// program function is retained.
func (c *CPU) Reset() {
	c.wait = false
	c.halt = false
	c.nmiPending = false
	c.irqLine = false
}
