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

package hardware_test

import (
	"bytes"
	"testing"

	"github.com/jackson2k2/mame/hardware"
	"github.com/jackson2k2/mame/test"
)

func TestMachineFrames(t *testing.T) {
	mach := hardware.NewMachine("test")
	mach.TicksPerFrame = 10

	ticks := 0
	cpu := mach.AddCPU("maincpu")
	cpu.SetProgram(func() error {
		ticks++
		return nil
	})

	vblanks := 0
	mach.OnVBlank(func() error {
		vblanks++
		return nil
	})

	test.ExpectedSuccess(t, mach.RunFrame())
	test.Equate(t, ticks, 10)
	test.Equate(t, vblanks, 1)
	test.Equate(t, mach.FrameNum(), 1)

	test.ExpectedSuccess(t, mach.Run(3, nil))
	test.Equate(t, ticks, 40)
	test.Equate(t, mach.FrameNum(), 4)
}

func TestMachineNoTicksPerFrame(t *testing.T) {
	mach := hardware.NewMachine("test")
	test.ExpectedFailure(t, mach.RunFrame())
}

func TestMachineContinueCheck(t *testing.T) {
	mach := hardware.NewMachine("test")
	mach.TicksPerFrame = 1

	test.ExpectedSuccess(t, mach.Run(100, func() bool {
		return mach.FrameNum() < 5
	}))
	test.Equate(t, mach.FrameNum(), 5)
}

func TestCPUControlLines(t *testing.T) {
	mach := hardware.NewMachine("test")
	mach.TicksPerFrame = 10

	ticks := 0
	cpu := mach.AddCPU("maincpu")
	cpu.SetProgram(func() error {
		ticks++
		return nil
	})

	// a held WAIT line stops the program function
	cpu.SetWaitLine(true)
	test.ExpectedSuccess(t, mach.RunFrame())
	test.Equate(t, ticks, 0)

	cpu.SetWaitLine(false)
	test.ExpectedSuccess(t, mach.RunFrame())
	test.Equate(t, ticks, 10)

	// HALT behaves the same way
	cpu.SetHaltLine(true)
	test.ExpectedSuccess(t, mach.RunFrame())
	test.Equate(t, ticks, 10)

	// NMI latches until taken
	cpu.PulseNMI()
	test.Equate(t, cpu.TakeNMI(), true)
	test.Equate(t, cpu.TakeNMI(), false)

	// reset clears control lines but keeps the program attached
	cpu.SetIRQLine(true)
	cpu.Reset()
	test.Equate(t, cpu.IRQLine(), false)
	test.ExpectedSuccess(t, mach.RunFrame())
	test.Equate(t, ticks, 20)
}

func TestMachineReset(t *testing.T) {
	mach := hardware.NewMachine("test")
	mach.TicksPerFrame = 1

	hooks := 0
	mach.OnReset(func() {
		hooks++
	})

	test.ExpectedSuccess(t, mach.Run(3, nil))
	mach.Reset()
	test.Equate(t, hooks, 1)
	test.Equate(t, mach.FrameNum(), 0)
	test.Equate(t, mach.Sched.Clock(), uint64(0))
}

func TestMachineSaveState(t *testing.T) {
	mach := hardware.NewMachine("test")

	ram := make([]uint8, 16)
	mach.AddRAMState("ram", ram)

	for i := range ram {
		ram[i] = uint8(i * 3)
	}

	b := &bytes.Buffer{}
	test.ExpectedSuccess(t, mach.SaveState(b))

	for i := range ram {
		ram[i] = 0xff
	}

	test.ExpectedSuccess(t, mach.RestoreState(b))
	for i := range ram {
		test.Equate(t, ram[i], uint8(i*3))
	}
}
