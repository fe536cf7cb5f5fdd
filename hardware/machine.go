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
	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/hardware/scheduler"
	"github.com/jackson2k2/mame/hardware/video"
	"github.com/jackson2k2/mame/logger"
)

// Machine is the main container for the emulated components of an arcade
// board.
type Machine struct {
	Name string

	Sched *scheduler.Scheduler
	CPUs  []*CPU

	Screen *video.Screen

	// scheduler ticks in one frame of emulation
	TicksPerFrame int

	frameNum int

	// work performed at the end of every frame, before the screen
	// completes. interrupt pulses and screen drawing live here
	vblank []func() error

	// reset hooks registered by the board, called before the CPU slots and
	// scheduler are reset
	reset []func()

	// save state registry, in registration order
	state []statePart
}

// NewMachine creates a Machine with a fresh scheduler and no components.
func NewMachine(name string) *Machine {
	return &Machine{
		Name:  name,
		Sched: scheduler.NewScheduler(),
	}
}

// AddCPU creates a CPU slot and registers it with the scheduler.
func (mach *Machine) AddCPU(label string) *CPU {
	c := NewCPU(label)
	mach.Sched.AddRunner(label, c)
	mach.CPUs = append(mach.CPUs, c)
	return c
}

// OnVBlank registers work to run at the end of every frame, in
// registration order, before the screen completes the frame.
func (mach *Machine) OnVBlank(f func() error) {
	mach.vblank = append(mach.vblank, f)
}

// OnReset registers a hook to run at the start of every Reset().
func (mach *Machine) OnReset(f func()) {
	mach.reset = append(mach.reset, f)
}

// FrameNum of the most recently completed frame.
func (mach *Machine) FrameNum() int {
	return mach.frameNum
}

// RunFrame runs the scheduler for one frame's worth of ticks and then
// performs the end-of-frame work.
func (mach *Machine) RunFrame() error {
	if mach.TicksPerFrame <= 0 {
		return curated.Errorf("machine: %s: ticks per frame not set", mach.Name)
	}

	for i := 0; i < mach.TicksPerFrame; i++ {
		if err := mach.Sched.Tick(); err != nil {
			return curated.Errorf("machine: %s: %v", mach.Name, err)
		}
	}

	for _, f := range mach.vblank {
		if err := f(); err != nil {
			return curated.Errorf("machine: %s: %v", mach.Name, err)
		}
	}

	if mach.Screen != nil {
		if err := mach.Screen.EndFrame(); err != nil {
			return curated.Errorf("machine: %s: %v", mach.Name, err)
		}
	}

	mach.frameNum++

	return nil
}

// Run the machine for the specified number of frames. The continueCheck
// callback is consulted between frames; a nil callback runs all frames.
func (mach *Machine) Run(numFrames int, continueCheck func() bool) error {
	for i := 0; i < numFrames; i++ {
		if err := mach.RunFrame(); err != nil {
			return err
		}
		if continueCheck != nil && !continueCheck() {
			return nil
		}
	}
	return nil
}

// Reset the machine to its power-on state. Board reset hooks run first so
// that anything holding a scheduler suspension can resolve it before the
// scheduler itself is reset.
func (mach *Machine) Reset() {
	logger.Log(logger.Allow, "machine", mach.Name+": reset")

	for _, f := range mach.reset {
		f()
	}
	for _, c := range mach.CPUs {
		c.Reset()
	}
	mach.Sched.Reset()
	mach.frameNum = 0
}
