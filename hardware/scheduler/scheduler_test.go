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

package scheduler_test

import (
	"testing"

	"github.com/jackson2k2/mame/hardware/scheduler"
	"github.com/jackson2k2/mame/test"
)

func TestDispatchOrder(t *testing.T) {
	sch := scheduler.NewScheduler()

	var order []string
	sch.AddRunner("a", scheduler.RunnerFunc(func() error {
		order = append(order, "a")
		return nil
	}))
	sch.AddRunner("b", scheduler.RunnerFunc(func() error {
		order = append(order, "b")
		return nil
	}))

	test.ExpectedSuccess(t, sch.Run(2))
	test.EquateSlices(t, order, []string{"a", "b", "a", "b"})
	test.Equate(t, sch.Clock(), uint64(2))
}

func TestSuspendResume(t *testing.T) {
	const tok = scheduler.Token(500)

	sch := scheduler.NewScheduler()

	ticksA := 0
	sch.AddRunner("a", scheduler.RunnerFunc(func() error {
		ticksA++
		if ticksA == 1 {
			sch.Suspend(tok, 100)
		}
		return nil
	}))

	ticksB := 0
	sch.AddRunner("b", scheduler.RunnerFunc(func() error {
		ticksB++
		if ticksB == 5 {
			sch.Resume(tok)
		}
		return nil
	}))

	test.ExpectedSuccess(t, sch.Run(10))

	// runner a ran on the first tick, was skipped while suspended, and
	// resumed the tick after runner b triggered the token
	test.Equate(t, ticksB, 10)
	test.Equate(t, ticksA, 6)
	test.ExpectedFailure(t, sch.Suspended(tok))
}

func TestSuspendExpiry(t *testing.T) {
	const tok = scheduler.Token(1)
	const maxWait = 7

	sch := scheduler.NewScheduler()

	var expired []uint64
	sch.AddExpiryListener(func(_ scheduler.Token) {
		expired = append(expired, sch.Clock())
	})

	ticksA := 0
	sch.AddRunner("a", scheduler.RunnerFunc(func() error {
		ticksA++
		if ticksA == 1 {
			sch.Suspend(tok, maxWait)
		}
		return nil
	}))

	test.ExpectedSuccess(t, sch.Run(20))

	// suspended at tick 1, forced wake at exactly tick 1+maxWait, no second
	// expiry
	test.Equate(t, len(expired), 1)
	test.Equate(t, expired[0], uint64(1+maxWait))
	test.Equate(t, ticksA, 20-maxWait+1)
}

func TestResumeWithoutSuspend(t *testing.T) {
	sch := scheduler.NewScheduler()
	sch.Resume(scheduler.Token(99))
	test.ExpectedFailure(t, sch.Suspended(scheduler.Token(99)))
}

func TestReset(t *testing.T) {
	const tok = scheduler.Token(2)

	sch := scheduler.NewScheduler()
	sch.AddRunner("a", scheduler.RunnerFunc(func() error {
		if !sch.Suspended(tok) && sch.Clock() == 1 {
			sch.Suspend(tok, 1000)
		}
		return nil
	}))

	test.ExpectedSuccess(t, sch.Run(1))
	test.ExpectedSuccess(t, sch.Suspended(tok))

	sch.Reset()
	test.Equate(t, sch.Clock(), uint64(0))
	test.ExpectedFailure(t, sch.Suspended(tok))
}
