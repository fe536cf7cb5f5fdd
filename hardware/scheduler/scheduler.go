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

package scheduler

import (
	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/logger"
)

// Token is an opaque identifier correlating a Suspend() request with its
// matching Resume() request.
type Token int

// Synchroniser is the view of the scheduler given to memory-mapped devices
// that need to stall or wake a virtual CPU.
type Synchroniser interface {
	// Suspend the currently dispatched runner until the token is triggered
	// or until maxWaitTicks have elapsed, whichever happens first.
	Suspend(tok Token, maxWaitTicks int)

	// Resume any runner suspended under the token. A Resume() with no
	// matching suspension is a no-op.
	Resume(tok Token)
}

// Runner is a unit of work dispatched by the scheduler. For a machine this
// is one virtual CPU or device. The Tick() function is called once per
// scheduler tick unless the runner is suspended.
type Runner interface {
	Tick() error
}

// RunnerFunc is an adapter allowing plain functions to be used as Runners.
type RunnerFunc func() error

// Tick implements the Runner interface.
func (f RunnerFunc) Tick() error {
	return f()
}

type suspension struct {
	runner int
	expiry uint64
}

// Scheduler is a deterministic single-threaded dispatcher. Runners are
// given time in registration order, one Tick() each per clock tick.
type Scheduler struct {
	clock   uint64
	runners []Runner
	names   []string

	// outstanding suspensions keyed by token. the dispatch loop checks
	// expiries before running anything so that a forced wake happens at
	// exactly the expiry tick
	suspended map[Token]suspension

	// index of the runner currently being dispatched. -1 outside of the
	// dispatch loop
	current int

	// notified when a suspension expires rather than being resumed
	expiryListeners []func(Token)
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	return &Scheduler{
		suspended: make(map[Token]suspension),
		current:   -1,
	}
}

// AddRunner registers a runner with the dispatch loop. The name is used for
// diagnostics only. Returns the runner id.
func (s *Scheduler) AddRunner(name string, r Runner) int {
	s.runners = append(s.runners, r)
	s.names = append(s.names, name)
	return len(s.runners) - 1
}

// AddExpiryListener registers a function to be called whenever a suspension
// resolves by timeout rather than by a Resume() call.
func (s *Scheduler) AddExpiryListener(f func(Token)) {
	s.expiryListeners = append(s.expiryListeners, f)
}

// Clock returns the current value of the virtual clock.
func (s *Scheduler) Clock() uint64 {
	return s.clock
}

// Suspend implements the Synchroniser interface.
//
// Suspension applies to the currently dispatched runner. Calling Suspend()
// from outside the dispatch loop is a contract violation by the caller and
// is logged and ignored.
func (s *Scheduler) Suspend(tok Token, maxWaitTicks int) {
	if s.current == -1 {
		logger.Logf(logger.Allow, "scheduler", "suspend of token %d from outside dispatch loop", tok)
		return
	}
	if _, ok := s.suspended[tok]; ok {
		logger.Logf(logger.Allow, "scheduler", "token %d suspended twice", tok)
	}
	s.suspended[tok] = suspension{
		runner: s.current,
		expiry: s.clock + uint64(maxWaitTicks),
	}
}

// Resume implements the Synchroniser interface.
func (s *Scheduler) Resume(tok Token) {
	delete(s.suspended, tok)
}

// Suspended returns true if a suspension is outstanding for the token.
func (s *Scheduler) Suspended(tok Token) bool {
	_, ok := s.suspended[tok]
	return ok
}

// Tick advances the virtual clock by one and dispatches every runnable
// runner once. Suspension expiries are resolved before dispatch so a forced
// wake takes effect at exactly the expiry tick.
func (s *Scheduler) Tick() error {
	s.clock++

	for tok, sus := range s.suspended {
		if s.clock >= sus.expiry {
			delete(s.suspended, tok)
			for _, f := range s.expiryListeners {
				f(tok)
			}
		}
	}

	for i, r := range s.runners {
		if s.runnerSuspended(i) {
			continue
		}
		s.current = i
		err := r.Tick()
		s.current = -1
		if err != nil {
			return curated.Errorf("scheduler: %s: %v", s.names[i], err)
		}
	}

	return nil
}

// Run the dispatch loop for the specified number of ticks.
func (s *Scheduler) Run(numTicks int) error {
	for i := 0; i < numTicks; i++ {
		if err := s.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Reset the scheduler, discarding all outstanding suspensions. Stateful
// devices are responsible for resolving their own suspensions before the
// scheduler is reset, so stale state does not survive into the next session.
func (s *Scheduler) Reset() {
	s.clock = 0
	for tok := range s.suspended {
		delete(s.suspended, tok)
	}
}

func (s *Scheduler) runnerSuspended(id int) bool {
	for _, sus := range s.suspended {
		if sus.runner == id {
			return true
		}
	}
	return false
}
