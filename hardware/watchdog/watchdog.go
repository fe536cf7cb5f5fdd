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

// Package watchdog implements the reset-on-stall watchdog timer found on
// boards like Mr. Do's Castle. The program strobes a memory-mapped address
// periodically; if it fails to do so within the timer's budget the board is
// reset.
package watchdog

import (
	"github.com/jackson2k2/mame/logger"
)

// Watchdog counts scheduler ticks since the last strobe and fires a
// callback when the budget is exhausted.
type Watchdog struct {
	limit   int
	counter int
	expired func()
}

// NewWatchdog creates a watchdog with the tick budget. The expired
// function is typically the machine's reset.
func NewWatchdog(limit int, expired func()) *Watchdog {
	return &Watchdog{
		limit:   limit,
		expired: expired,
	}
}

// Strobe the watchdog, restarting its budget. Mapped to the watchdog reset
// address of the board.
func (w *Watchdog) Strobe(_ uint8) {
	w.counter = 0
}

// Tick implements the scheduler.Runner interface.
func (w *Watchdog) Tick() error {
	w.counter++
	if w.counter >= w.limit {
		w.counter = 0
		logger.Log(logger.Allow, "watchdog", "expired, resetting machine")
		if w.expired != nil {
			w.expired()
		}
	}
	return nil
}

// Reset the watchdog to a freshly strobed state.
func (w *Watchdog) Reset() {
	w.counter = 0
}
