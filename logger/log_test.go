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

package logger_test

import (
	"testing"

	"github.com/jackson2k2/mame/logger"
	"github.com/jackson2k2/mame/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.Writer{}

	log.Write(w)
	w.Compare(t, "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	w.Compare(t, "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	w.Compare(t, "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	w.Compare(t, "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	w.Compare(t, "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	w.Compare(t, "")
}

func TestRepeatFolding(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.Writer{}

	log.Log(logger.Allow, "latch", "timeout")
	log.Log(logger.Allow, "latch", "timeout")
	log.Log(logger.Allow, "latch", "timeout")
	log.Write(w)
	w.Compare(t, "latch: timeout (repeat x3)\n")
}

type prohibit struct{}

func (_ prohibit) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.Writer{}

	log.Log(prohibit{}, "test", "should not appear")
	log.Write(w)
	w.Compare(t, "")
}
