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

package performance_test

import (
	"io"
	"testing"

	"github.com/jackson2k2/mame/hardware"
	"github.com/jackson2k2/mame/performance"
	"github.com/jackson2k2/mame/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2.0, 60.0)
	test.Equate(t, int(fps), 60)
	test.Equate(t, int(accuracy), 100)
}

func TestCheck(t *testing.T) {
	mach := hardware.NewMachine("check")
	mach.TicksPerFrame = 100

	err := performance.Check(io.Discard, performance.ProfileNone, mach, "50ms", false)
	test.ExpectedSuccess(t, err)

	if mach.FrameNum() == 0 {
		t.Errorf("machine did not run any frames")
	}
}

func TestCheckBadDuration(t *testing.T) {
	mach := hardware.NewMachine("check")
	mach.TicksPerFrame = 100

	err := performance.Check(io.Discard, performance.ProfileNone, mach, "not a duration", false)
	test.ExpectedFailure(t, err)
}
