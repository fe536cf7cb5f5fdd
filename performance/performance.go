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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jackson2k2/mame/curated"
	"github.com/jackson2k2/mame/hardware"
	"github.com/jackson2k2/mame/statsview"
)

// the refresh rate the accuracy figure is measured against. every board
// in this project runs at a nominal 60Hz
const nominalRefreshHz = 60.0

// Check the performance of the emulation by running the machine flat out
// for the specified duration.
//
// A cpu profile, memory profile or execution trace is created as required
// by the profile argument. The stats argument launches the statsview
// server, when it has been built in.
func Check(output io.Writer, profile Profile, mach *hardware.Machine, duration string, stats bool) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if stats {
		statsview.Launch(output)
	}

	startFrame := mach.FrameNum()

	runner := func() error {
		end := time.After(dur)
		for {
			select {
			case <-end:
				return nil
			default:
			}
			if err := mach.RunFrame(); err != nil {
				return err
			}
		}
	}

	if err := RunProfiler(profile, mach.Name, runner); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := mach.FrameNum() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds(), nominalRefreshHz)
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}

// CalcFPS takes the number of frames and duration (in seconds) and
// returns the frames-per-second and the accuracy of that value as a
// percentage of the nominal refresh rate.
func CalcFPS(numFrames int, duration float64, refreshHz float64) (fps float64, accuracy float64) {
	fps = float64(numFrames) / duration
	accuracy = 100 * float64(numFrames) / (duration * refreshHz)
	return fps, accuracy
}
