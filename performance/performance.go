// This file is part of GBStopwatch.
//
// GBStopwatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GBStopwatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GBStopwatch.  If not, see <https://www.gnu.org/licenses/>.

// Package performance measures how fast the emulation runs when it is not
// held back by a display. The device is run headless and uncapped for a
// wall-clock duration and the achieved frame rate is reported against the
// hardware rate.
package performance

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/studio-anchor/gb-stopwatch/audio"
	"github.com/studio-anchor/gb-stopwatch/curated"
	"github.com/studio-anchor/gb-stopwatch/hardware"
	"github.com/studio-anchor/gb-stopwatch/hardware/clocks"
	"github.com/studio-anchor/gb-stopwatch/hardware/joypad"
	"github.com/studio-anchor/gb-stopwatch/screen"
)

// nullSurface swallows all drawing.
type nullSurface struct{}

func (nullSurface) DrawGlyph(_ int, _ int, _ screen.Glyph) {}

// nullInput holds the A button down on the very first sample so that the
// stopwatch starts running, and releases it thereafter.
type nullInput struct {
	sampled bool
}

func (inp *nullInput) ReadButtons() joypad.Button {
	if !inp.sampled {
		inp.sampled = true
		return joypad.A
	}
	return 0
}

// nullMixer swallows all cues.
type nullMixer struct{}

func (nullMixer) PlayCue(_ audio.CueID) {}

// freeRun is a frame trigger that never waits.
type freeRun struct{}

func (freeRun) WaitForFrame() error { return nil }

// Check runs the emulation headless for the given duration and reports the
// achieved frame rate. If profile is not empty a CPU profile is written to
// that file for the length of the run.
func Check(output io.Writer, profile string, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	hh, err := hardware.NewHandheld(clocks.Normal, nullSurface{}, &nullInput{}, nullMixer{}, hardware.DecimalPolicy)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if profile != "" {
		f, err := os.Create(profile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	frames := 0
	cutoff := time.Now().Add(dur)

	// checking the wall clock every frame would dominate the measurement
	const checkEvery = 1000

	err = hh.Run(freeRun{}, func() (bool, error) {
		frames++
		if frames%checkEvery == 0 && time.Now().After(cutoff) {
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fps := float64(frames) / dur.Seconds()
	fmt.Fprintf(output, "%d frames in %s: %.1f fps (%.1fx hardware)\n",
		frames, duration, fps, fps/clocks.FramesPerSecond)
	fmt.Fprintf(output, "stopwatch reads %s\n", hh.Stopwatch)

	return nil
}
