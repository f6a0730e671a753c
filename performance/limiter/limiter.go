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

// Package limiter paces a loop to a fixed number of iterations per second.
// It stands in for the display-refresh signal on frontends that have no
// natural vertical sync of their own.
package limiter

import (
	"time"

	"github.com/studio-anchor/gb-stopwatch/curated"
)

// FpsLimiter paces calls to Wait() to a requested rate.
type FpsLimiter struct {
	// the requested number of frames per second
	requested float32

	tck *time.Ticker

	// actual rate measurement
	actual        float32
	actualCt      int
	actualRefTime time.Time
}

// NewFpsLimiter is the preferred method of initialisation for the
// FpsLimiter type.
func NewFpsLimiter(fps float32) (*FpsLimiter, error) {
	if fps <= 0 {
		return nil, curated.Errorf("limiter: not a valid frame rate (%.2f)", fps)
	}

	lmtr := &FpsLimiter{
		requested:     fps,
		tck:           time.NewTicker(time.Duration(float64(time.Second) / float64(fps))),
		actualRefTime: time.Now(),
	}

	return lmtr, nil
}

// Wait blocks until the next frame boundary.
func (lmtr *FpsLimiter) Wait() {
	<-lmtr.tck.C
	lmtr.measureActual()
}

// Actual returns the most recently measured real rate. The measurement is
// updated roughly once a second.
func (lmtr *FpsLimiter) Actual() float32 {
	return lmtr.actual
}

// End releases the resources held by the limiter.
func (lmtr *FpsLimiter) End() {
	lmtr.tck.Stop()
}

func (lmtr *FpsLimiter) measureActual() {
	lmtr.actualCt++
	if lmtr.actualCt >= int(lmtr.requested) {
		t := time.Now()
		lmtr.actual = float32(lmtr.actualCt) / float32(t.Sub(lmtr.actualRefTime).Seconds())
		lmtr.actualRefTime = t
		lmtr.actualCt = 0
	}
}
