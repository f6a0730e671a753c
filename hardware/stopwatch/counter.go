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

package stopwatch

import (
	"github.com/studio-anchor/gb-stopwatch/screen"
)

// Counter is the elapsed-time value of the stopwatch together with its
// update rule and its conversion to display glyphs. Advance() is called
// from the timer interrupt handler only; the readout functions are called
// from the render path only.
type Counter interface {
	// Advance the counter by one timer tick. Returns true if a whole
	// second rolled over during the advance.
	Advance() bool

	// Zero the counter.
	Zero()

	// The three display fields of the readout. The returned slices are
	// valid until the next call on the same counter; callers must not hold
	// on to them. Seconds and hundredths are always exactly two glyphs.
	// Minutes is at least two glyphs but can grow when the value exceeds
	// two digits.
	MinutesReadout() []screen.Glyph
	SecondsReadout() []screen.Glyph
	HundredthsReadout() []screen.Glyph

	String() string
}
