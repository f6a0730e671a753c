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

package stopwatch_test

import (
	"testing"

	"github.com/studio-anchor/gb-stopwatch/hardware/stopwatch"
	"github.com/studio-anchor/gb-stopwatch/screen"
	"github.com/studio-anchor/gb-stopwatch/test"
)

func glyphString(glyphs []screen.Glyph) string {
	b := make([]byte, len(glyphs))
	for i, gly := range glyphs {
		b[i] = gly.Char()
	}
	return string(b)
}

// advance the counter n times, returning the number of whole-second
// rollovers reported.
func advance(cnt stopwatch.Counter, n int) int {
	rollovers := 0
	for i := 0; i < n; i++ {
		if cnt.Advance() {
			rollovers++
		}
	}
	return rollovers
}

func TestDecimalRollover(t *testing.T) {
	cnt := stopwatch.NewDecimal()

	// one hundred hundredths is one second and exactly one rollover
	test.ExpectEquality(t, advance(cnt, 100), 1)
	test.ExpectEquality(t, cnt.String(), "00:01:00")

	// the rollover fires on the 99 to 00 transition, not before
	cnt.Zero()
	test.ExpectEquality(t, advance(cnt, 99), 0)
	test.ExpectEquality(t, cnt.Advance(), true)
	test.ExpectEquality(t, cnt.String(), "00:01:00")
}

func TestDecimalMinutes(t *testing.T) {
	cnt := stopwatch.NewDecimal()

	// six thousand hundredths is one minute
	test.ExpectEquality(t, advance(cnt, 6000), 60)
	test.ExpectEquality(t, cnt.String(), "01:00:00")
}

func TestDecimalReadouts(t *testing.T) {
	cnt := stopwatch.NewDecimal()

	// single-digit minutes gets a padding zero
	advance(cnt, 6000*5)
	test.ExpectEquality(t, glyphString(cnt.MinutesReadout()), "05")

	// two-digit minutes fills the field with no padding
	advance(cnt, 6000*7)
	test.ExpectEquality(t, glyphString(cnt.MinutesReadout()), "12")

	// the readout widens past the colon once minutes exceeds two digits
	advance(cnt, 6000*111)
	test.ExpectEquality(t, glyphString(cnt.MinutesReadout()), "123")

	advance(cnt, 37)
	test.ExpectEquality(t, glyphString(cnt.SecondsReadout()), "00")
	test.ExpectEquality(t, glyphString(cnt.HundredthsReadout()), "37")
}

func TestDecimalDisplayBounds(t *testing.T) {
	cnt := stopwatch.NewDecimal()

	// whatever the number of advances, the displayed seconds stay below
	// 60 and the displayed hundredths below 100
	for i := 0; i < 20000; i++ {
		cnt.Advance()

		s := glyphString(cnt.SecondsReadout())
		test.ExpectEquality(t, s >= "00" && s <= "59", true)

		h := glyphString(cnt.HundredthsReadout())
		test.ExpectEquality(t, h >= "00" && h <= "99", true)
	}
}

func TestDecimalZero(t *testing.T) {
	cnt := stopwatch.NewDecimal()

	advance(cnt, 12345)
	cnt.Zero()
	test.ExpectEquality(t, cnt.String(), "00:00:00")
	test.ExpectEquality(t, glyphString(cnt.MinutesReadout()), "00")
}
