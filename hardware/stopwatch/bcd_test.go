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
	"github.com/studio-anchor/gb-stopwatch/test"
)

func TestDecimalIncrement(t *testing.T) {
	tests := []struct {
		from  uint8
		to    uint8
		carry bool
	}{
		{0x00, 0x01, false},
		{0x09, 0x10, false},
		{0x19, 0x20, false},
		{0x37, 0x38, false},
		{0x59, 0x60, false},
		{0x98, 0x99, false},
		{0x99, 0x00, true},
	}

	for _, tst := range tests {
		v, carry := stopwatch.DecimalIncrement(tst.from)
		test.ExpectEquality(t, v, tst.to)
		test.ExpectEquality(t, carry, tst.carry)
	}
}

func TestBCDRollover(t *testing.T) {
	cnt := stopwatch.NewBCD()

	// the BCD policy ticks at 128Hz so one second is 128 advances
	test.ExpectEquality(t, advance(cnt, 128), 1)
	test.ExpectEquality(t, cnt.String(), "00:01:00")

	test.ExpectEquality(t, advance(cnt, 127), 0)
	test.ExpectEquality(t, cnt.Advance(), true)
	test.ExpectEquality(t, cnt.String(), "00:02:00")
}

func TestBCDSecondsWrap(t *testing.T) {
	cnt := stopwatch.NewBCD()

	// seconds roll at the decimal 60, not at the natural 100 of the
	// nibble encoding
	advance(cnt, 128*60)
	test.ExpectEquality(t, glyphString(cnt.MinutesReadout()), "01")
	test.ExpectEquality(t, glyphString(cnt.SecondsReadout()), "00")

	// and the nibble carry inside the seconds field: 9 to 10
	advance(cnt, 128*10)
	test.ExpectEquality(t, glyphString(cnt.SecondsReadout()), "10")
}

func TestBCDHundredthsApproximation(t *testing.T) {
	cnt := stopwatch.NewBCD()

	// the 7-bit tick index maps onto the hundredths field through the
	// idx*100/128 table
	test.ExpectEquality(t, glyphString(cnt.HundredthsReadout()), "00")

	advance(cnt, 1)
	test.ExpectEquality(t, glyphString(cnt.HundredthsReadout()), "00")

	advance(cnt, 63)
	test.ExpectEquality(t, glyphString(cnt.HundredthsReadout()), "50")

	advance(cnt, 63)
	test.ExpectEquality(t, glyphString(cnt.HundredthsReadout()), "99")

	// the index never reaches a displayed 100; it wraps to a fresh second
	test.ExpectEquality(t, cnt.Advance(), true)
	test.ExpectEquality(t, glyphString(cnt.HundredthsReadout()), "00")
}

func TestBCDDisplayBounds(t *testing.T) {
	cnt := stopwatch.NewBCD()

	for i := 0; i < 128*100; i++ {
		cnt.Advance()

		s := glyphString(cnt.SecondsReadout())
		test.ExpectEquality(t, s >= "00" && s <= "59", true)

		h := glyphString(cnt.HundredthsReadout())
		test.ExpectEquality(t, h >= "00" && h <= "99", true)
	}
}

func TestBCDZero(t *testing.T) {
	cnt := stopwatch.NewBCD()

	advance(cnt, 128*61+17)
	cnt.Zero()
	test.ExpectEquality(t, cnt.String(), "00:00:00")
}
