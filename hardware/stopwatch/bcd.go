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
	"fmt"

	"github.com/studio-anchor/gb-stopwatch/screen"
)

// DecimalIncrement adds one to a byte storing two decimal digits, one per
// nibble, keeping the result a valid two-digit decimal encoding. The
// second return value is true when the increment carried out of the high
// digit (99 wrapping to 00).
//
// This is the portable replacement for the decimal-adjust instruction the
// original hardware used after a binary add.
func DecimalIncrement(v uint8) (uint8, bool) {
	lo := (v & 0x0f) + 1
	hi := v >> 4

	if lo == 10 {
		lo = 0
		hi++
	}
	if hi == 10 {
		return lo, true
	}

	return hi<<4 | lo, false
}

// The BCD counter ticks at 128Hz rather than 100Hz: a power-of-two divisor
// of the input clock is exact where a centisecond is not. The sub-second
// index 0 to 127 is mapped to display hundredths through this table, so
// the displayed value approximates idx/128 of a second. The table is the
// whole of the conversion; no division happens at render time.
var milTable [128][2]uint8

func init() {
	for i := range milTable {
		v := i * 100 / 128
		milTable[i][0] = uint8(v / 10)
		milTable[i][1] = uint8(v % 10)
	}
}

// BCD is the packed binary-coded-decimal counter policy. Seconds and
// minutes each hold two decimal digits, one per nibble, and are advanced
// with decimal-corrected carry. Sub-seconds are a 7-bit tick index.
type BCD struct {
	// sub-second tick index, 0 to 127
	idx uint8

	// packed BCD: high nibble is the tens digit, low nibble the units
	seconds uint8
	minutes uint8

	mbuf [2]screen.Glyph
	sbuf [2]screen.Glyph
	hbuf [2]screen.Glyph
}

// NewBCD is the preferred method of initialisation for the BCD counter.
func NewBCD() *BCD {
	return &BCD{}
}

func (cnt *BCD) String() string {
	v := milTable[cnt.idx]
	return fmt.Sprintf("%02x:%02x:%d%d", cnt.minutes, cnt.seconds, v[0], v[1])
}

// Advance implements the Counter interface.
func (cnt *BCD) Advance() bool {
	cnt.idx = (cnt.idx + 1) & 0x7f
	if cnt.idx != 0 {
		return false
	}

	cnt.seconds, _ = DecimalIncrement(cnt.seconds)

	// seconds roll at 60, not at the natural 100 of the encoding
	if cnt.seconds == 0x60 {
		cnt.seconds = 0x00
		cnt.minutes, _ = DecimalIncrement(cnt.minutes)
	}

	return true
}

// Zero implements the Counter interface.
func (cnt *BCD) Zero() {
	cnt.idx = 0
	cnt.seconds = 0
	cnt.minutes = 0
}

// MinutesReadout implements the Counter interface. Nibble display: each
// nibble is a digit, no conversion required. The BCD policy never
// suppresses the leading zero.
func (cnt *BCD) MinutesReadout() []screen.Glyph {
	cnt.mbuf[0] = screen.GlyphForDigit(cnt.minutes >> 4)
	cnt.mbuf[1] = screen.GlyphForDigit(cnt.minutes & 0x0f)
	return cnt.mbuf[:]
}

// SecondsReadout implements the Counter interface.
func (cnt *BCD) SecondsReadout() []screen.Glyph {
	cnt.sbuf[0] = screen.GlyphForDigit(cnt.seconds >> 4)
	cnt.sbuf[1] = screen.GlyphForDigit(cnt.seconds & 0x0f)
	return cnt.sbuf[:]
}

// HundredthsReadout implements the Counter interface.
func (cnt *BCD) HundredthsReadout() []screen.Glyph {
	v := milTable[cnt.idx]
	cnt.hbuf[0] = screen.GlyphForDigit(v[0])
	cnt.hbuf[1] = screen.GlyphForDigit(v[1])
	return cnt.hbuf[:]
}
