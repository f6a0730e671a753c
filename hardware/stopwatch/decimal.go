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

// Decimal is the plain-integer counter policy. One Advance() is one
// hundredth of a second; hundredths roll at 100 and seconds roll at 60.
//
// Minutes is 16 bits wide where the original hardware used a single byte.
// The original wrapped silently at 256 minutes; with the wider field the
// wrap is at 65536 minutes, more than 45 days of continuous running, which
// we document and otherwise ignore.
type Decimal struct {
	minutes    uint16
	seconds    uint8
	hundredths uint8

	// reusable readout buffers. minutes needs room for the five digits of
	// a full uint16
	mbuf [6]screen.Glyph
	sbuf [2]screen.Glyph
	hbuf [2]screen.Glyph
}

// NewDecimal is the preferred method of initialisation for the Decimal
// counter.
func NewDecimal() *Decimal {
	return &Decimal{}
}

func (cnt *Decimal) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", cnt.minutes, cnt.seconds, cnt.hundredths)
}

// Advance implements the Counter interface.
func (cnt *Decimal) Advance() bool {
	cnt.hundredths++
	if cnt.hundredths < 100 {
		return false
	}

	cnt.hundredths = 0
	cnt.seconds++
	if cnt.seconds >= 60 {
		cnt.seconds = 0
		cnt.minutes++
	}

	return true
}

// Zero implements the Counter interface.
func (cnt *Decimal) Zero() {
	cnt.minutes = 0
	cnt.seconds = 0
	cnt.hundredths = 0
}

// MinutesReadout implements the Counter interface. Minutes is the only
// field converted through general integer-to-decimal conversion and so the
// only field that needs the leading-zero computation: one pad glyph when
// the value is a single digit, none otherwise.
func (cnt *Decimal) MinutesReadout() []screen.Glyph {
	numZeros := 0
	if cnt.minutes <= 9 {
		numZeros = 1
	}

	for i := 0; i < numZeros; i++ {
		cnt.mbuf[i] = screen.GlyphForDigit(0)
	}

	// most significant digit first
	n := numZeros + digitCount(cnt.minutes)
	v := cnt.minutes
	for i := n - 1; i >= numZeros; i-- {
		cnt.mbuf[i] = screen.GlyphForDigit(uint8(v % 10))
		v /= 10
	}

	return cnt.mbuf[:n]
}

// SecondsReadout implements the Counter interface.
func (cnt *Decimal) SecondsReadout() []screen.Glyph {
	cnt.sbuf[0] = screen.GlyphForDigit(cnt.seconds / 10)
	cnt.sbuf[1] = screen.GlyphForDigit(cnt.seconds % 10)
	return cnt.sbuf[:]
}

// HundredthsReadout implements the Counter interface.
func (cnt *Decimal) HundredthsReadout() []screen.Glyph {
	cnt.hbuf[0] = screen.GlyphForDigit(cnt.hundredths / 10)
	cnt.hbuf[1] = screen.GlyphForDigit(cnt.hundredths % 10)
	return cnt.hbuf[:]
}

func digitCount(v uint16) int {
	n := 1
	for v > 9 {
		v /= 10
		n++
	}
	return n
}
