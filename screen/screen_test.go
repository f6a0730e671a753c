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

package screen_test

import (
	"testing"

	"github.com/studio-anchor/gb-stopwatch/screen"
	"github.com/studio-anchor/gb-stopwatch/test"
)

func TestGlyphMapping(t *testing.T) {
	// the font tiles are in ASCII order from space
	test.ExpectEquality(t, screen.GlyphForChar(' '), screen.TileBase)
	test.ExpectEquality(t, screen.GlyphForChar('0'), screen.TileBase+0x10)
	test.ExpectEquality(t, screen.GlyphForChar('A'), screen.TileBase+0x21)

	test.ExpectEquality(t, screen.GlyphForDigit(0), screen.GlyphForChar('0'))
	test.ExpectEquality(t, screen.GlyphForDigit(9), screen.GlyphForChar('9'))

	// unprintable characters map to the blank glyph
	test.ExpectEquality(t, screen.GlyphForChar(0x00), screen.Blank)
	test.ExpectEquality(t, screen.GlyphForChar(0x1f), screen.Blank)
	test.ExpectEquality(t, screen.GlyphForChar(0xff), screen.Blank)
}

func TestGlyphRoundTrip(t *testing.T) {
	for c := byte(0x20); c < 0x7f; c++ {
		test.ExpectEquality(t, screen.GlyphForChar(c).Char(), c)
	}
}

type recordingSurface struct {
	chars []byte
	cols  []int
	row   int
}

func (scr *recordingSurface) DrawGlyph(col int, row int, gly screen.Glyph) {
	scr.chars = append(scr.chars, gly.Char())
	scr.cols = append(scr.cols, col)
	scr.row = row
}

func TestPrint(t *testing.T) {
	scr := &recordingSurface{}
	screen.Print(scr, 6, 6, "00:00:00")

	test.ExpectEquality(t, string(scr.chars), "00:00:00")
	test.ExpectEquality(t, scr.row, 6)

	// one cell per character, left to right from the anchor column
	test.DemandEquality(t, len(scr.cols), 8)
	for i, col := range scr.cols {
		test.ExpectEquality(t, col, 6+i)
	}
}
