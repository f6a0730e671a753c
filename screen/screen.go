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

// Package screen defines the display protocol between the hardware core
// and whatever is presenting the display. The display is a grid of
// character cells; the core draws by placing glyph indices into cells and
// knows nothing about pixels.
//
// Glyph indices are tile numbers. The font tiles are laid out in ASCII
// order starting at the space character, so a glyph index is the ASCII code
// of the character minus 0x20 plus the tile base.
package screen

// Dimensions of the display in character cells.
const (
	Columns = 20
	Rows    = 18
)

// Glyph is a tile index in the character set.
type Glyph uint8

// TileBase is the tile index of the first character (space) in the loaded
// font.
const TileBase Glyph = 0

// Blank is the glyph used for empty cells and for zero suppression.
const Blank = TileBase

// GlyphForChar returns the glyph for a printable ASCII character.
// Characters outside the printable range map to Blank.
func GlyphForChar(c byte) Glyph {
	if c < 0x20 || c > 0x7f {
		return Blank
	}
	return TileBase + Glyph(c-0x20)
}

// GlyphForDigit returns the glyph for a decimal digit 0 to 9.
func GlyphForDigit(d uint8) Glyph {
	return GlyphForChar('0' + d)
}

// Char returns the ASCII character a glyph represents.
func (gly Glyph) Char() byte {
	return byte(gly-TileBase) + 0x20
}

// Surface is the interface to the display implemented by frontends. A
// single opaque call per character cell; calls outside the cell grid are
// ignored.
type Surface interface {
	DrawGlyph(col int, row int, gly Glyph)
}

// FrameTrigger blocks the main loop until the next display refresh
// boundary. It is the only pacing primitive in the system.
type FrameTrigger interface {
	WaitForFrame() error
}

// Print is a convenience for drawing a string of glyphs at a cell
// position.
func Print(s Surface, col int, row int, text string) {
	for i := 0; i < len(text); i++ {
		s.DrawGlyph(col+i, row, GlyphForChar(text[i]))
	}
}
