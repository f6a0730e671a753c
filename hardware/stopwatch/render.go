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
	"github.com/studio-anchor/gb-stopwatch/audio"
	"github.com/studio-anchor/gb-stopwatch/screen"
)

// DrawScene draws the fixed parts of the display: title, rules, the zeroed
// readout and the button labels. Called once after creation; everything
// else is drawn by RenderFrame() and by the state transitions.
func (sw *Stopwatch) DrawScene() {
	screen.Print(sw.scr, screen.TitleCol, screen.TitleRow, "GB STOPWATCH :")
	screen.Print(sw.scr, screen.TitleCol, screen.RuleRow, "------------------")

	screen.Print(sw.scr, screen.MinutesCol, screen.ReadoutRow, "00:00:00")

	screen.Print(sw.scr, screen.TitleCol, screen.LowerRuleRow, "------------------")
	screen.Print(sw.scr, screen.LabelCol, screen.ActionRow, "A:   Start")
	screen.Print(sw.scr, screen.LabelCol, screen.ResetRow, "B:   Reset")
}

// RenderFrame runs the per-frame render and feedback path. It does nothing
// while Idle, leaving the screen at whatever the last running render or
// reset produced.
//
// While Running, all three digit fields are redrawn every frame. No
// diffing against the previous frame: the counter can change underneath us
// at any point, so redundant writes are traded for robustness. The display
// update always precedes the audio check.
func (sw *Stopwatch) RenderFrame() {
	if sw.state != Running {
		return
	}

	drawField(sw.scr, screen.MinutesCol, sw.counter.MinutesReadout())
	drawField(sw.scr, screen.SecondsCol, sw.counter.SecondsReadout())
	drawField(sw.scr, screen.HundredthsCol, sw.counter.HundredthsReadout())

	// the hundredths field moves faster than the frame rate. a render that
	// straddles a minutes-width change can leave a stale third digit after
	// the readout, so the cell after the readout is cleared unconditionally
	// rather than detecting the condition
	sw.scr.DrawGlyph(screen.OverflowCol, screen.ReadoutRow, screen.Blank)

	if sw.playTickSfx {
		sw.mix.PlayCue(audio.CueTick)
		sw.playTickSfx = false
	}
}

func drawField(scr screen.Surface, col int, glyphs []screen.Glyph) {
	for i, gly := range glyphs {
		scr.DrawGlyph(col+i, screen.ReadoutRow, gly)
	}
}
