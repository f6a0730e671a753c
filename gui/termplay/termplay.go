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

// Package termplay is the terminal frontend. The glyph grid is drawn with
// ANSI cursor addressing and input is read from the terminal in
// non-canonical mode, a byte at a time, without blocking the frame loop.
//
// Key map: A or space is the A button, B or X is the B button, Q quits.
// A terminal key only reports presses, not releases, so a key byte counts
// as a press lasting one frame. Terminal key repeat can therefore deliver
// a held key as a train of presses; for start/pause/reset buttons this is
// harmless in practice but it is a real difference from the SDL frontend.
//
// Audio cues map onto the terminal bell.
package termplay

import (
	"os"
	"strings"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/studio-anchor/gb-stopwatch/audio"
	"github.com/studio-anchor/gb-stopwatch/curated"
	"github.com/studio-anchor/gb-stopwatch/gui"
	"github.com/studio-anchor/gb-stopwatch/hardware/joypad"
	"github.com/studio-anchor/gb-stopwatch/performance/limiter"
	"github.com/studio-anchor/gb-stopwatch/screen"
)

// the terminal is paced below the hardware frame rate. nothing on a
// terminal moves fast enough to justify 60 redraws a second
const framesPerSecond = 30

// TermPlay implements the gui.Frontend interface.
type TermPlay struct {
	input  *os.File
	output *os.File

	// terminal attributes on entry, restored by Destroy()
	canAttr unix.Termios

	// the glyph grid as ASCII characters. drawn in full every frame
	cells [screen.Rows][screen.Columns]byte

	lmtr *limiter.FpsLimiter

	// buttons pressed by bytes read during the most recent WaitForFrame()
	buttons joypad.Button

	quit bool
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type.
func NewTermPlay() (*TermPlay, error) {
	trm := &TermPlay{
		input:  os.Stdin,
		output: os.Stdout,
	}

	for row := range trm.cells {
		for col := range trm.cells[row] {
			trm.cells[row][col] = ' '
		}
	}

	if err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr); err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	// non-canonical mode with VMIN and VTIME both zero: reads return
	// whatever is waiting, including nothing
	rawAttr := trm.canAttr
	termios.Cfmakecbreak(&rawAttr)
	rawAttr.Cc[unix.VMIN] = 0
	rawAttr.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &rawAttr); err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	var err error
	trm.lmtr, err = limiter.NewFpsLimiter(framesPerSecond)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	// clear screen and hide the cursor
	trm.output.WriteString("\x1b[2J\x1b[?25l")

	return trm, nil
}

// Destroy implements the gui.Frontend interface: the terminal is returned
// to the state it was found in.
func (trm *TermPlay) Destroy() {
	trm.lmtr.End()
	trm.output.WriteString("\x1b[?25h\x1b[2J\x1b[H")
	_ = termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.canAttr)
}

// DrawGlyph implements the screen.Surface interface.
func (trm *TermPlay) DrawGlyph(col int, row int, gly screen.Glyph) {
	if col < 0 || col >= screen.Columns || row < 0 || row >= screen.Rows {
		return
	}
	trm.cells[row][col] = gly.Char()
}

// ReadButtons implements the joypad.Input interface.
func (trm *TermPlay) ReadButtons() joypad.Button {
	return trm.buttons
}

// PlayCue implements the audio.Mixer interface.
func (trm *TermPlay) PlayCue(_ audio.CueID) {
	trm.output.WriteString("\a")
}

// WaitForFrame implements the screen.FrameTrigger interface.
func (trm *TermPlay) WaitForFrame() error {
	trm.serviceInput()

	if trm.quit {
		return gui.ErrUserQuit()
	}

	trm.redraw()
	trm.lmtr.Wait()

	return nil
}

// serviceInput drains whatever bytes are waiting on the terminal. each
// mapped byte is a one-frame button press.
func (trm *TermPlay) serviceInput() {
	trm.buttons = 0

	buf := make([]byte, 8)
	n, _ := trm.input.Read(buf)

	for _, c := range buf[:n] {
		switch c {
		case 'a', 'A', ' ':
			trm.buttons |= joypad.A
		case 'b', 'B', 'x', 'X':
			trm.buttons |= joypad.B
		case 'q', 'Q', 0x03:
			trm.quit = true
		}
	}
}

func (trm *TermPlay) redraw() {
	s := strings.Builder{}
	s.WriteString("\x1b[H")
	for row := range trm.cells {
		s.Write(trm.cells[row][:])
		s.WriteString("\r\n")
	}
	trm.output.WriteString(s.String())
}
