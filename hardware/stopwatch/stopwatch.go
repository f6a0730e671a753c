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

	"github.com/studio-anchor/gb-stopwatch/audio"
	"github.com/studio-anchor/gb-stopwatch/hardware/joypad"
	"github.com/studio-anchor/gb-stopwatch/hardware/timer"
	"github.com/studio-anchor/gb-stopwatch/screen"
)

// State records whether the stopwatch is counting.
type State int

// List of valid State values. A stopwatch is created Idle.
const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	}
	panic("unknown stopwatch state")
}

// Stopwatch is the timekeeping state machine. The zero state is not
// usable; use NewStopwatch().
type Stopwatch struct {
	tmr *timer.Timer
	scr screen.Surface
	mix audio.Mixer

	counter Counter

	state State

	// the tick flag. set by the interrupt handler once per whole-second
	// rollover, cleared by the render path after sounding the tick cue. a
	// rollover arriving before the previous flag is consumed is coalesced
	// and its cue lost
	playTickSfx bool
}

// NewStopwatch creates a stopwatch using the given counter policy and
// installs its interrupt handler on the timer. The timer is left disarmed;
// nothing counts until Start().
func NewStopwatch(tmr *timer.Timer, scr screen.Surface, mix audio.Mixer, counter Counter) (*Stopwatch, error) {
	sw := &Stopwatch{
		tmr:     tmr,
		scr:     scr,
		mix:     mix,
		counter: counter,
	}

	if err := tmr.InstallHandler(sw.interrupt); err != nil {
		return nil, err
	}

	return sw, nil
}

func (sw *Stopwatch) String() string {
	return fmt.Sprintf("%s %s", sw.state, sw.counter)
}

// State returns the current state of the stopwatch.
func (sw *Stopwatch) State() State {
	return sw.state
}

// interrupt is the timer overflow handler: the sole writer of the counter
// and the tick flag. No display or audio work happens here.
func (sw *Stopwatch) interrupt() {
	if sw.state == Running {
		if sw.counter.Advance() {
			sw.playTickSfx = true
		}
	}
}

// HandleInput turns the frame's button edges into stopwatch commands. A
// starts or pauses; B resets. Called once per frame after the joypad
// strobe.
func (sw *Stopwatch) HandleInput(joy *joypad.Joypad) {
	if joy.Pressed(joypad.A) {
		if sw.state == Running {
			sw.Pause()
		} else {
			sw.Start()
		}
	}
	if joy.Pressed(joypad.B) {
		sw.Reset()
	}
}

// Start the stopwatch. A no-op if already Running. Arming the timer and
// the state change are a single critical section so that an overflow
// cannot land between them.
func (sw *Stopwatch) Start() {
	if sw.state == Running {
		return
	}

	sw.tmr.Critical(func() {
		sw.tmr.Arm()
		sw.state = Running
	})

	// a tick flag left over from a previous run must not sound now
	sw.playTickSfx = false

	sw.mix.PlayCue(audio.CueStartStop)

	screen.Print(sw.scr, screen.ActionWordCol, screen.ActionRow, "Stop ")
	screen.Print(sw.scr, screen.LabelCol, screen.ResetRow, "          ")
}

// Pause the stopwatch. A no-op if already Idle. The timer is disarmed but
// its counter register is not cleared, so a later Start() resumes without
// phase drift.
func (sw *Stopwatch) Pause() {
	if sw.state == Idle {
		return
	}

	sw.tmr.Critical(func() {
		sw.tmr.Disarm()
		sw.state = Idle
	})

	sw.playTickSfx = false

	sw.mix.PlayCue(audio.CueStartStop)

	screen.Print(sw.scr, screen.ActionWordCol, screen.ActionRow, "Start")
	screen.Print(sw.scr, screen.LabelCol, screen.ResetRow, "B:   Reset")
}

// Reset zeroes the counter. Only legal while Idle; the command is ignored
// while Running.
func (sw *Stopwatch) Reset() {
	if sw.state == Running {
		return
	}

	sw.mix.PlayCue(audio.CueReset)

	sw.counter.Zero()
	sw.playTickSfx = false

	screen.Print(sw.scr, screen.MinutesCol, screen.ReadoutRow, "00:00:00")
}
