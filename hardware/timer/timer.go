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

// Package timer implements the periodic hardware timer of the handheld.
//
// The timer is an 8-bit counter that increments on a divided input clock.
// When the counter overflows it is reloaded with the modulo value and the
// installed overflow handler is invoked. The handler is the interrupt
// service routine of the system: it runs to completion and is never
// re-entered.
//
// Disarming the timer stops the counter but does not clear it. Arming the
// timer again picks up counting from where it stopped, so a stopwatch that
// pauses and resumes does not accumulate phase drift.
package timer

import (
	"fmt"

	"github.com/studio-anchor/gb-stopwatch/curated"
)

// Divider indicates how often (in main clock cycles) the timer counter
// increments. The valid values correspond to the four selectable input
// clocks of the hardware.
type Divider int

// List of valid Divider values.
const (
	Div16   Divider = 16
	Div64   Divider = 64
	Div256  Divider = 256
	Div1024 Divider = 1024
)

func (div Divider) String() string {
	switch div {
	case Div16:
		return "DIV16"
	case Div64:
		return "DIV64"
	case Div256:
		return "DIV256"
	case Div1024:
		return "DIV1024"
	}
	panic("unknown timer divider")
}

// Handler is the overflow handler installed with InstallHandler(). Handlers
// must not block and must not touch the display or audio hardware; they run
// between video frames.
type Handler func()

// Timer implements the free-running interval timer.
type Timer struct {
	// the input clock divider most recently selected
	Divider Divider

	// Counter is the current value of the free-running counter. it survives
	// a Disarm()
	Counter uint8

	// Modulo is reloaded into Counter on overflow
	Modulo uint8

	// whether the counter is advancing
	armed bool

	// the single installed overflow handler. nil when no handler is
	// installed
	handler Handler

	// cyclesRemaining is the number of main clock cycles before the next
	// counter increment. reset to Divider on every increment. like the
	// counter itself, it survives a Disarm()
	cyclesRemaining int

	// interrupt mask depth. while non-zero, overflows are counted in
	// pendingOverflows instead of being dispatched
	maskDepth        int
	pendingOverflows int
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{
		Divider:         Div1024,
		cyclesRemaining: int(Div1024),
	}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("counter=%#02x modulo=%#02x remn=%d div=%s armed=%v",
		tmr.Counter,
		tmr.Modulo,
		tmr.cyclesRemaining,
		tmr.Divider,
		tmr.armed,
	)
}

// SetDivider selects the input clock for the counter.
func (tmr *Timer) SetDivider(div Divider) error {
	switch div {
	case Div16, Div64, Div256, Div1024:
	default:
		return curated.Errorf("timer: not a valid divider (%d)", int(div))
	}

	tmr.Divider = div
	tmr.cyclesRemaining = int(div)

	return nil
}

// Preload sets both the counter and the modulo value, so that the very
// first overflow period is the same length as every subsequent period.
func (tmr *Timer) Preload(modulo uint8) {
	tmr.Counter = modulo
	tmr.Modulo = modulo
	tmr.cyclesRemaining = int(tmr.Divider)
}

// InstallHandler registers fn as the overflow handler. Only one handler can
// be installed at a time. Installation happens inside a critical section.
func (tmr *Timer) InstallHandler(fn Handler) error {
	if tmr.handler != nil {
		return curated.Errorf("timer: handler already installed")
	}

	tmr.Critical(func() {
		tmr.handler = fn
	})

	return nil
}

// RemoveHandler removes the installed overflow handler. Removing a handler
// that was never installed is not an error.
func (tmr *Timer) RemoveHandler() {
	tmr.Critical(func() {
		tmr.handler = nil

		// a pending overflow must not fire into a removed handler
		tmr.pendingOverflows = 0
	})
}

// Arm starts the counter.
func (tmr *Timer) Arm() {
	tmr.armed = true
}

// Disarm stops the counter without clearing it. The counter and its
// sub-increment phase are preserved for the next Arm().
func (tmr *Timer) Disarm() {
	tmr.armed = false
}

// Armed returns whether the counter is advancing.
func (tmr *Timer) Armed() bool {
	return tmr.armed
}

// Critical runs fn with overflow dispatch masked. Overflows that occur
// while masked are dispatched when the outermost Critical returns. It is
// used around operations that must be atomic with respect to the overflow
// handler: handler install/remove and, by callers, arm/disarm paired with
// state changes.
func (tmr *Timer) Critical(fn func()) {
	tmr.maskDepth++
	fn()
	tmr.maskDepth--

	if tmr.maskDepth == 0 {
		for tmr.pendingOverflows > 0 {
			tmr.pendingOverflows--
			if tmr.handler != nil {
				tmr.handler()
			}
		}
	}
}

// Step the timer forward by the given number of main clock cycles,
// dispatching the overflow handler as many times as overflows occur in the
// period. A disarmed timer consumes the cycles without advancing.
func (tmr *Timer) Step(cycles int) {
	if !tmr.armed {
		return
	}

	tmr.cyclesRemaining -= cycles
	for tmr.cyclesRemaining <= 0 {
		tmr.cyclesRemaining += int(tmr.Divider)
		tmr.Counter++
		if tmr.Counter == 0 {
			tmr.Counter = tmr.Modulo
			tmr.overflow()
		}
	}
}

func (tmr *Timer) overflow() {
	if tmr.maskDepth > 0 {
		tmr.pendingOverflows++
		return
	}
	if tmr.handler != nil {
		tmr.handler()
	}
}
