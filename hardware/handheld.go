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

package hardware

import (
	"github.com/studio-anchor/gb-stopwatch/audio"
	"github.com/studio-anchor/gb-stopwatch/curated"
	"github.com/studio-anchor/gb-stopwatch/hardware/clocks"
	"github.com/studio-anchor/gb-stopwatch/hardware/joypad"
	"github.com/studio-anchor/gb-stopwatch/hardware/stopwatch"
	"github.com/studio-anchor/gb-stopwatch/hardware/timer"
	"github.com/studio-anchor/gb-stopwatch/logger"
	"github.com/studio-anchor/gb-stopwatch/screen"
)

// CounterPolicy selects the elapsed-time representation at construction.
type CounterPolicy int

// List of valid CounterPolicy values.
const (
	DecimalPolicy CounterPolicy = iota
	BCDPolicy
)

// Handheld is the main container for the emulated components of the
// device.
type Handheld struct {
	Clock clocks.Profile

	Timer     *timer.Timer
	Joypad    *joypad.Joypad
	Stopwatch *stopwatch.Stopwatch
}

// NewHandheld creates the device and everything associated with the
// hardware. The clock profile, display surface, input device, audio mixer
// and counter policy are all injected; nothing about them is hard-coded in
// the core.
func NewHandheld(profile clocks.Profile, scr screen.Surface, input joypad.Input, mix audio.Mixer, policy CounterPolicy) (*Handheld, error) {
	hh := &Handheld{
		Clock: profile,
		Timer: timer.NewTimer(),
	}

	// the timer programming depends on the counter policy: the decimal
	// counter wants the near-centisecond rate, the BCD counter the exact
	// power-of-two rate
	var counter stopwatch.Counter
	var modulo uint8

	switch policy {
	case DecimalPolicy:
		counter = stopwatch.NewDecimal()
		modulo = profile.ModuloDecimal
	case BCDPolicy:
		counter = stopwatch.NewBCD()
		modulo = profile.ModuloBCD
	default:
		return nil, curated.Errorf("handheld: not a valid counter policy (%d)", int(policy))
	}

	if err := hh.Timer.SetDivider(timer.Divider(profile.TimerDivider)); err != nil {
		return nil, curated.Errorf("handheld: %v", err)
	}

	// setting counter and modulo together, like the original setup code,
	// means the first tick period is full length
	hh.Timer.Critical(func() {
		hh.Timer.Preload(modulo)
	})

	hh.Joypad = joypad.NewJoypad(input)

	var err error
	hh.Stopwatch, err = stopwatch.NewStopwatch(hh.Timer, scr, mix, counter)
	if err != nil {
		return nil, curated.Errorf("handheld: %v", err)
	}

	hh.Stopwatch.DrawScene()

	logger.Logf("handheld", "%s profile, tick rate %.2fHz", profile.Label, profile.TickRate(modulo))

	return hh, nil
}

// Frame advances the device by one video frame: sample input, drive the
// state machine, step the timer through the frame's cycles and run the
// render path. The timer interrupts fire during the Step, so the render
// reads a counter that has already moved this frame, just as it does on
// hardware.
func (hh *Handheld) Frame() {
	hh.Joypad.Strobe()
	hh.Stopwatch.HandleInput(hh.Joypad)

	hh.Timer.Step(hh.Clock.CyclesPerFrame)

	hh.Stopwatch.RenderFrame()
}

// Run the device against a frame trigger until the trigger or the continue
// check says otherwise. A nil continueCheck runs forever.
func (hh *Handheld) Run(ft screen.FrameTrigger, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := ft.WaitForFrame(); err != nil {
			return err
		}

		hh.Frame()

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
