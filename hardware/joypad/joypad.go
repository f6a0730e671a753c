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

// Package joypad samples the buttons of the handheld once per video frame
// and derives press edges by comparison with the previous frame's sample.
//
// A button held across frames registers as pressed exactly once. This
// comparison is also the only debouncing in the system: a bounce shorter
// than a frame is never seen and a bounce spanning a frame boundary
// retriggers. The original hardware accepts the same limitation.
package joypad

import "strings"

// Button is a bitmask of the eight buttons.
type Button uint8

// List of valid Button values.
const (
	A Button = 1 << iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
)

func (b Button) String() string {
	names := []string{"A", "B", "SELECT", "START", "RIGHT", "LEFT", "UP", "DOWN"}
	s := []string{}
	for i, n := range names {
		if b&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "+")
}

// Input is the interface to the physical input device. ReadButtons returns
// the buttons currently held down. It is polled once per frame by
// Strobe().
type Input interface {
	ReadButtons() Button
}

// Joypad holds the current and previous frame's button samples.
type Joypad struct {
	input Input

	current  Button
	previous Button
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad(input Input) *Joypad {
	return &Joypad{input: input}
}

// Strobe samples the input device. Called once per frame, before the frame's
// input handling.
func (joy *Joypad) Strobe() {
	joy.previous = joy.current
	joy.current = joy.input.ReadButtons()
}

// Pressed returns true if the button went down between the previous strobe
// and the most recent one.
func (joy *Joypad) Pressed(b Button) bool {
	return joy.current&b != 0 && joy.previous&b == 0
}

// Held returns true if the button was down at the most recent strobe.
func (joy *Joypad) Held(b Button) bool {
	return joy.current&b != 0
}
