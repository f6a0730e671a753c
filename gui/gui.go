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

// Package gui defines the contract between the hardware core and the
// frontends in the sub-packages. A frontend is the whole of the outside
// world: the display surface, the input device, the audio mixer and the
// frame-refresh signal.
package gui

import (
	"github.com/studio-anchor/gb-stopwatch/audio"
	"github.com/studio-anchor/gb-stopwatch/curated"
	"github.com/studio-anchor/gb-stopwatch/hardware/joypad"
	"github.com/studio-anchor/gb-stopwatch/screen"
)

// sentinel error pattern returned from WaitForFrame() when the user has
// asked the frontend to quit
const UserQuit = "user quit"

// ErrUserQuit returns the error a frontend's WaitForFrame() should return
// on a quit request.
func ErrUserQuit() error {
	return curated.Errorf(UserQuit)
}

// IsUserQuit checks an error from the run loop for the quit sentinel.
func IsUserQuit(err error) bool {
	return curated.Has(err, UserQuit)
}

// Frontend is implemented by the packages below gui. WaitForFrame() doubles
// as the frontend's event pump: input and window events are serviced there,
// once per frame.
type Frontend interface {
	screen.Surface
	screen.FrameTrigger
	joypad.Input
	audio.Mixer

	// release all resources held by the frontend
	Destroy()
}
