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

// Package audio defines the audio cues of the stopwatch and the protocol
// for playing them. A cue is fire-and-forget: the core asks for a cue to be
// played and never hears back.
//
// The default cue samples are synthesized from the pulse-channel register
// programs of the original hardware (see synth.go). A Bank can also be
// filled from sample files on disk (see bank.go).
package audio

// SampleFreq is the sample frequency of all cue PCM data. Samples are
// unsigned 8-bit mono.
const SampleFreq = 32768

// CueID identifies one of the stopwatch audio cues.
type CueID int

// List of valid CueID values. CueStartStop is played on both the start and
// the pause transition; the original hardware uses the same channel
// program for both.
const (
	CueStartStop CueID = iota
	CueTick
	CueReset
	NumCues
)

func (id CueID) String() string {
	switch id {
	case CueStartStop:
		return "start/stop"
	case CueTick:
		return "tick"
	case CueReset:
		return "reset"
	}
	panic("unknown cue id")
}

// Mixer is implemented by anything that can sound a cue. PlayCue must not
// block; it is called from the render path of the main loop.
type Mixer interface {
	PlayCue(id CueID)
}
