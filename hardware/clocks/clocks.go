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

// Package clocks defines the speed profiles of the handheld. A profile
// gathers the constant values that depend on the detected CPU speed: the
// main clock, the length of a video frame and the timer programming that
// yields the stopwatch tick.
//
// The timer counts up on a divided input clock and requests an interrupt
// when the 8-bit counter overflows, at which point the counter is reloaded
// with the modulo value. The interrupt rate is therefore:
//
//	clock / divider / (256 - modulo)
//
// The modulo values below are chosen so that the interrupt rate is as close
// to 100Hz as the divided clock allows. On the normal-speed profile that is
// 16384Hz / 164, or about 99.9Hz. The approximation is deliberate and the
// stopwatch counters do not try to correct for it: one interrupt is one
// hundredth of a second by definition.
//
// The binary-counter modulo is the alternative programming used by the
// packed-BCD counter policy. It produces an exact power-of-two rate of
// 128Hz, which the BCD policy maps to display hundredths through a lookup
// table.
package clocks

// Main clock rates in Hz.
const (
	NormalSpeed = 4194304
	DoubleSpeed = 8388608
)

// A frame is 70224 clock cycles on the normal-speed profile, giving the
// refresh rate below. The double-speed profile runs twice the cycles in the
// same wall-clock frame.
const FramesPerSecond = 59.7275

// Profile gathers the clock-dependent constants for one CPU speed.
type Profile struct {
	Label string

	// main clock in Hz
	Clock int

	// number of main clock cycles in one video frame
	CyclesPerFrame int

	// the input-clock divider used for the stopwatch timer
	TimerDivider int

	// modulo preload giving the ~100Hz decimal-counter tick
	ModuloDecimal uint8

	// modulo preload giving the exact 128Hz binary tick used by the
	// packed-BCD counter policy
	ModuloBCD uint8
}

// The two supported profiles. Normal is the profile of the original
// monochrome hardware; Double is the color hardware running with the CPU
// switched to double speed.
var (
	Normal = Profile{
		Label:          "DMG",
		Clock:          NormalSpeed,
		CyclesPerFrame: 70224,
		TimerDivider:   256,
		ModuloDecimal:  0x5c,
		ModuloBCD:      0x80,
	}

	Double = Profile{
		Label:          "CGB",
		Clock:          DoubleSpeed,
		CyclesPerFrame: 140448,
		TimerDivider:   1024,
		ModuloDecimal:  0xae,
		ModuloBCD:      0xc0,
	}
)

// TickRate returns the interrupt rate in Hz produced by the given modulo
// preload.
func (p Profile) TickRate(modulo uint8) float64 {
	return float64(p.Clock) / float64(p.TimerDivider) / float64(256-int(modulo))
}

// CyclesPerTick returns the number of main clock cycles between interrupts
// for the given modulo preload.
func (p Profile) CyclesPerTick(modulo uint8) int {
	return p.TimerDivider * (256 - int(modulo))
}
