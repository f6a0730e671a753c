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

// Package stopwatch implements the timekeeping core of the handheld: the
// elapsed-time counter advanced from the timer interrupt, the idle/running
// state machine and the per-frame render path.
//
// The timer interrupt handler is the sole writer of the counter and of the
// tick flag. The render path reads both without synchronisation. This is
// safe in the original sense: the interrupt runs to completion between
// frame steps, so the worst a frame can see is a value that is one tick
// stale, which self-corrects on the next frame.
//
// Two counter policies are available. The Decimal counter keeps plain
// integer fields and rolls them at 100, 60 and so on. The BCD counter keeps
// seconds and minutes as packed binary-coded decimal, incremented with
// decimal-corrected carry, and measures sub-seconds with a power-of-two
// tick mapped to display hundredths through a lookup table. The Decimal
// policy is the default; the BCD policy reproduces the alternative
// encoding of the original hardware, which exploited a decimal-adjust CPU
// instruction.
package stopwatch
