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

package timer_test

import (
	"testing"

	"github.com/studio-anchor/gb-stopwatch/hardware/timer"
	"github.com/studio-anchor/gb-stopwatch/test"
)

// with a divider of 256 and a modulo of 0x5c, the counter must be
// incremented 164 times before it overflows. so one overflow every
// 164*256 cycles.
const cyclesPerOverflow = 164 * 256

func TestOverflowCadence(t *testing.T) {
	tmr := timer.NewTimer()
	test.DemandSuccess(t, tmr.SetDivider(timer.Div256))
	tmr.Preload(0x5c)

	overflows := 0
	test.DemandSuccess(t, tmr.InstallHandler(func() { overflows++ }))
	tmr.Arm()

	tmr.Step(cyclesPerOverflow)
	test.ExpectEquality(t, overflows, 1)

	// ten more overflows. stepping in odd sized batches must not affect
	// the cadence
	for i := 0; i < cyclesPerOverflow*10; i += 13 {
		tmr.Step(13)
	}
	test.ExpectEquality(t, overflows, 11)
}

func TestDividerSelection(t *testing.T) {
	tmr := timer.NewTimer()

	test.ExpectSuccess(t, tmr.SetDivider(timer.Div16))
	test.ExpectSuccess(t, tmr.SetDivider(timer.Div64))
	test.ExpectSuccess(t, tmr.SetDivider(timer.Div256))
	test.ExpectSuccess(t, tmr.SetDivider(timer.Div1024))
	test.ExpectFailure(t, tmr.SetDivider(timer.Divider(100)))
}

func TestDisarmPreservesPhase(t *testing.T) {
	tmr := timer.NewTimer()
	test.DemandSuccess(t, tmr.SetDivider(timer.Div256))
	tmr.Preload(0x5c)

	overflows := 0
	test.DemandSuccess(t, tmr.InstallHandler(func() { overflows++ }))
	tmr.Arm()

	// stop just short of the overflow
	tmr.Step(cyclesPerOverflow - 256)
	test.ExpectEquality(t, overflows, 0)

	// a disarmed timer does not count, however long we step it for
	tmr.Disarm()
	test.ExpectEquality(t, tmr.Armed(), false)
	tmr.Step(cyclesPerOverflow * 100)
	test.ExpectEquality(t, overflows, 0)

	// rearming continues from where the counter left off. the overflow
	// arrives after the one remaining increment, not after a full period
	tmr.Arm()
	tmr.Step(256)
	test.ExpectEquality(t, overflows, 1)
}

func TestHandlerInstall(t *testing.T) {
	tmr := timer.NewTimer()

	test.ExpectSuccess(t, tmr.InstallHandler(func() {}))

	// the handler slot is already occupied
	test.ExpectFailure(t, tmr.InstallHandler(func() {}))

	tmr.RemoveHandler()
	test.ExpectSuccess(t, tmr.InstallHandler(func() {}))
}

func TestCriticalMasksOverflow(t *testing.T) {
	tmr := timer.NewTimer()
	test.DemandSuccess(t, tmr.SetDivider(timer.Div256))
	tmr.Preload(0x5c)

	overflows := 0
	test.DemandSuccess(t, tmr.InstallHandler(func() { overflows++ }))
	tmr.Arm()

	// overflows raised inside a critical section are pended ...
	tmr.Critical(func() {
		tmr.Step(cyclesPerOverflow * 2)
		test.ExpectEquality(t, overflows, 0)

		// ... even when critical sections nest
		tmr.Critical(func() {
			tmr.Step(cyclesPerOverflow)
			test.ExpectEquality(t, overflows, 0)
		})
		test.ExpectEquality(t, overflows, 0)
	})

	// dispatched on return from the outermost section
	test.ExpectEquality(t, overflows, 3)
}
