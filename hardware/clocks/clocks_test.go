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

package clocks_test

import (
	"testing"

	"github.com/studio-anchor/gb-stopwatch/hardware/clocks"
	"github.com/studio-anchor/gb-stopwatch/test"
)

func TestDecimalTickRates(t *testing.T) {
	// the decimal tick is as close to 100Hz as the divided clock allows.
	// the two profiles are programmed differently but land on the same
	// rate
	for _, p := range []clocks.Profile{clocks.Normal, clocks.Double} {
		rate := p.TickRate(p.ModuloDecimal)
		test.ExpectEquality(t, rate > 99.8 && rate < 100.0, true)
	}

	// identical rates: double speed through double divider
	test.ExpectEquality(t,
		clocks.Normal.TickRate(clocks.Normal.ModuloDecimal),
		clocks.Double.TickRate(clocks.Double.ModuloDecimal))
}

func TestBCDTickRates(t *testing.T) {
	// the binary tick is exactly 128Hz on both profiles
	test.ExpectEquality(t, clocks.Normal.TickRate(clocks.Normal.ModuloBCD), 128.0)
	test.ExpectEquality(t, clocks.Double.TickRate(clocks.Double.ModuloBCD), 128.0)
}

func TestCyclesPerTick(t *testing.T) {
	// 164 increments of a 256-cycle divider on the normal profile
	test.ExpectEquality(t, clocks.Normal.CyclesPerTick(clocks.Normal.ModuloDecimal), 164*256)

	// 82 increments of a 1024-cycle divider on the double profile: the
	// same wall-clock period at twice the clock
	test.ExpectEquality(t, clocks.Double.CyclesPerTick(clocks.Double.ModuloDecimal), 82*1024)
}

func TestProfileFrames(t *testing.T) {
	// a frame is the same wall-clock length on both profiles
	test.ExpectEquality(t, clocks.Double.CyclesPerFrame, 2*clocks.Normal.CyclesPerFrame)
	test.ExpectEquality(t, clocks.Double.Clock, 2*clocks.Normal.Clock)
}
