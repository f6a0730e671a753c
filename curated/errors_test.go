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

package curated_test

import (
	"errors"
	"testing"

	"github.com/studio-anchor/gb-stopwatch/curated"
	"github.com/studio-anchor/gb-stopwatch/test"
)

func TestIdentity(t *testing.T) {
	const pattern = "timer: not a valid divider (%d)"

	err := curated.Errorf(pattern, 100)
	test.ExpectEquality(t, err.Error(), "timer: not a valid divider (100)")

	// identity is the pattern, not the formatted message
	test.ExpectEquality(t, curated.Is(err, pattern), true)
	test.ExpectEquality(t, curated.Is(err, "timer: not a valid divider (100)"), false)
	test.ExpectEquality(t, curated.IsAny(err), true)

	plain := errors.New("timer: not a valid divider (100)")
	test.ExpectEquality(t, curated.IsAny(plain), false)
	test.ExpectEquality(t, curated.Is(plain, pattern), false)
}

func TestNil(t *testing.T) {
	test.ExpectEquality(t, curated.IsAny(nil), false)
	test.ExpectEquality(t, curated.Is(nil, "any pattern"), false)
	test.ExpectEquality(t, curated.Has(nil, "any pattern"), false)
}

func TestWrapping(t *testing.T) {
	const inner = "inner error (%s)"
	const outer = "outer error: %v"

	err := curated.Errorf(outer, curated.Errorf(inner, "detail"))
	test.ExpectEquality(t, err.Error(), "outer error: inner error (detail)")

	// Is() matches the outermost pattern only; Has() searches the chain
	test.ExpectEquality(t, curated.Is(err, outer), true)
	test.ExpectEquality(t, curated.Is(err, inner), false)
	test.ExpectEquality(t, curated.Has(err, outer), true)
	test.ExpectEquality(t, curated.Has(err, inner), true)
	test.ExpectEquality(t, curated.Has(err, "unrelated"), false)
}

func TestMessageDeduplication(t *testing.T) {
	// a function wrapping an error from a sibling in the same package
	// produces a repeated message part, which Error() folds
	err := curated.Errorf("handheld: %v", curated.Errorf("handheld: %v", errors.New("inner")))
	test.ExpectEquality(t, err.Error(), "handheld: inner")
}
