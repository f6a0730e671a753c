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

// Package curated is a helper package for the plain Go language error type.
//
// Errors are created with the Errorf() function, which takes a formatting
// pattern and placeholder values in the manner of fmt.Errorf(). The pattern
// is retained alongside the values and is the identity of the error: the
// Is() function reports whether an error was created from a specific
// pattern, and Has() reports whether the pattern occurs anywhere in the
// chain of wrapped values.
//
//	e := curated.Errorf("sdlplay: %v", err)
//	if curated.Is(e, "sdlplay: %v") {
//		...
//	}
//
// The IsAny() function distinguishes curated errors from errors created
// elsewhere. We treat uncurated errors as unexpected and, depending on
// context, fatal.
//
// Message normalisation: when curated errors wrap one another the rendered
// message can repeat adjacent parts. The Error() function folds those
// duplicates, so wrapping at every return site is harmless.
package curated
