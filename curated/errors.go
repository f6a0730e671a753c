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

package curated

import (
	"fmt"
	"strings"
)

// curated errors keep the formatting pattern separate from the values. the
// pattern is the identity of the error and is what Is() and Has() match
// against. formatting is deferred until Error() is called.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error.
func Errorf(pattern string, values ...interface{}) error {
	return curated{pattern: pattern, values: values}
}

// Error returns the formatted error message with duplicate adjacent message
// parts removed.
//
// Implements the go language error interface.
func (er curated) Error() string {
	m := fmt.Errorf(er.pattern, er.values...).Error()

	// fold the leading message part if it repeats immediately. this happens
	// when a function wraps an error from a sibling in the same package
	p := strings.SplitN(m, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		p = p[1:]
	}

	return strings.Join(p, ": ")
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is checks if the error is a curated error created with the specified
// pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has checks if the pattern occurs anywhere in the chain of values wrapped
// by the error.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, v := range er.values {
		if e, ok := v.(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
