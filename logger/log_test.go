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

package logger_test

import (
	"testing"

	"github.com/studio-anchor/gb-stopwatch/logger"
	"github.com/studio-anchor/gb-stopwatch/test"
)

func TestCentralLogger(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare(""), true)

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test\n"), true)

	tw.Clear()

	logger.Logf("test2", "this is %s test", "another")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for too many entries in a Tail() is okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectEquality(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for fewer entries
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.Compare("test2: this is another test\n"), true)

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectEquality(t, tw.Compare(""), true)
}

func TestWriteRecent(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log("tag", "one")
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.Compare("tag: one\n"), true)

	// a second call only sees entries added since the first
	tw.Clear()
	logger.Log("tag", "two")
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.Compare("tag: two\n"), true)

	tw.Clear()
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.Compare(""), true)
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	// the same entry logged repeatedly is folded into one line with a
	// repeat count
	logger.Log("tag", "same detail")
	logger.Log("tag", "same detail")
	logger.Log("tag", "same detail")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("tag: same detail (repeat x3)\n"), true)

	// a different entry breaks the fold
	tw.Clear()
	logger.Log("tag", "new detail")
	logger.Log("tag", "same detail")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("tag: same detail (repeat x3)\ntag: new detail\ntag: same detail\n"), true)
}

func TestEcho(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Log("echo", "as it happens")
	test.ExpectEquality(t, tw.Compare("echo: as it happens\n"), true)
}
