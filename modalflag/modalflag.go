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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient way of handling program modes, where
// each mode has its own set of flags.
//
// Unlike flag.FlagSet, arguments are given to the Modes struct with
// NewArgs() and Parse() is then called without arguments. After a
// successful parse, if sub-modes were registered with AddSubModes(), the
// selected mode is available from the Mode() function and parsing can
// continue for the flags of that mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "term", "performance")
//	r, err := md.Parse()
//	...
//	switch md.Mode() {
//	...
//	}
//
// Sub-mode comparison is case insensitive. The first registered sub-mode is
// the default, selected when the first non-flag argument matches no mode.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Modes provides mode-aware handling of command line arguments. The Output
// field should be set before calling Parse() or help messages will not be
// seen.
type Modes struct {
	// where to print help messages. defaults to io.Discard
	Output io.Writer

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list given to NewArgs(). argsIdx advances past each
	// recognised sub-mode selector
	args    []string
	argsIdx int

	// sub-modes valid for the next call to Parse(). always stored upper-case
	subModes []string

	// the series of sub-modes encountered over successive calls to Parse().
	// never reset
	path []string

	// help text printed in addition to the flag summary
	additionalHelp string
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were registered
	// then the Mode() function says which was selected
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// NewArgs initialises the Modes struct with a list of arguments, os.Args[1:]
// for example.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments belong to a new mode. Flags and
// sub-modes registered before the previous Parse() are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes registers the valid modes for the next call to Parse(). The
// first sub-mode in the list is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp attaches explanatory text to the help output of the next
// Parse().
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all modes encountered during parsing, separated by '/'.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// String implements the Stringer interface.
func (md *Modes) String() string {
	return md.Path()
}

// Parse the current layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	// suppress the flag package's own output. help is printed by this
	// function so that sub-modes can be included
	md.flags.SetOutput(io.Discard)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.printHelp()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		// assume the default mode until the first non-flag argument says
		// otherwise
		mode := md.subModes[0]

		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left over after a call to Parse() ie.
// arguments that are not flags or a recognised sub-mode selector.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or a recognised
// sub-mode selector.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

func (md *Modes) printHelp() {
	if md.Output == nil {
		return
	}

	if md.Path() != "" {
		fmt.Fprintf(md.Output, "help for mode: %s\n", md.Path())
	}

	md.flags.SetOutput(md.Output)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)

	if len(md.subModes) > 1 {
		fmt.Fprintf(md.Output, "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "  default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
