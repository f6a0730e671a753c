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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/studio-anchor/gb-stopwatch/audio"
	"github.com/studio-anchor/gb-stopwatch/gui"
	"github.com/studio-anchor/gb-stopwatch/gui/sdlplay"
	"github.com/studio-anchor/gb-stopwatch/gui/termplay"
	"github.com/studio-anchor/gb-stopwatch/hardware"
	"github.com/studio-anchor/gb-stopwatch/hardware/clocks"
	"github.com/studio-anchor/gb-stopwatch/logger"
	"github.com/studio-anchor/gb-stopwatch/modalflag"
	"github.com/studio-anchor/gb-stopwatch/performance"
	"github.com/studio-anchor/gb-stopwatch/statsview"
	"github.com/studio-anchor/gb-stopwatch/version"
	"github.com/studio-anchor/gb-stopwatch/wavwriter"
)

// #mainthread - SDL wants window creation and event servicing on the main
// thread, so everything runs there; the emulation itself is single
// threaded.
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TERM", "PERFORMANCE")
	md.AdditionalHelp(fmt.Sprintf("%s (%s)", version.ApplicationName, version.Version))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN", "TERM":
		os.Exit(play(md))
	case "PERFORMANCE":
		os.Exit(perform(md))
	}
}

// shared options of the RUN and TERM modes.
type playOpts struct {
	profile *string
	bcd     *bool
	scale   *int
	wav     *string
	cues    *string
	log     *bool
	mviz    *string
	stats   *bool
}

func addPlayFlags(md *modalflag.Modes) playOpts {
	return playOpts{
		profile: md.AddString("profile", "DMG", "CPU speed profile: DMG or CGB"),
		bcd:     md.AddBool("bcd", false, "use the packed-BCD counter policy"),
		scale:   md.AddInt("scale", 3, "window scale (RUN mode only)"),
		wav:     md.AddString("wav", "", "record played cues to WAV file"),
		cues:    md.AddString("cues", "", "load replacement cue samples from directory"),
		log:     md.AddBool("log", false, "echo log entries to stderr as they happen"),
		mviz:    md.AddString("memviz", "", "write hardware graph to file (graphviz)"),
		stats:   md.AddBool("statsview", false, "run stats server (requires statsview build tag)"),
	}
}

func play(md *modalflag.Modes) int {
	mode := md.Mode()

	md.NewMode()
	opts := addPlayFlags(md)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		return 10
	}

	if *opts.log {
		logger.SetEcho(os.Stderr)
	}

	if *opts.stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not in this build (build with -tags statsview)")
		}
	}

	profile, err := profileFromLabel(*opts.profile)
	if err != nil {
		fmt.Printf("* %s\n", err)
		return 10
	}

	policy := hardware.DecimalPolicy
	if *opts.bcd {
		policy = hardware.BCDPolicy
	}

	// create the requested frontend
	var fe gui.Frontend
	var bnk *audio.Bank

	switch mode {
	case "RUN":
		scr, err := sdlplay.NewSdlPlay(*opts.scale)
		if err != nil {
			fmt.Printf("* %s\n", err)
			return 10
		}
		fe = scr
		bnk = scr.CueBank()
	case "TERM":
		trm, err := termplay.NewTermPlay()
		if err != nil {
			fmt.Printf("* %s\n", err)
			return 10
		}
		fe = trm
		bnk = audio.NewBank()
	}
	defer fe.Destroy()

	if *opts.cues != "" {
		if err := bnk.Load(*opts.cues); err != nil {
			fmt.Printf("* %s\n", err)
			return 10
		}
	}

	// the mixer is normally the frontend itself. the wav recorder wraps it
	// when a recording has been asked for
	var mix audio.Mixer = fe
	if *opts.wav != "" {
		aw := wavwriter.New(*opts.wav, fe, bnk)
		defer func() {
			if err := aw.EndMixing(); err != nil {
				fmt.Printf("* %s\n", err)
			}
		}()
		mix = aw
	}

	hh, err := hardware.NewHandheld(profile, fe, fe, mix, policy)
	if err != nil {
		fmt.Printf("* %s\n", err)
		return 10
	}

	if *opts.mviz != "" {
		if err := writeMemviz(*opts.mviz, hh); err != nil {
			fmt.Printf("* %s\n", err)
			return 10
		}
	}

	// ctrl-c ends the loop at the next frame boundary
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	err = hh.Run(fe, func() (bool, error) {
		select {
		case <-intChan:
			return false, nil
		default:
		}
		return true, nil
	})
	if err != nil && !gui.IsUserQuit(err) {
		fmt.Printf("* %s\n", err)
		return 10
	}

	return 0
}

func perform(md *modalflag.Modes) int {
	md.NewMode()
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("cpuprofile", "", "write CPU profile to file")
	log := md.AddBool("log", false, "echo log entries to stderr as they happen")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if err := performance.Check(os.Stdout, *profile, *duration); err != nil {
		fmt.Printf("* %s\n", err)
		return 10
	}

	return 0
}

func profileFromLabel(label string) (clocks.Profile, error) {
	switch strings.ToUpper(label) {
	case "DMG":
		return clocks.Normal, nil
	case "CGB":
		return clocks.Double, nil
	}
	return clocks.Profile{}, fmt.Errorf("not a valid CPU profile (%s)", label)
}

func writeMemviz(filename string, hh *hardware.Handheld) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, hh)
	return nil
}
