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

// Package wavwriter captures the audio of a stopwatch session to disk as a
// WAV file. Cue samples are buffered in memory in their entirety and
// written to disk on program end, so it is only suitable for testing and
// for short sessions.
package wavwriter

import (
	"os"

	"github.com/youpy/go-wav"

	"github.com/studio-anchor/gb-stopwatch/audio"
	"github.com/studio-anchor/gb-stopwatch/curated"
	"github.com/studio-anchor/gb-stopwatch/logger"
)

// WavWriter implements the audio.Mixer interface. It passes every cue on
// to the wrapped mixer and appends the cue's samples to the session
// recording.
type WavWriter struct {
	filename string
	mix      audio.Mixer
	bnk      *audio.Bank
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
// The wrapped mixer may be nil, in which case cues are recorded without
// being sounded.
func New(filename string, mix audio.Mixer, bnk *audio.Bank) *WavWriter {
	return &WavWriter{
		filename: filename,
		mix:      mix,
		bnk:      bnk,
		buffer:   make([]wav.Sample, 0),
	}
}

// PlayCue implements the audio.Mixer interface.
func (aw *WavWriter) PlayCue(id audio.CueID) {
	if aw.mix != nil {
		aw.mix.PlayCue(id)
	}

	for _, v := range aw.bnk.Samples(id) {
		w := wav.Sample{}
		w.Values[0] = int(v)
		w.Values[1] = int(v)
		aw.buffer = append(aw.buffer, w)
	}
}

// EndMixing writes the buffered recording to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(audio.SampleFreq), 8)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)
	enc.WriteSamples(aw.buffer)

	return nil
}
