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

package audio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/studio-anchor/gb-stopwatch/curated"
	"github.com/studio-anchor/gb-stopwatch/logger"
)

// Bank holds the PCM data for every cue.
type Bank struct {
	cues [NumCues][]uint8
}

// NewBank returns a Bank filled with the synthesized default cues.
func NewBank() *Bank {
	bnk := &Bank{}
	for id := CueID(0); id < NumCues; id++ {
		bnk.cues[id] = synthesize(cuePrograms[id])
	}
	return bnk
}

// Samples returns the PCM data for a cue: unsigned 8-bit mono at
// SampleFreq.
func (bnk *Bank) Samples(id CueID) []uint8 {
	return bnk.cues[id]
}

// Duration returns the length of a cue in seconds.
func (bnk *Bank) Duration(id CueID) float64 {
	return float64(len(bnk.cues[id])) / SampleFreq
}

// file stems looked for by Load, indexed by CueID
var bankStems = [NumCues]string{"start", "tick", "reset"}

// Load replaces cues with samples found in the given directory. For each
// cue the file stem is the cue name ("start", "tick", "reset") and the
// supported extensions are .wav and .mp3. Cues with no matching file keep
// their synthesized defaults.
func (bnk *Bank) Load(dir string) error {
	for id := CueID(0); id < NumCues; id++ {
		for _, ext := range []string{".wav", ".mp3"} {
			fn := filepath.Join(dir, bankStems[id]+ext)

			f, err := os.Open(fn)
			if err != nil {
				continue
			}

			var data []float32
			var rate float64

			switch ext {
			case ".wav":
				data, rate, err = loadWAV(f)
			case ".mp3":
				data, rate, err = loadMP3(f)
			}
			f.Close()

			if err != nil {
				return curated.Errorf("cuebank: %v", err)
			}

			bnk.cues[id] = requantize(data, rate)
			logger.Logf("cuebank", "%s cue loaded from %s", id, fn)
			break // extension loop
		}
	}

	return nil
}

// loadWAV reads the first channel of a WAV file as float32 PCM.
func loadWAV(f *os.File) ([]float32, float64, error) {
	dec := wav.NewDecoder(f)
	if dec == nil || !dec.IsValidFile() {
		return nil, 0, curated.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, curated.Errorf("wav: %v", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	// first channel only
	data := make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans))
	for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
		data = append(data, floatBuf.Data[i])
	}

	return data, float64(dec.SampleRate), nil
}

// loadMP3 reads the left channel of an MP3 file as float32 PCM. the mp3
// decoder always produces 16-bit little-endian stereo.
func loadMP3(f *os.File) ([]float32, float64, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, curated.Errorf("mp3: %v", err)
	}

	data := make([]float32, 0)

	err = nil
	chunk := make([]byte, 4096)
	for err != io.EOF {
		var chunkLen int
		chunkLen, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return nil, 0, curated.Errorf("mp3: %v", err)
		}

		// stride of 4: two bytes per sample per channel and we only want
		// the left channel
		for i := 0; i+1 < chunkLen; i += 4 {
			v := int(chunk[i]) | (int(chunk[i+1]) << 8)
			if v >= 32768 {
				v -= 65536
			}
			data = append(data, float32(v)/32768.0)
		}
	}

	return data, float64(dec.SampleRate()), nil
}

// requantize converts float32 PCM at an arbitrary sample rate to the
// unsigned 8-bit PCM at SampleFreq used by the mixers. nearest-sample
// resampling is plenty for short percussive cues.
func requantize(data []float32, rate float64) []uint8 {
	if len(data) == 0 {
		return nil
	}

	n := int(float64(len(data)) * SampleFreq / rate)
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		v := data[int(float64(i)*rate/SampleFreq)]
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		out[i] = uint8(128 + v*127)
	}

	return out
}
