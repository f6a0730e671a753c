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

// The cues are renderings of the sweep channel of the original hardware.
// Each cue is one register program: a frequency sweep, a duty cycle, a
// volume envelope and an 11-bit frequency. The channel is rendered until
// the envelope decays to silence or the sweep pushes the frequency out of
// range.

// pulse describes one sweep-channel program.
type pulse struct {
	// frequency sweep. the frequency is recalculated every sweepPeriod
	// 128ths of a second by adding or subtracting freq>>sweepShift
	sweepPeriod int
	sweepDown   bool
	sweepShift  uint

	// duty cycle index: 12.5%, 25%, 50%, 75%
	duty int

	// volume envelope. initial volume is 0 to 15 and decays one step every
	// envPeriod 64ths of a second
	envVolume int
	envPeriod int

	// 11-bit frequency value. the tone frequency in Hz is
	// 131072/(2048-freq)
	freq int

	// master volume scale, 0 to 7. the tick cue is played at low volume
	master int
}

// the three channel programs of the original hardware
var cuePrograms = [NumCues]pulse{
	// start/stop
	CueStartStop: {
		sweepPeriod: 1,
		sweepShift:  7,
		duty:        1,
		envVolume:   13,
		envPeriod:   5,
		freq:        1847,
		master:      7,
	},

	// tick
	CueTick: {
		sweepPeriod: 6,
		sweepShift:  4,
		duty:        2,
		envVolume:   13,
		envPeriod:   5,
		freq:        1847,
		master:      1,
	},

	// reset
	CueReset: {
		sweepPeriod: 6,
		sweepDown:   true,
		sweepShift:  5,
		duty:        2,
		envVolume:   13,
		envPeriod:   1,
		freq:        1885,
		master:      7,
	},
}

// fraction of the waveform period spent high for each duty index, in 8ths
var dutyHigh = [4]int{1, 2, 4, 6}

// hard ceiling on cue length in samples. the envelope normally silences
// the channel well before this
const maxCueSamples = SampleFreq / 2

// synthesize renders one channel program to unsigned 8-bit mono PCM at
// SampleFreq.
func synthesize(p pulse) []uint8 {
	samples := make([]uint8, 0, maxCueSamples)

	freq := p.freq
	vol := p.envVolume

	// phase accumulates through one waveform period, expressed in channel
	// clock units. the channel clock runs at 131072*8 Hz so that the duty
	// comparison can be done in 8ths of a period
	var phase int

	// countdowns to the next sweep and envelope steps, in samples
	sweepCt := p.sweepPeriod * SampleFreq / 128
	envCt := p.envPeriod * SampleFreq / 64

	for len(samples) < maxCueSamples && vol > 0 {
		// one waveform period is (2048-freq) channel clocks of 8 steps
		period := (2048 - freq) * 8
		phase = (phase + (131072 * 8 / SampleFreq)) % period

		amp := vol * p.master * 127 / (15 * 7)
		if phase*8/period < dutyHigh[p.duty] {
			samples = append(samples, uint8(128+amp))
		} else {
			samples = append(samples, uint8(128-amp))
		}

		if p.sweepPeriod > 0 {
			sweepCt--
			if sweepCt == 0 {
				sweepCt = p.sweepPeriod * SampleFreq / 128
				d := freq >> p.sweepShift
				if p.sweepDown {
					freq -= d
				} else {
					freq += d
				}

				// sweeping out of range silences the channel
				if freq < 0 || freq > 2047 {
					break // for loop
				}
			}
		}

		if p.envPeriod > 0 {
			envCt--
			if envCt == 0 {
				envCt = p.envPeriod * SampleFreq / 64
				vol--
			}
		}
	}

	return samples
}
