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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/studio-anchor/gb-stopwatch/audio"
	"github.com/studio-anchor/gb-stopwatch/curated"
	"github.com/studio-anchor/gb-stopwatch/logger"
)

// sound queues cue samples on an SDL audio device. the device pulls from
// the queue on its own thread; a cue is one QueueAudio call and there is
// nothing to service afterwards, which suits the fire-and-forget cue
// protocol.
type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	bnk  *audio.Bank
}

func newSound() (*sound, error) {
	snd := &sound{
		bnk: audio.NewBank(),
	}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlplay: audio: %v", err)
	}
	snd.spec = actualSpec

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// Bank exposes the cue bank so that replacement samples can be loaded into
// it.
func (snd *sound) Bank() *audio.Bank {
	return snd.bnk
}

func (snd *sound) play(id audio.CueID) {
	err := sdl.QueueAudio(snd.id, snd.bnk.Samples(id))
	if err != nil {
		// a failed cue is not worth stopping the stopwatch for
		logger.Logf("sdlplay", "audio: %v", err)
	}
}

func (snd *sound) destroy() {
	sdl.CloseAudioDevice(snd.id)
}
