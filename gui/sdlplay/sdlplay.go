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

// Package sdlplay is the windowed SDL frontend. The glyph grid is rendered
// into a streaming texture through the embedded bitmap font; keyboard
// state is mapped to the joypad buttons; cues are queued on an SDL audio
// device.
//
// Keyboard map: space is the A button, X is the B button, cursor keys are
// the dpad, return is START and right-shift is SELECT. Escape or closing
// the window quits.
package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/studio-anchor/gb-stopwatch/audio"
	"github.com/studio-anchor/gb-stopwatch/curated"
	"github.com/studio-anchor/gb-stopwatch/gui"
	"github.com/studio-anchor/gb-stopwatch/gui/fonts"
	"github.com/studio-anchor/gb-stopwatch/hardware/clocks"
	"github.com/studio-anchor/gb-stopwatch/hardware/joypad"
	"github.com/studio-anchor/gb-stopwatch/performance/limiter"
	"github.com/studio-anchor/gb-stopwatch/screen"
)

const pixelDepth = 4

// display size in pixels, before scaling
const (
	horizPixels = screen.Columns * fonts.TileWidth
	vertPixels  = screen.Rows * fonts.TileHeight
)

// the two tones of the monochrome display, RGBA
var (
	paper = [pixelDepth]uint8{0xe8, 0xe8, 0xe0, 0xff}
	ink   = [pixelDepth]uint8{0x18, 0x18, 0x20, 0xff}
)

// SdlPlay implements the gui.Frontend interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array copied to the texture every frame. it is
	// horizPixels * vertPixels * pixelDepth in length
	pixels []byte

	snd *sound

	lmtr *limiter.FpsLimiter

	// buttons currently held down, maintained from SDL key events
	buttons joypad.Button

	// set by the window-close and escape-key events. reported on the next
	// WaitForFrame()
	quit bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type.
func NewSdlPlay(scale int) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{
		pixels: make([]byte, horizPixels*vertPixels*pixelDepth),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow("GB Stopwatch",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(horizPixels*scale), int32(vertPixels*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING, horizPixels, vertPixels)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.snd, err = newSound()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.lmtr, err = limiter.NewFpsLimiter(clocks.FramesPerSecond)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// start with an all-paper display
	for i := 0; i < len(scr.pixels); i += pixelDepth {
		copy(scr.pixels[i:], paper[:])
	}

	return scr, nil
}

// Destroy implements the gui.Frontend interface.
func (scr *SdlPlay) Destroy() {
	scr.lmtr.End()
	scr.snd.destroy()
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}

// DrawGlyph implements the screen.Surface interface. The glyph's bitmap is
// painted into the pixel buffer immediately; the buffer reaches the
// texture on the next WaitForFrame().
func (scr *SdlPlay) DrawGlyph(col int, row int, gly screen.Glyph) {
	if col < 0 || col >= screen.Columns || row < 0 || row >= screen.Rows {
		return
	}

	tile := fonts.Bitmap(gly.Char())

	for y := 0; y < fonts.TileHeight; y++ {
		o := ((row*fonts.TileHeight+y)*horizPixels + col*fonts.TileWidth) * pixelDepth
		for x := 0; x < fonts.TileWidth; x++ {
			if tile[y]&(0x80>>x) != 0 {
				copy(scr.pixels[o:], ink[:])
			} else {
				copy(scr.pixels[o:], paper[:])
			}
			o += pixelDepth
		}
	}
}

// ReadButtons implements the joypad.Input interface.
func (scr *SdlPlay) ReadButtons() joypad.Button {
	return scr.buttons
}

// PlayCue implements the audio.Mixer interface.
func (scr *SdlPlay) PlayCue(id audio.CueID) {
	scr.snd.play(id)
}

// CueBank returns the bank the frontend plays from, so that replacement
// samples can be loaded into it.
func (scr *SdlPlay) CueBank() *audio.Bank {
	return scr.snd.Bank()
}

// WaitForFrame implements the screen.FrameTrigger interface. It services
// the SDL event queue, presents the frame and then blocks until the next
// frame boundary.
func (scr *SdlPlay) WaitForFrame() error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true
		case *sdl.KeyboardEvent:
			scr.serviceKey(ev)
		}
	}

	if scr.quit {
		return gui.ErrUserQuit()
	}

	err := scr.texture.Update(nil, scr.pixels, horizPixels*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.renderer.Present()

	scr.lmtr.Wait()

	return nil
}

func (scr *SdlPlay) serviceKey(ev *sdl.KeyboardEvent) {
	var b joypad.Button

	switch ev.Keysym.Sym {
	case sdl.K_SPACE:
		b = joypad.A
	case sdl.K_x:
		b = joypad.B
	case sdl.K_RETURN:
		b = joypad.Start
	case sdl.K_RSHIFT:
		b = joypad.Select
	case sdl.K_UP:
		b = joypad.Up
	case sdl.K_DOWN:
		b = joypad.Down
	case sdl.K_LEFT:
		b = joypad.Left
	case sdl.K_RIGHT:
		b = joypad.Right
	case sdl.K_ESCAPE:
		if ev.Type == sdl.KEYDOWN {
			scr.quit = true
		}
		return
	default:
		return
	}

	if ev.Type == sdl.KEYDOWN {
		scr.buttons |= b
	} else if ev.Type == sdl.KEYUP {
		scr.buttons &^= b
	}
}
