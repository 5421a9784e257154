// This file is part of dosbox-staging.
//
// dosbox-staging is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dosbox-staging is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dosbox-staging.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlmixer plays a FrameSource through SDL. It owns the pacing: a
// goroutine pulls one buffer's worth of frames every buffer period and
// queues them on the audio device, so the source itself never needs to know
// about wall clock time.
package sdlmixer

import (
	"time"

	"github.com/deviant-syndrome/dosbox-staging/logger"
	"github.com/deviant-syndrome/dosbox-staging/mixer"

	"github.com/veandco/go-sdl2/sdl"
)

// the buffer length is a compromise. too long and the output lags the
// emulated device noticeably; too short and the pull goroutine wakes up
// often enough to matter. this value works well for the low sample rates
// the emulated DACs run at.
const bufferLength = 512

// if the device queue ever grows past this many buffers we are producing
// faster than the device consumes. skipping a tick lets it drain.
const maxQueuedBuffers = 4

// Player pulls frames from a FrameSource and queues them on an SDL audio
// device.
//
// The pull happens on the Player's own goroutine. Callers that also poke
// the source from the emulated bus must make the source safe for that, or
// arrange for bus access and pulls to be serialised.
type Player struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	src    mixer.FrameSource
	filter *mixer.LowPass

	frames []mixer.Frame
	bytes  []byte

	quit chan bool
	done chan bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
// rateHz is the source's native rate; no resampling is performed. filter
// may be nil, in which case frames are queued as pulled.
func NewPlayer(src mixer.FrameSource, rateHz int, filter *mixer.LowPass) (*Player, error) {
	ply := &Player{
		src:    src,
		filter: filter,
		frames: make([]mixer.Frame, bufferLength),
		bytes:  make([]byte, bufferLength*4),
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(rateHz),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	ply.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	ply.spec = actualSpec

	logger.Logf("sdlmixer", "opened audio device at %dHz", ply.spec.Freq)

	go ply.pullLoop(time.Duration(float64(bufferLength) / float64(rateHz) * float64(time.Second)))

	sdl.PauseAudioDevice(ply.id, false)

	return ply, nil
}

func (ply *Player) pullLoop(period time.Duration) {
	tck := time.NewTicker(period)
	defer tck.Stop()

	for {
		select {
		case <-ply.quit:
			ply.done <- true
			return
		case <-tck.C:
		}

		if sdl.GetQueuedAudioSize(ply.id) > uint32(maxQueuedBuffers*len(ply.bytes)) {
			continue
		}

		ply.src.PullFrames(ply.frames)

		for i, fr := range ply.frames {
			if ply.filter != nil {
				fr = ply.filter.Filter(fr)
			}
			l := clampToS16(fr.Left)
			r := clampToS16(fr.Right)
			ply.bytes[i*4] = byte(l)
			ply.bytes[i*4+1] = byte(l >> 8)
			ply.bytes[i*4+2] = byte(r)
			ply.bytes[i*4+3] = byte(r >> 8)
		}

		if err := sdl.QueueAudio(ply.id, ply.bytes); err != nil {
			logger.Logf("sdlmixer", "queue: %v", err)
		}
	}
}

func clampToS16(v float32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// Close stops the pull goroutine and closes the audio device.
func (ply *Player) Close() {
	ply.quit <- true
	<-ply.done
	sdl.CloseAudioDevice(ply.id)
}
