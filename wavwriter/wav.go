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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// on program end. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	"github.com/deviant-syndrome/dosbox-staging/curated"
	"github.com/deviant-syndrome/dosbox-staging/logger"
	"github.com/deviant-syndrome/dosbox-staging/mixer"

	"github.com/youpy/go-wav"
)

// WavWriter accumulates stereo frames and writes them out as 16-bit PCM.
type WavWriter struct {
	filename string
	rateHz   int
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, rateHz int) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		rateHz:   rateHz,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// AddFrames appends frames to the in-memory buffer.
func (aw *WavWriter) AddFrames(frames []mixer.Frame) {
	for _, fr := range frames {
		w := wav.Sample{}
		w.Values[0] = int(clampToS16(fr.Left))
		w.Values[1] = int(clampToS16(fr.Right))
		aw.buffer = append(aw.buffer, w)
	}
}

// End writes the buffered frames to disk.
func (aw *WavWriter) End() (rerr error) {
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

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 2, uint32(aw.rateHz), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)
	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
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
