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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deviant-syndrome/dosbox-staging/mixer"
	"github.com/deviant-syndrome/dosbox-staging/test"
	"github.com/deviant-syndrome/dosbox-staging/wavwriter"

	"github.com/youpy/go-wav"
)

func TestRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn, 7000)
	test.ExpectedSuccess(t, err == nil)

	aw.AddFrames([]mixer.Frame{
		{Left: 0, Right: 0},
		{Left: 256, Right: -256},
		{Left: 40000, Right: -40000},
	})

	err = aw.End()
	test.ExpectedSuccess(t, err == nil)

	f, err := os.Open(fn)
	test.ExpectedSuccess(t, err == nil)
	defer f.Close()

	r := wav.NewReader(f)

	format, err := r.Format()
	test.ExpectedSuccess(t, err == nil)
	test.Equate(t, format.NumChannels, uint16(2))
	test.Equate(t, format.SampleRate, uint32(7000))
	test.Equate(t, format.BitsPerSample, uint16(16))

	samples, err := r.ReadSamples(3)
	test.ExpectedSuccess(t, err == nil)
	test.Equate(t, len(samples), 3)

	test.Equate(t, samples[0].Values[0], 0)
	test.Equate(t, samples[1].Values[0], 256)
	test.Equate(t, samples[1].Values[1], -256)

	// out of range values clamp to the 16-bit limits
	test.Equate(t, samples[2].Values[0], 32767)
	test.Equate(t, samples[2].Values[1], -32768)
}
