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

package mixer

import "math"

// LowPass is a first order (6dB/oct) low-pass filter. Devices with a fixed
// low sample rate use it to tame the harshest aliased frequencies while
// keeping the raw character of the DAC.
type LowPass struct {
	alpha float32
	left  float32
	right float32
}

// NewLowPass is the preferred method of initialisation for the LowPass type.
func NewLowPass(cutoffHz float64, sampleRateHz float64) *LowPass {
	rc := 1.0 / (2 * math.Pi * cutoffHz)
	dt := 1.0 / sampleRateHz
	return &LowPass{
		alpha: float32(dt / (rc + dt)),
	}
}

// Filter one frame, returning the filtered frame.
func (f *LowPass) Filter(fr Frame) Frame {
	f.left += f.alpha * (fr.Left - f.left)
	f.right += f.alpha * (fr.Right - f.right)
	return Frame{Left: f.left, Right: f.right}
}
