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

// Package mixer defines the boundary between sound producing devices and
// whatever consumes their output. The mixing and resampling engine itself is
// not part of this project; this package carries only the types both sides
// of the boundary agree on.
package mixer

// Frame is one stereo sample pair. Values are on the 16-bit integer scale
// (-32768 to 32767) but kept as floats so filters can run without rounding.
type Frame struct {
	Left  float32
	Right float32
}

// FrameSource is implemented by devices that synthesise audio on demand. The
// pull side of the boundary calls PullFrames with a buffer and the device
// must fill every entry. A FrameSource never blocks.
//
// A device expects exactly one puller. The puller and the emulated bus must
// not call into the device concurrently; serialising the two is the host's
// obligation.
type FrameSource interface {
	PullFrames(buf []Frame)
}

// Sleeper tracks whether a device's audio consumer has gone dormant. A
// device puts its sleeper to sleep when it has seen no bus activity for a
// while and calls WakeUp on the next access. A true return from WakeUp
// means the device was dormant and should discard any notion of elapsed
// time rather than synthesise a burst of stale backlog.
type Sleeper struct {
	asleep bool
}

// WakeUp marks the sleeper awake and reports whether it had been asleep.
func (s *Sleeper) WakeUp() bool {
	woke := s.asleep
	s.asleep = false
	return woke
}

// Sleep marks the sleeper dormant.
func (s *Sleeper) Sleep() {
	s.asleep = true
}

// Asleep reports whether the sleeper is dormant.
func (s *Sleeper) Asleep() bool {
	return s.asleep
}
