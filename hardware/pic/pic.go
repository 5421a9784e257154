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

// Package pic provides the emulated millisecond time source used by the
// hardware devices. The name refers to the programmable interrupt controller
// of the emulated machine, which is where the original timing services
// lived.
//
// Devices take a Clock at construction. The Wall implementation advances
// with the host clock. The Manual implementation is advanced explicitly and
// is intended for headless use and for package tests.
package pic

import "time"

// Clock is a monotonic millisecond time source. It is a read-only dependency
// of the hardware devices; none of them own or advance it.
type Clock interface {
	// Ticks returns whole milliseconds since an arbitrary epoch.
	Ticks() int64

	// FullIndex returns fractional milliseconds since the same epoch.
	FullIndex() float64

	// Delay blocks the caller for the given number of milliseconds. In an
	// emulation this stalls the emulated CPU, which is sometimes the
	// required behaviour (eg. MIDI device latency emulation).
	Delay(ms int64)
}

// Wall is a Clock driven by the host monotonic clock.
type Wall struct {
	epoch time.Time
}

// NewWall is the preferred method of initialisation for the Wall type.
func NewWall() *Wall {
	return &Wall{epoch: time.Now()}
}

// Ticks implements the Clock interface.
func (c *Wall) Ticks() int64 {
	return time.Since(c.epoch).Milliseconds()
}

// FullIndex implements the Clock interface.
func (c *Wall) FullIndex() float64 {
	return float64(time.Since(c.epoch).Microseconds()) / 1000.0
}

// Delay implements the Clock interface.
func (c *Wall) Delay(ms int64) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Manual is a Clock that only moves when Advance is called. Delay advances
// the clock rather than blocking, so code under test that waits out a
// latency window completes immediately.
type Manual struct {
	nowMs float64

	// number of milliseconds spent in Delay since construction
	Delayed int64
}

// NewManual is the preferred method of initialisation for the Manual type.
// The clock starts at the given millisecond value. A non-zero start value is
// usually wanted: some devices treat a zero tick reading as "never".
func NewManual(startMs float64) *Manual {
	return &Manual{nowMs: startMs}
}

// Advance moves the clock forward by the given number of milliseconds.
func (c *Manual) Advance(ms float64) {
	c.nowMs += ms
}

// Ticks implements the Clock interface.
func (c *Manual) Ticks() int64 {
	return int64(c.nowMs)
}

// FullIndex implements the Clock interface.
func (c *Manual) FullIndex() float64 {
	return c.nowMs
}

// Delay implements the Clock interface.
func (c *Manual) Delay(ms int64) {
	c.nowMs += float64(ms)
	c.Delayed += ms
}
