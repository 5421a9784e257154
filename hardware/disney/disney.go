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

// Package disney emulates the Disney Sound Source, a digital-to-analogue
// converter hanging off the parallel port with a 16-level FIFO running at a
// fixed 7kHz.
//
// The device converts asynchronous port writes into a time-paced sample
// stream. Synthesis is lazy: nothing is rendered until a port access or a
// frame pull touches the device, at which point exactly enough frames are
// synthesised to cover elapsed emulated time.
package disney

import (
	"github.com/deviant-syndrome/dosbox-staging/hardware/ioports"
	"github.com/deviant-syndrome/dosbox-staging/hardware/pic"
	"github.com/deviant-syndrome/dosbox-staging/logger"
	"github.com/deviant-syndrome/dosbox-staging/mixer"
)

// The DSS is an LPT DAC with a 16-level FIFO running at 7kHz.
const (
	DacRateHz  = 7000
	msPerFrame = 1000.0 / DacRateHz

	maxFifoSize = 16

	// the unsigned sample value the DAC outputs as silence
	silentSample = 0x80
)

// IO ports decoded by the device.
const (
	PortData    ioports.Port = 0x378
	PortStatus  ioports.Port = 0x379
	PortControl ioports.Port = 0x37a
)

// status register bits: 0-3 report power state, 6 reports a full FIFO.
const (
	powerOnBits  = 0b1111
	powerOffBits = 0b0000
	fifoFullBit  = 0x40
)

// how long the device can go without a port access before its audio
// consumer is considered dormant
const sleepAfterMs = 500.0

// Disney is the Disney Sound Source device. Construct with NewDisney and
// dispose with Close.
//
// Disney has no internal locking: the emulated bus and the frame puller
// must not call in concurrently. Serialising the two is the host's
// obligation.
type Disney struct {
	clk pic.Clock
	io  *ioports.Dispatch

	fifo        []uint8
	renderQueue []mixer.Frame

	// the point up to which samples have been synthesised
	lastRenderedMs float64

	// time of the most recent port access, for dormancy detection
	lastAccessMs float64

	sleeper mixer.Sleeper
	status  uint8
	filter  bool
}

// NewDisney is the preferred method of initialisation for the Disney type.
// The device registers its port handlers with the dispatcher and is live
// immediately.
//
// filterPref is "on" or "off"; anything else logs a warning and behaves as
// "off".
func NewDisney(clk pic.Clock, io *ioports.Dispatch, filterPref string) *Disney {
	d := &Disney{
		clk:            clk,
		io:             io,
		fifo:           make([]uint8, 0, maxFifoSize),
		lastRenderedMs: clk.FullIndex(),
		lastAccessMs:   clk.FullIndex(),
		status:         powerOnBits,
	}

	// prime the FIFO with a single silent sample so rendering never
	// observes an empty FIFO
	d.fifo = append(d.fifo, silentSample)

	switch filterPref {
	case "on":
		// The DSS only supports a single fixed 7kHz sample rate. A
		// gentle 6dB/oct low-pass a bit below half the sample rate
		// tames the harshest aliased frequencies while retaining a
		// good dose of the raw crunchy DAC sound. The filter itself
		// runs on the consumer side of the mixer boundary; see
		// FilterSpec.
		d.filter = true
	case "off":
		d.filter = false
	default:
		logger.Logf("disney", "invalid filter setting '%s', using off", filterPref)
	}

	io.RegisterWrite(PortData, func(_ ioports.Port, data uint8) { d.WriteData(data) })
	io.RegisterWrite(PortControl, func(_ ioports.Port, data uint8) { d.WriteControl(data) })
	io.RegisterRead(PortStatus, func(_ ioports.Port) uint8 { return d.ReadStatus() })

	logger.Logf("disney", "Disney Sound Source running at %dkHz on LPT1 port %03xh",
		DacRateHz/1000, PortData)

	return d
}

// FilterSpec reports whether the consumer should apply the device's
// low-pass filter and, if so, its cutoff frequency.
func (d *Disney) FilterSpec() (bool, float64) {
	return d.filter, DacRateHz * 0.45
}

func (d *Disney) isFull() bool {
	return len(d.fifo) >= maxFifoSize
}

// render synthesises one frame from the FIFO. The byte at the front is
// consumed unless it is the last one, in which case it is held and repeated:
// on underrun the DAC keeps emitting its most recent level rather than
// snapping to silence.
//
// The FIFO is never empty; construction primes it and render never drains
// the final entry.
func (d *Disney) render() mixer.Frame {
	if len(d.fifo) > 1 {
		d.fifo = d.fifo[1:]
	}
	sample := lutU8toS16[d.fifo[0]]
	return mixer.Frame{Left: sample, Right: sample}
}

// renderUpToNow synthesises frames to cover emulated time elapsed since the
// last render, queueing them for the next pull. If the consumer was dormant
// the backlog is discarded instead: resuming after a long silence should not
// spray stale audio.
func (d *Disney) renderUpToNow() {
	now := d.clk.FullIndex()
	d.lastAccessMs = now

	if d.sleeper.WakeUp() {
		d.lastRenderedMs = now
		return
	}

	// keep rendering until we're current
	for d.lastRenderedMs < now {
		d.lastRenderedMs += msPerFrame
		d.renderQueue = append(d.renderQueue, d.render())
	}
}

// WriteData accepts a byte written to the data port. A full FIFO drops the
// byte; the device has no way to signal the overflow beyond the status
// register's full flag.
func (d *Disney) WriteData(data uint8) {
	d.renderUpToNow()
	if !d.isFull() {
		d.fifo = append(d.fifo, data)
	}
}

// WriteControl accepts a write to the control port. The value carries no
// information; the strobe only advances rendering.
func (d *Disney) WriteControl(_ uint8) {
	d.renderUpToNow()
}

// ReadStatus services a read of the status port.
func (d *Disney) ReadStatus() uint8 {
	if d.isFull() {
		d.status |= fifoFullBit
	} else {
		d.status &^= fifoFullBit
	}
	return d.status
}

// PullFrames implements the mixer.FrameSource interface. Queued frames are
// drained first and any shortfall is synthesised on the spot. The render
// checkpoint is resynced to now, so elapsed time covered by this pull is
// not rendered a second time.
func (d *Disney) PullFrames(buf []mixer.Frame) {
	n := copy(buf, d.renderQueue)
	d.renderQueue = d.renderQueue[:copy(d.renderQueue, d.renderQueue[n:])]

	// if the queue ran dry, render the remainder
	for i := n; i < len(buf); i++ {
		buf[i] = d.render()
	}

	now := d.clk.FullIndex()
	d.lastRenderedMs = now

	if now-d.lastAccessMs > sleepAfterMs {
		d.sleeper.Sleep()
	}
}

// Close removes the device from the IO map and powers it down. The FIFO and
// render queue do not survive.
func (d *Disney) Close() {
	logger.Logf("disney", "shutting down on LPT1 port %03xh", PortData)

	d.io.UnregisterWrite(PortData)
	d.io.UnregisterWrite(PortControl)
	d.io.UnregisterRead(PortStatus)

	d.fifo = d.fifo[:0]
	d.renderQueue = d.renderQueue[:0]
	d.status = powerOffBits
}
