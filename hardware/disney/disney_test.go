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

package disney

import (
	"testing"

	"github.com/deviant-syndrome/dosbox-staging/hardware/ioports"
	"github.com/deviant-syndrome/dosbox-staging/hardware/pic"
	"github.com/deviant-syndrome/dosbox-staging/mixer"
	"github.com/deviant-syndrome/dosbox-staging/test"
)

func newTestDisney(t *testing.T) (*Disney, *ioports.Dispatch, *pic.Manual) {
	t.Helper()
	clk := pic.NewManual(1000)
	io := ioports.NewDispatch()
	return NewDisney(clk, io, "off"), io, clk
}

func TestPullMapsWrittenBytes(t *testing.T) {
	d, io, _ := newTestDisney(t)

	io.Write(0x378, 0x80)
	io.Write(0x378, 0x90)
	io.Write(0x378, 0xa0)

	// no emulated time has passed so nothing was queued; the pull
	// synthesises on demand
	buf := make([]mixer.Frame, 3)
	d.PullFrames(buf)

	test.Equate(t, buf[0].Left, lutU8toS16[0x80])
	test.Equate(t, buf[1].Left, lutU8toS16[0x90])
	test.Equate(t, buf[2].Left, lutU8toS16[0xa0])

	// both stereo channels carry the same signal
	test.Equate(t, buf[1].Right, lutU8toS16[0x90])
}

func TestUnderrunHoldsLastSample(t *testing.T) {
	d, io, _ := newTestDisney(t)

	io.Write(0x378, 0x90)

	buf := make([]mixer.Frame, 4)
	d.PullFrames(buf)

	// one real sample, then the DAC holds its level
	test.Equate(t, buf[0].Left, lutU8toS16[0x90])
	test.Equate(t, buf[1].Left, lutU8toS16[0x90])
	test.Equate(t, buf[3].Left, lutU8toS16[0x90])
}

func TestFifoCapacity(t *testing.T) {
	d, io, _ := newTestDisney(t)

	// construction primed one byte; 15 more fill the FIFO
	for i := 0; i < 15; i++ {
		test.Equate(t, io.Read(0x379)&0x40, 0x00)
		io.Write(0x378, uint8(i))
	}

	test.Equate(t, io.Read(0x379)&0x40, 0x40)
	test.Equate(t, len(d.fifo), 16)

	// further writes are dropped, not queued
	io.Write(0x378, 0xff)
	test.Equate(t, len(d.fifo), 16)
	test.Equate(t, io.Read(0x379)&0x40, 0x40)
}

func TestStatusPowerBits(t *testing.T) {
	d, io, _ := newTestDisney(t)

	test.Equate(t, io.Read(0x379)&0x0f, 0x0f)

	d.Close()
	test.Equate(t, d.status, 0x00)
}

func TestLazyCatchUp(t *testing.T) {
	d, io, clk := newTestDisney(t)

	io.Write(0x378, 0x90)

	// nine and a half sample periods pass before the next port access;
	// the access renders exactly the backlog
	clk.Advance(9.5 * 1000.0 / DacRateHz)
	io.Write(0x37a, 0x00)
	test.Equate(t, len(d.renderQueue), 10)

	// a second access with no elapsed time adds nothing
	io.Write(0x37a, 0x00)
	test.Equate(t, len(d.renderQueue), 10)
}

func TestPullDrainsQueueFirst(t *testing.T) {
	d, io, clk := newTestDisney(t)

	io.Write(0x378, 0x90)
	io.Write(0x378, 0xa0)

	clk.Advance(1.5 * 1000.0 / DacRateHz)
	io.Write(0x37a, 0x00)
	test.Equate(t, len(d.renderQueue), 2)

	// the pull consumes the queue and synthesises the shortfall
	buf := make([]mixer.Frame, 3)
	d.PullFrames(buf)
	test.Equate(t, len(d.renderQueue), 0)
	test.Equate(t, buf[0].Left, lutU8toS16[0x90])
	test.Equate(t, buf[1].Left, lutU8toS16[0xa0])
	test.Equate(t, buf[2].Left, lutU8toS16[0xa0])
}

func TestPullResyncsCheckpoint(t *testing.T) {
	d, io, clk := newTestDisney(t)

	io.Write(0x378, 0x90)
	clk.Advance(5 * 1000.0 / DacRateHz)

	buf := make([]mixer.Frame, 5)
	d.PullFrames(buf)

	// the pull covered the elapsed time; a port access immediately
	// afterwards must not render it again
	io.Write(0x37a, 0x00)
	test.Equate(t, len(d.renderQueue), 0)
}

func TestDormantResumeSuppressesBacklog(t *testing.T) {
	d, io, clk := newTestDisney(t)

	io.Write(0x378, 0x90)

	// a long quiet spell with a pull at the end puts the device's
	// consumer to sleep
	clk.Advance(1000)
	d.PullFrames(make([]mixer.Frame, 1))

	// much later, the game touches the device again. the elapsed time
	// must be discarded, not synthesised as a burst of stale audio
	clk.Advance(60 * 1000)
	io.Write(0x378, 0xa0)
	test.Equate(t, len(d.renderQueue), 0)
}

func TestSilencePriming(t *testing.T) {
	d, _, _ := newTestDisney(t)

	// an untouched device renders silence
	buf := make([]mixer.Frame, 2)
	d.PullFrames(buf)
	test.Equate(t, buf[0].Left, float32(0))
	test.Equate(t, buf[1].Left, float32(0))
}

func TestFilterPreference(t *testing.T) {
	clk := pic.NewManual(1000)

	d := NewDisney(clk, ioports.NewDispatch(), "on")
	on, cutoff := d.FilterSpec()
	test.Equate(t, on, true)
	if cutoff < 3000 || cutoff > 3500 {
		t.Errorf("unexpected filter cutoff %f", cutoff)
	}

	d = NewDisney(clk, ioports.NewDispatch(), "off")
	on, _ = d.FilterSpec()
	test.Equate(t, on, false)

	// anything else behaves as off
	d = NewDisney(clk, ioports.NewDispatch(), "42")
	on, _ = d.FilterSpec()
	test.Equate(t, on, false)
}

func TestClosedDeviceLeavesBus(t *testing.T) {
	d, io, _ := newTestDisney(t)
	d.Close()

	// the status port reads as floating bus once the device is gone
	test.Equate(t, io.Read(0x379), 0xff)
	io.Write(0x378, 0x90)
	test.Equate(t, len(d.fifo), 0)
}
