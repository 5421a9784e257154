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

package midi

import (
	"github.com/deviant-syndrome/dosbox-staging/logger"
)

// size of the per-slot SysEx accumulation buffer. Blocks longer than this
// are truncated silently, which is a documented quirk rather than an error.
const sysexBufferSize = 8192

// slot is one independent MIDI decode stream. Games can drive several
// virtual UARTs at once; each gets its own running status and SysEx state
// while sharing the router's single output backend.
type slot struct {
	// the current running status byte. zero means none
	status uint8

	cmd struct {
		// expected total message length per the event length table
		len int
		buf boundedBuffer
	}

	sysex struct {
		buf boundedBuffer

		// device latency emulation. while armed, no further byte is
		// processed for this slot until delayMs milliseconds have
		// passed since startMs
		armed   bool
		delayMs int
		startMs int64
	}
}

func newSlot() slot {
	s := slot{}
	s.cmd.buf = newBoundedBuffer(3)
	s.sysex.buf = newBoundedBuffer(sysexBufferSize)
	return s
}

// clear resets the slot's decode state. The latency window is deliberately
// left armed; clearing buffers does not make the emulated device any
// faster.
func (s *slot) clear() {
	s.status = 0x00
	s.cmd.len = 0
	s.cmd.buf.truncate(0)
	s.sysex.buf.reset()
}

// RawOutByte accepts one raw byte for the given slot's decode stream.
//
// If the slot's device-latency window is still open this call blocks, via
// the router's clock, until the window passes. This emulates the drain time
// of a physical device's input buffer and is the correct behaviour for a
// single-threaded emulated machine: the emulated CPU is supposed to stall.
func (r *Router) RawOutByte(data uint8, slotID int) {
	if slotID < 0 || slotID >= NumSlots {
		return
	}
	s := &r.slots[slotID]

	if s.sysex.armed {
		passed := r.clk.Ticks() - s.sysex.startMs
		if passed < int64(s.sysex.delayMs) {
			r.clk.Delay(int64(s.sysex.delayMs) - passed)
		}
	}

	// realtime messages bypass the slot state machine entirely
	if data >= 0xf8 {
		r.rtbuf[0] = data
		r.handler.PlayMsg(r.rtbuf[:1])
		return
	}

	// an active SysEx transfer claims every byte until a status byte
	// arrives
	if s.status == 0xf0 {
		if data&0x80 == 0 {
			// accumulating. saturates one short of capacity so the
			// terminator below always fits
			if s.sysex.buf.used() < sysexBufferSize-1 {
				s.sysex.buf.append(data)
			}
			return
		}

		// any status byte terminates the transfer
		s.sysex.buf.append(0xf7)
		block := s.sysex.buf.bytes()
		armed := s.sysex.armed

		if armed && len(block) >= 4 && len(block) <= 9 && block[1] == 0x41 && block[3] == 0x16 {
			// an MT-32 block this short cannot carry a checksum.
			// forwarding it would only upset the device
			logger.Log("midi", "skipping invalid MT-32 SysEx message (too short to contain a checksum)")
		} else {
			r.handler.PlaySysex(block)
			if armed {
				s.sysex.delayMs = sysexDelayMs(block)
				s.sysex.startMs = r.clk.Ticks()
			}
		}
		logger.Logf("midi", "SysEx message size %d", len(block))
	}

	if data&0x80 != 0 {
		s.status = data
		s.cmd.buf.truncate(0)
		s.cmd.len = int(evtLen[data])
		if s.status == 0xf0 {
			s.sysex.buf.reset()
			s.sysex.buf.append(0xf0)
		}
	}

	if s.cmd.len > 0 {
		s.cmd.buf.append(data)
		if s.cmd.buf.used() >= s.cmd.len {
			r.handler.PlayMsg(s.cmd.buf.bytes())

			// running status: keep the status byte and treat what
			// follows as data until an explicit status arrives
			s.cmd.buf.truncate(1)
		}
	}
}
