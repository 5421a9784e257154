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

// Package midi implements the MIDI output and input routing for the
// emulated machine. Raw bytes written by the emulated software are decoded
// per slot (running status, SysEx framing, device latency emulation) and
// forwarded as complete messages to the active output backend.
//
// The package exposes no internal locking. The emulated bus is expected to
// be the only caller; serialising access is the host's obligation.
package midi

import (
	"fmt"
	"io"
	"strings"

	"github.com/deviant-syndrome/dosbox-staging/hardware/midi/backends"
	"github.com/deviant-syndrome/dosbox-staging/hardware/pic"
	"github.com/deviant-syndrome/dosbox-staging/logger"
)

// NumSlots is the number of independent decode streams multiplexed onto the
// single active output backend.
const NumSlots = 4

// InputDevice identifies the emulated device that owns MIDI input.
type InputDevice int

// List of valid InputDevice values.
const (
	InputNone InputDevice = iota
	InputMPU401
	InputSBUART
	InputGUS
	InputSB16
)

// InputReceiver is implemented by emulated devices that can receive decoded
// MIDI input while they own the input slot.
type InputReceiver interface {
	// InputMsg receives a complete fixed-length message.
	InputMsg(msg []byte)

	// InputSysex receives a SysEx block. abort indicates the transfer
	// was cut short. The return value is the number of bytes the
	// receiver could not accept.
	InputSysex(buf []byte, abort bool) int
}

// InputToggle is returned by ToggleInputDevice.
type InputToggle int

// List of valid InputToggle values.
const (
	// the auto-input feature is disabled
	InputToggleDisabled InputToggle = iota

	// another device owns the input slot
	InputToggleRejected

	// the caller now owns the input slot
	InputToggleGranted

	// the caller already owned the input slot
	InputToggleOwned

	// the caller owned the input slot and has released it
	InputToggleReleased
)

// Config collects the configuration consumed by NewRouter. The values are
// owned by the config layer; the router only reads them.
type Config struct {
	// backend name. "auto", "default" and the empty string all request
	// automatic selection
	Device string

	// free-form per-backend configuration string. the token "delaysysex"
	// anywhere in the string enables SysEx device-latency emulation and
	// is stripped before the backend sees the string
	Config string
}

// Router owns the per-slot decoders, the active output backend and the
// input-device selection. It is constructed once per emulation session and
// injected into the IO dispatch of whatever UART devices need it.
type Router struct {
	clk      pic.Clock
	registry *backends.Registry

	// always a valid Handler. the None backend stands in when nothing
	// real could be opened
	handler   backends.Handler
	available bool

	slots [NumSlots]slot
	rtbuf [1]uint8

	// feature toggles
	realtime bool
	thruchan bool
	clockout bool

	// input arbitration
	autoinput   bool
	inputDevice InputDevice
	receivers   map[InputDevice]InputReceiver
}

// NewRouter is the preferred method of initialisation for the Router type.
// Backend selection happens here: an exact name match is tried first, then
// the registry is walked in registration order, skipping opt-in variants,
// until a backend opens. The None backend guarantees the walk terminates
// with a usable handler.
func NewRouter(clk pic.Clock, registry *backends.Registry, cfg Config) *Router {
	r := &Router{
		clk:       clk,
		registry:  registry,
		handler:   &backends.None{},
		realtime:  true,
		receivers: make(map[InputDevice]InputReceiver),
	}
	for i := range r.slots {
		r.slots[i] = newSlot()
	}

	conf := cfg.Config
	if strings.Contains(conf, "delaysysex") {
		conf = strings.ReplaceAll(conf, "delaysysex", "")

		// arming the latency window now, with a zero delay, means the
		// very first SysEx block gets latency treatment
		for i := range r.slots {
			r.slots[i].sysex.armed = true
			r.slots[i].sysex.startMs = clk.Ticks()
		}
		logger.Log("midi", "using delayed SysEx processing")
	}
	conf = strings.TrimSpace(conf)

	dev := strings.ToLower(strings.TrimSpace(cfg.Device))
	if dev != "" && dev != "auto" && dev != "default" {
		if f, ok := registry.Lookup(dev); ok {
			h := f()
			if h.Open(conf) {
				r.handler = h
				r.available = true
				r.autoinput = true
				logger.Logf("midi", "opened device: %s", h.Name())
				return r
			}
			logger.Logf("midi", "can't open device: %s with config: '%s'", dev, conf)
		} else {
			logger.Logf("midi", "can't find device: %s, using default handler", dev)
		}
	}

	registry.Walk(func(name string, optIn bool, f backends.Factory) bool {
		if optIn {
			// opt-in variants are never selected automatically
			return true
		}
		h := f()
		if !h.Open(conf) {
			return true
		}
		r.handler = h
		r.available = name != backends.NoneName
		if r.available {
			logger.Logf("midi", "opened device: %s", name)
		}
		return false
	})

	return r
}

// Available reports whether a real backend is active, as opposed to the
// no-op fallback.
func (r *Router) Available() bool {
	return r.available
}

// SetThruChannel enables mirroring of realtime bytes arriving on the thru
// path.
func (r *Router) SetThruChannel(enabled bool) {
	r.thruchan = enabled
}

// SetClockOut enables forwarding of MIDI clock bytes (0xf8). Most games
// spam clock whether or not anything listens, so the default is off.
func (r *Router) SetClockOut(enabled bool) {
	r.clockout = enabled
}

// RawOutRealtime forwards a realtime byte (0xf8 and above) to the active
// backend, bypassing all slot state.
func (r *Router) RawOutRealtime(data uint8) {
	if !r.realtime {
		return
	}
	if !r.clockout && data == 0xf8 {
		return
	}
	r.rtbuf[0] = data
	r.handler.PlayMsg(r.rtbuf[:1])
}

// RawOutThruRealtime mirrors a realtime byte through the output path when
// the thru feature is enabled.
func (r *Router) RawOutThruRealtime(data uint8) {
	if r.thruchan {
		r.RawOutRealtime(data)
	}
}

// ClearBuffer resets one slot's decode state without affecting the active
// backend or any other slot.
func (r *Router) ClearBuffer(slotID int) {
	if slotID < 0 || slotID >= NumSlots {
		return
	}
	r.slots[slotID].clear()
}

// AttachInput registers the receiver for an input device. Passing nil
// removes the registration.
func (r *Router) AttachInput(dev InputDevice, rcv InputReceiver) {
	if rcv == nil {
		delete(r.receivers, dev)
		return
	}
	r.receivers[dev] = rcv
}

// ToggleInputDevice arbitrates ownership of the single input slot. An
// unowned slot is granted to any claimant; an owner can release it; any
// other request is rejected. The whole mechanism is gated on the auto-input
// feature, which is only enabled when the user named an output device
// explicitly.
func (r *Router) ToggleInputDevice(dev InputDevice, claim bool) InputToggle {
	if !r.autoinput {
		return InputToggleDisabled
	}

	if r.inputDevice == dev {
		if !claim {
			r.inputDevice = InputNone
			return InputToggleReleased
		}
		return InputToggleOwned
	}

	if r.inputDevice == InputNone && claim {
		r.inputDevice = dev
		return InputToggleGranted
	}

	return InputToggleRejected
}

// InputMsg forwards an externally decoded message to whichever device owns
// the input slot. Dropped silently when nothing does.
func (r *Router) InputMsg(msg []byte) {
	if rcv, ok := r.receivers[r.inputDevice]; ok {
		rcv.InputMsg(msg)
	}
}

// InputSysex forwards an externally received SysEx block to whichever
// device owns the input slot.
func (r *Router) InputSysex(buf []byte, abort bool) int {
	if rcv, ok := r.receivers[r.inputDevice]; ok {
		return rcv.InputSysex(buf, abort)
	}
	return 0
}

// ListAll enumerates the registered backend variants, excluding the no-op
// fallback, and writes each one's device listing to w. It mutates no router
// or backend state.
func (r *Router) ListAll(w io.Writer) {
	r.registry.Walk(func(name string, _ bool, f backends.Factory) bool {
		if name == backends.NoneName {
			return true
		}

		fmt.Fprintf(w, "%s:\n", name)

		switch f().ListAll(w) {
		case backends.ListDeviceNotConfigured:
			fmt.Fprint(w, "  device not configured\n")
		case backends.ListNotSupported:
			fmt.Fprint(w, "  listing not supported\n")
		}

		// additional newline to separate devices
		fmt.Fprint(w, "\n")

		return true
	})
}

func (r *Router) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("backend: %s", r.handler.Name()))
	if !r.available {
		s.WriteString(" (unavailable)")
	}
	for i := range r.slots {
		s.WriteString(fmt.Sprintf("  slot %d: status %#02x", i, r.slots[i].status))
	}
	return s.String()
}

// Close shuts the active backend down and resets every slot. The router is
// not usable afterwards.
func (r *Router) Close() {
	if r.available {
		r.handler.Close()
	}
	r.available = false
	r.handler = &backends.None{}
	for i := range r.slots {
		r.slots[i].clear()
	}
}
