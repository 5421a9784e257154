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

package backends

import (
	"fmt"
	"io"
	"strings"

	"github.com/deviant-syndrome/dosbox-staging/logger"

	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// RTMidiName is the name of the RTMidi backend variant.
const RTMidiName = "rtmidi"

// RTMidi plays MIDI through the host's native MIDI services via the rtmidi
// library. It covers what separate platform drivers (alsa, coremidi, win32)
// would otherwise each have to implement.
type RTMidi struct {
	drv *rtmididrv.Driver
	out drivers.Out
}

// Name implements the Handler interface.
func (h *RTMidi) Name() string {
	return RTMidiName
}

// Open implements the Handler interface. conf selects an output port by
// case-insensitive substring match on the port name; an empty conf selects
// the first available port.
func (h *RTMidi) Open(conf string) bool {
	drv, err := rtmididrv.New()
	if err != nil {
		logger.Logf("midi", "rtmidi: %v", err)
		return false
	}

	out, ok := findOut(drv, conf)
	if !ok {
		_ = drv.Close()
		return false
	}

	if err := out.Open(); err != nil {
		logger.Logf("midi", "rtmidi: %v", err)
		_ = drv.Close()
		return false
	}

	h.drv = drv
	h.out = out
	logger.Logf("midi", "rtmidi: using port '%s'", out.String())

	return true
}

func findOut(drv *rtmididrv.Driver, conf string) (drivers.Out, bool) {
	outs, err := drv.Outs()
	if err != nil {
		logger.Logf("midi", "rtmidi: %v", err)
		return nil, false
	}
	if len(outs) == 0 {
		logger.Log("midi", "rtmidi: no output ports")
		return nil, false
	}

	conf = strings.TrimSpace(strings.ToLower(conf))
	if conf == "" {
		return outs[0], true
	}

	for _, out := range outs {
		if strings.Contains(strings.ToLower(out.String()), conf) {
			return out, true
		}
	}

	logger.Logf("midi", "rtmidi: no port matching '%s'", conf)
	return nil, false
}

// Close implements the Handler interface.
func (h *RTMidi) Close() {
	if h.out != nil {
		_ = h.out.Close()
		h.out = nil
	}
	if h.drv != nil {
		_ = h.drv.Close()
		h.drv = nil
	}
}

// PlayMsg implements the Handler interface.
func (h *RTMidi) PlayMsg(msg []byte) {
	if err := h.out.Send(msg); err != nil {
		logger.Logf("midi", "rtmidi: %v", err)
	}
}

// PlaySysex implements the Handler interface.
func (h *RTMidi) PlaySysex(buf []byte) {
	if err := h.out.Send(buf); err != nil {
		logger.Logf("midi", "rtmidi: %v", err)
	}
}

// ListAll implements the Handler interface. A transient driver is used when
// the backend is not open so that listing never disturbs playback state.
func (h *RTMidi) ListAll(w io.Writer) ListResult {
	drv := h.drv
	if drv == nil {
		var err error
		drv, err = rtmididrv.New()
		if err != nil {
			return ListDeviceNotConfigured
		}
		defer func() { _ = drv.Close() }()
	}

	outs, err := drv.Outs()
	if err != nil {
		return ListDeviceNotConfigured
	}

	for i, out := range outs {
		fmt.Fprintf(w, "  %2d - %s\n", i, out.String())
	}

	return ListOk
}
