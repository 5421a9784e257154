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
	"bufio"
	"io"
	"os"

	"github.com/deviant-syndrome/dosbox-staging/logger"
)

// DumpName is the name of the Dump backend variant.
const DumpName = "dump"

// Dump writes every MIDI message it receives to a file as a raw byte
// stream (the .syx convention: no framing beyond the MIDI bytes
// themselves). Useful for capturing what a game sends without any MIDI
// hardware attached.
//
// Dump is opt-in only; automatic backend selection skips it.
type Dump struct {
	f *os.File
	w *bufio.Writer
}

// Name implements the Handler interface.
func (h *Dump) Name() string {
	return DumpName
}

// Open implements the Handler interface. conf is the capture filename and
// is required.
func (h *Dump) Open(conf string) bool {
	if conf == "" {
		logger.Log("midi", "dump: no capture file given")
		return false
	}

	f, err := os.Create(conf)
	if err != nil {
		logger.Logf("midi", "dump: %v", err)
		return false
	}

	h.f = f
	h.w = bufio.NewWriter(f)
	logger.Logf("midi", "dump: capturing to %s", conf)

	return true
}

// Close implements the Handler interface.
func (h *Dump) Close() {
	if h.f == nil {
		return
	}
	if err := h.w.Flush(); err != nil {
		logger.Logf("midi", "dump: %v", err)
	}
	if err := h.f.Close(); err != nil {
		logger.Logf("midi", "dump: %v", err)
	}
	h.f = nil
	h.w = nil
}

// PlayMsg implements the Handler interface.
func (h *Dump) PlayMsg(msg []byte) {
	_, _ = h.w.Write(msg)
}

// PlaySysex implements the Handler interface.
func (h *Dump) PlaySysex(buf []byte) {
	_, _ = h.w.Write(buf)
}

// ListAll implements the Handler interface.
func (h *Dump) ListAll(_ io.Writer) ListResult {
	return ListNotSupported
}
