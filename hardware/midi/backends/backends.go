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

// Package backends defines the MIDI output backend contract and the registry
// of available backend variants.
//
// A backend receives complete MIDI messages from the router and delivers
// them to something that can make sound: a physical port, a software
// synthesiser, a capture file. Backends never see the raw byte stream; the
// router's decoders take care of framing.
package backends

import "io"

// ListResult is returned by the ListAll function of a Handler.
type ListResult int

// List of valid ListResult values.
const (
	ListOk ListResult = iota
	ListDeviceNotConfigured
	ListNotSupported
)

// Handler is the capability contract implemented by every backend variant.
type Handler interface {
	// Name returns the stable identifier used for selection and listing.
	Name() string

	// Open prepares the backend for playback. conf is the free-form
	// backend configuration string. A false return is not an error
	// condition; it triggers fallback selection in the router.
	Open(conf string) bool

	// Close releases whatever Open acquired. Safe to call on a backend
	// that never opened.
	Close()

	// PlayMsg plays a complete fixed-length MIDI message of up to three
	// bytes.
	PlayMsg(msg []byte)

	// PlaySysex plays a complete SysEx block, including the 0xf0 and
	// 0xf7 delimiters.
	PlaySysex(buf []byte)

	// ListAll writes the backend's device listing to w. It must not
	// change any backend state.
	ListAll(w io.Writer) ListResult
}
