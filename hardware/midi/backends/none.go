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

import "io"

// None is the fallback backend. It always opens and discards every message,
// which guarantees the router always has a valid backend to hand messages
// to.
type None struct{}

// Name implements the Handler interface.
func (h *None) Name() string {
	return NoneName
}

// Open implements the Handler interface. It always succeeds.
func (h *None) Open(_ string) bool {
	return true
}

// Close implements the Handler interface.
func (h *None) Close() {
}

// PlayMsg implements the Handler interface.
func (h *None) PlayMsg(_ []byte) {
}

// PlaySysex implements the Handler interface.
func (h *None) PlaySysex(_ []byte) {
}

// ListAll implements the Handler interface.
func (h *None) ListAll(_ io.Writer) ListResult {
	return ListNotSupported
}
