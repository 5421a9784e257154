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

// boundedBuffer is a fixed-capacity byte buffer with a saturating append.
// Capacity is set at construction and can never be exceeded; an append to a
// full buffer is dropped and reported, not written out of bounds.
type boundedBuffer struct {
	data []byte
}

func newBoundedBuffer(capacity int) boundedBuffer {
	return boundedBuffer{
		data: make([]byte, 0, capacity),
	}
}

// append adds a byte to the buffer, reporting whether it was accepted.
func (b *boundedBuffer) append(v uint8) bool {
	if len(b.data) >= cap(b.data) {
		return false
	}
	b.data = append(b.data, v)
	return true
}

// used returns the number of bytes in the buffer.
func (b *boundedBuffer) used() int {
	return len(b.data)
}

// truncate discards all but the first n bytes. Truncating past the current
// length is a no-op.
func (b *boundedBuffer) truncate(n int) {
	if n < len(b.data) {
		b.data = b.data[:n]
	}
}

// reset empties the buffer.
func (b *boundedBuffer) reset() {
	b.data = b.data[:0]
}

// bytes returns the buffer contents. The slice aliases the buffer's backing
// store and is only valid until the next append or reset.
func (b *boundedBuffer) bytes() []byte {
	return b.data
}
