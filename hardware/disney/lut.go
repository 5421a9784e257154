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

// lutU8toS16 expands the DAC's unsigned 8-bit samples onto the 16-bit
// signed scale. The silence byte (0x80) maps to zero.
var lutU8toS16 [256]float32

func init() {
	for i := range lutU8toS16 {
		lutU8toS16[i] = float32((i - 128) * 256)
	}
}
