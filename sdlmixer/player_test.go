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

package sdlmixer

import (
	"testing"

	"github.com/deviant-syndrome/dosbox-staging/test"
)

func TestClampToS16(t *testing.T) {
	test.Equate(t, clampToS16(0), int16(0))
	test.Equate(t, clampToS16(100.7), int16(100))
	test.Equate(t, clampToS16(-100.7), int16(-100))
	test.Equate(t, clampToS16(40000), int16(32767))
	test.Equate(t, clampToS16(-40000), int16(-32768))
}
