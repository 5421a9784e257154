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

package pic_test

import (
	"testing"

	"github.com/deviant-syndrome/dosbox-staging/hardware/pic"
	"github.com/deviant-syndrome/dosbox-staging/test"
)

func TestManualAdvance(t *testing.T) {
	clk := pic.NewManual(1000)
	test.Equate(t, clk.Ticks(), int64(1000))
	test.Equate(t, clk.FullIndex(), float64(1000))

	clk.Advance(1.5)
	test.Equate(t, clk.Ticks(), int64(1001))
	test.Equate(t, clk.FullIndex(), 1001.5)
}

func TestManualDelay(t *testing.T) {
	clk := pic.NewManual(0)

	// delay advances the clock rather than blocking
	clk.Delay(10)
	test.Equate(t, clk.Ticks(), int64(10))
	test.Equate(t, clk.Delayed, int64(10))

	clk.Delay(5)
	test.Equate(t, clk.Delayed, int64(15))
}

func TestWallMonotonic(t *testing.T) {
	clk := pic.NewWall()

	a := clk.FullIndex()
	clk.Delay(1)
	b := clk.FullIndex()

	if b <= a {
		t.Errorf("wall clock did not move forward (%f then %f)", a, b)
	}
	if clk.Ticks() < 0 {
		t.Errorf("wall clock ticks negative")
	}
}
