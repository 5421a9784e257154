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

package mixer_test

import (
	"testing"

	"github.com/deviant-syndrome/dosbox-staging/mixer"
	"github.com/deviant-syndrome/dosbox-staging/test"
)

func TestSleeper(t *testing.T) {
	s := mixer.Sleeper{}

	// a fresh sleeper is awake and waking it again reports no transition
	test.Equate(t, s.Asleep(), false)
	test.Equate(t, s.WakeUp(), false)

	s.Sleep()
	test.Equate(t, s.Asleep(), true)

	// the first wake after sleeping reports the transition, later wakes
	// do not
	test.Equate(t, s.WakeUp(), true)
	test.Equate(t, s.WakeUp(), false)
}

func TestLowPassConverges(t *testing.T) {
	f := mixer.NewLowPass(3150, 7000)

	// a constant input must converge on that input
	var fr mixer.Frame
	for i := 0; i < 1000; i++ {
		fr = f.Filter(mixer.Frame{Left: 1000, Right: -1000})
	}
	if fr.Left < 999 || fr.Left > 1001 {
		t.Errorf("filter did not converge on DC input (left=%f)", fr.Left)
	}
	if fr.Right > -999 || fr.Right < -1001 {
		t.Errorf("filter did not converge on DC input (right=%f)", fr.Right)
	}
}

func TestLowPassAttenuates(t *testing.T) {
	f := mixer.NewLowPass(3150, 7000)

	// the first output of a step input must be attenuated
	fr := f.Filter(mixer.Frame{Left: 1000, Right: 1000})
	if fr.Left >= 1000 {
		t.Errorf("first filtered sample of a step should be attenuated (left=%f)", fr.Left)
	}
}
