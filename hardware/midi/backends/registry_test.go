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

package backends_test

import (
	"testing"

	"github.com/deviant-syndrome/dosbox-staging/curated"
	"github.com/deviant-syndrome/dosbox-staging/hardware/midi/backends"
	"github.com/deviant-syndrome/dosbox-staging/test"
)

func TestRegistrationOrder(t *testing.T) {
	r := backends.NewRegistry()
	test.ExpectedSuccess(t, r.Register("b", false, func() backends.Handler { return &backends.None{} }))
	test.ExpectedSuccess(t, r.Register("a", true, func() backends.Handler { return &backends.None{} }))
	test.ExpectedSuccess(t, r.Register("c", false, func() backends.Handler { return &backends.None{} }))

	var names []string
	var optIns []bool
	r.Walk(func(name string, optIn bool, _ backends.Factory) bool {
		names = append(names, name)
		optIns = append(optIns, optIn)
		return true
	})

	test.Equate(t, len(names), 3)
	test.Equate(t, names[0], "b")
	test.Equate(t, names[1], "a")
	test.Equate(t, names[2], "c")
	test.Equate(t, optIns[1], true)
}

func TestDuplicateRegistration(t *testing.T) {
	r := backends.NewRegistry()
	test.ExpectedSuccess(t, r.Register("a", false, func() backends.Handler { return &backends.None{} }))

	err := r.Register("a", false, func() backends.Handler { return &backends.None{} })
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, backends.DuplicateName), true)
}

func TestLookup(t *testing.T) {
	r := backends.DefaultRegistry()

	_, ok := r.Lookup(backends.RTMidiName)
	test.Equate(t, ok, true)
	_, ok = r.Lookup(backends.NoneName)
	test.Equate(t, ok, true)
	_, ok = r.Lookup("fluidsynth")
	test.Equate(t, ok, false)
}

func TestWalkEarlyExit(t *testing.T) {
	r := backends.DefaultRegistry()

	ct := 0
	r.Walk(func(_ string, _ bool, _ backends.Factory) bool {
		ct++
		return false
	})
	test.Equate(t, ct, 1)
}
