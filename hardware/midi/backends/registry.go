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
	"github.com/deviant-syndrome/dosbox-staging/curated"
)

// sentinel error returned by Registry.Register.
const DuplicateName = "backends: duplicate name: %s"

// NoneName is the name of the fallback variant that is always registered and
// always opens. It is excluded from listings.
const NoneName = "none"

// Factory creates a fresh, unopened instance of a backend variant.
type Factory func() Handler

type entry struct {
	name    string
	factory Factory

	// opt-in variants are never chosen by automatic selection. the user
	// must name them explicitly.
	optIn bool
}

// Registry is an ordered collection of backend variants. Registration order
// is the order automatic fallback selection tries them in, so it should be
// fixed and documented at the registration site.
//
// The registry replaces a static list of backend singletons: it is populated
// explicitly at startup, which keeps the fallback order visible and
// testable.
type Registry struct {
	entries []entry
}

// NewRegistry creates an empty registry. Most callers want DefaultRegistry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a variant to the end of the fallback order. Registering a
// name twice is an error.
func (r *Registry) Register(name string, optIn bool, f Factory) error {
	for _, e := range r.entries {
		if e.name == name {
			return curated.Errorf(DuplicateName, name)
		}
	}
	r.entries = append(r.entries, entry{name: name, factory: f, optIn: optIn})
	return nil
}

// Lookup returns the factory for a named variant.
func (r *Registry) Lookup(name string) (Factory, bool) {
	for _, e := range r.entries {
		if e.name == name {
			return e.factory, true
		}
	}
	return nil, false
}

// Walk visits every registered variant in fallback order. Iteration stops
// when the visit function returns false.
func (r *Registry) Walk(visit func(name string, optIn bool, f Factory) bool) {
	for _, e := range r.entries {
		if !visit(e.name, e.optIn, e.factory) {
			return
		}
	}
}

// DefaultRegistry returns the standard variant set in the standard fallback
// order:
//
//  1. rtmidi - real MIDI output through the host's MIDI services
//  2. dump   - raw capture to file; opt-in only, never auto-selected
//  3. none   - discards everything; always opens
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(RTMidiName, false, func() Handler { return &RTMidi{} })
	_ = r.Register(DumpName, true, func() Handler { return &Dump{} })
	_ = r.Register(NoneName, false, func() Handler { return &None{} })
	return r
}
