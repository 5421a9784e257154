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

// Package version records the version of the program.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "dosbox-staging"

// Revision contains the vcs revision. If the source has been modified but
// not committed the string is suffixed with "+dirty". If there is no vcs
// information the string is "local".
var Revision string

func init() {
	Revision = "local"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision == "" {
		return
	}

	Revision = revision
	if modified {
		Revision += "+dirty"
	}
}
