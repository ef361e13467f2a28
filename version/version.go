// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher6502/version.number=v0.1.0"
//
// Revision information comes from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher6502"

// set with -ldflags
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// A version string of "unreleased" means the program was built from a
// repository without a version number. "local" means there is neither a
// version number nor revision information, which is the case with "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line summary of the application version.
func String() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	version, revision = fromBuildInfo(number, debug.ReadBuildInfo)
}

// fromBuildInfo decides the version and revision strings
func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := read(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = s.Value
			case "vcs.modified":
				vcsModified = s.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
