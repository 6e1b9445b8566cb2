// Copyright 2021 The aquachain Authors
// This file is part of the gembuild library.
//
// The gembuild library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The gembuild library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the gembuild library. If not, see <http://www.gnu.org/licenses/>.

package buildinfo

import (
	"runtime"
	"runtime/debug"
)

const (
	unknown    = "unknown"
	unreleased = "unreleased"
)

// swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// devBuildInfo is used when the linker set nothing, eg. 'go run' or 'go test'.
// Date stays unknown: the VCS stamp only records the commit time.
func devBuildInfo() BuildInfo {
	b := BuildInfo{
		Release:      unreleased,
		ReleaseYear:  1970,
		ReleaseMonth: 1,
		ReleaseDay:   1,
		Revision:     unknown,
		Date:         unknown,
		Compiler:     runtime.Compiler + " " + runtime.Version(),
		Machine:      unknown,
	}
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return b
	}
	if info.GoVersion != "" {
		b.Compiler = runtime.Compiler + " " + info.GoVersion
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev != "" {
		if len(rev) > 7 {
			rev = rev[:7]
		}
		b.Revision = "g" + rev
		if dirty {
			b.Revision += "-dirty"
		}
	}
	return b
}
