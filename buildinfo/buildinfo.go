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

// Package buildinfo exposes information about how the running binary was built.
//
// Values are injected by the build via linker flags, all of them or none:
//
//	go build -ldflags "\
//	  -X gitlab.com/aquachain/gembuild/buildinfo.release=12.24.2020 \
//	  -X gitlab.com/aquachain/gembuild/buildinfo.releaseYear=2020 \
//	  -X gitlab.com/aquachain/gembuild/buildinfo.releaseMonth=12 \
//	  -X gitlab.com/aquachain/gembuild/buildinfo.releaseDay=24 \
//	  -X gitlab.com/aquachain/gembuild/buildinfo.revision=12.24.2020-14-gb77c425-dirty \
//	  -X 'gitlab.com/aquachain/gembuild/buildinfo.date=20/01/2021 22:54 UTC' \
//	  -X 'gitlab.com/aquachain/gembuild/buildinfo.compiler=gc go1.22.0' \
//	  -X gitlab.com/aquachain/gembuild/buildinfo.machine=stargirl@stargirls-mbp.lan"
//
// Without injection, development values are taken from the module's embedded
// VCS stamp. A partial or malformed injection aborts package initialization.
package buildinfo

import "fmt"

// Set via linker flags, see package documentation.
var (
	release      string
	releaseYear  string
	releaseMonth string
	releaseDay   string
	revision     string
	date         string
	compiler     string
	machine      string
)

// BuildInfo describes the build that produced the running binary.
type BuildInfo struct {
	// Release is the closest tag to the build's revision, the most recent
	// release when the build was created. For example: 12.24.2020
	//
	// Don't parse or compare this string, use ReleaseYear, ReleaseMonth and
	// ReleaseDay to check the release programmatically.
	Release string `json:"release" toml:"release"`

	ReleaseYear  uint16 `json:"release_year" toml:"release_year"`   // for example, 2020
	ReleaseMonth uint8  `json:"release_month" toml:"release_month"` // January = 1
	ReleaseDay   uint8  `json:"release_day" toml:"release_day"`     // the 1st of the month = 1

	// Revision identifies the state of the working tree when the build was
	// created. "12.24.2020" means the build was created from that tag, while
	// "12.24.2020-14-gb77c425-dirty" means 14 commits ahead of it with
	// uncommitted changes.
	Revision string `json:"revision" toml:"revision"`

	// Date is when the build was created, for example "20/01/2021 22:54 UTC".
	Date string `json:"date" toml:"date"`

	// Compiler is the name and version of the toolchain used for the build.
	Compiler string `json:"compiler" toml:"compiler"`

	// Machine is the user and host that created the build, for example
	// "stargirl@stargirls-mbp.lan".
	Machine string `json:"machine" toml:"machine"`
}

// String returns the one line summary of b.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (%s) on %s with %s by %s", b.Release, b.Revision, b.Date, b.Compiler, b.Machine)
}

var (
	binfo    BuildInfo
	summary  string
	injected bool
)

func init() {
	raw := linkerValues()
	info, err := assemble(raw)
	if err != nil {
		panic(err)
	}
	binfo, summary, injected = info, info.String(), !raw.empty()
}

// Get returns the build information of the running binary.
func Get() BuildInfo {
	return binfo
}

// String returns the summary of the running binary's build, see BuildInfo.String.
func String() string {
	return summary
}

// Injected reports whether the build information was set by the linker, as
// opposed to development values.
func Injected() bool {
	return injected
}
