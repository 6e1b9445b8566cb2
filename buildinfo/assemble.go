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
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrPartial is returned when only some of the linker values were set.
	ErrPartial = errors.New("build info partially set")
	// ErrRange is returned when a release date component is out of range.
	ErrRange = errors.New("value out of range")
)

// AssemblyError describes a linker value that could not be used.
type AssemblyError struct {
	Field string
	Value string
	Err   error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("buildinfo: %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *AssemblyError) Unwrap() error { return e.Err }

// rawValues holds the linker-provided strings in declaration order.
type rawValues struct {
	release, releaseYear, releaseMonth, releaseDay string
	revision, date, compiler, machine              string
}

func linkerValues() rawValues {
	return rawValues{
		release:      release,
		releaseYear:  releaseYear,
		releaseMonth: releaseMonth,
		releaseDay:   releaseDay,
		revision:     revision,
		date:         date,
		compiler:     compiler,
		machine:      machine,
	}
}

func (r rawValues) fields() []struct{ name, value string } {
	return []struct{ name, value string }{
		{"release", r.release},
		{"releaseYear", r.releaseYear},
		{"releaseMonth", r.releaseMonth},
		{"releaseDay", r.releaseDay},
		{"revision", r.revision},
		{"date", r.date},
		{"compiler", r.compiler},
		{"machine", r.machine},
	}
}

func (r rawValues) empty() bool {
	return r == rawValues{}
}

// assemble turns linker values into a BuildInfo. No values at all yields the
// development build info.
func assemble(r rawValues) (BuildInfo, error) {
	if r.empty() {
		return devBuildInfo(), nil
	}
	for _, f := range r.fields() {
		if f.value == "" {
			return BuildInfo{}, &AssemblyError{Field: f.name, Value: f.value, Err: ErrPartial}
		}
	}
	year, err := parseUint("releaseYear", r.releaseYear, 16, 1, 9999)
	if err != nil {
		return BuildInfo{}, err
	}
	month, err := parseUint("releaseMonth", r.releaseMonth, 8, 1, 12)
	if err != nil {
		return BuildInfo{}, err
	}
	day, err := parseUint("releaseDay", r.releaseDay, 8, 1, 31)
	if err != nil {
		return BuildInfo{}, err
	}
	return BuildInfo{
		Release:      r.release,
		ReleaseYear:  uint16(year),
		ReleaseMonth: uint8(month),
		ReleaseDay:   uint8(day),
		Revision:     r.revision,
		Date:         r.date,
		Compiler:     r.compiler,
		Machine:      r.machine,
	}, nil
}

func parseUint(field, s string, bits int, lo, hi uint64) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, &AssemblyError{Field: field, Value: s, Err: err}
	}
	if n < lo || n > hi {
		return 0, &AssemblyError{Field: field, Value: s, Err: fmt.Errorf("%w: want %d..%d", ErrRange, lo, hi)}
	}
	return n, nil
}
