package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aquachain/gembuild/buildinfo"
)

const buildinfoPkg = "gitlab.com/aquachain/gembuild/buildinfo"

var releaseValues = [][2]string{
	{"release", "12.24.2020"},
	{"releaseYear", "2020"},
	{"releaseMonth", "12"},
	{"releaseDay", "24"},
	{"revision", "12.24.2020-14-gb77c425-dirty"},
	{"date", "20/01/2021 22:54 UTC"},
	{"compiler", "arm-none-eabi-gcc 10.2.1 20201103 (release)"},
	{"machine", "stargirl@stargirls-mbp.lan"},
}

// buildWith compiles gembuild with the given linker values and returns the binary path.
func buildWith(t *testing.T, values [][2]string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping go build in short mode")
	}
	gobin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not in PATH")
	}
	var flags []string
	for _, v := range values {
		flags = append(flags, fmt.Sprintf("-X '%s.%s=%s'", buildinfoPkg, v[0], v[1]))
	}
	bin := filepath.Join(t.TempDir(), clientIdentifier)
	cmd := exec.Command(gobin, "build", "-o", bin, "-ldflags", strings.Join(flags, " "), ".")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "go build: %s", out)
	return bin
}

func runBinary(bin string, args ...string) (stdout, stderr string, err error) {
	var o, e bytes.Buffer
	cmd := exec.Command(bin, args...)
	cmd.Stdout, cmd.Stderr = &o, &e
	err = cmd.Run()
	return o.String(), e.String(), err
}

func TestLinkerInjection(t *testing.T) {
	bin := buildWith(t, releaseValues)

	out, _, err := runBinary(bin, "version")
	require.NoError(t, err)
	assert.Equal(t, "12.24.2020 (12.24.2020-14-gb77c425-dirty) on 20/01/2021 22:54 UTC"+
		" with arm-none-eabi-gcc 10.2.1 20201103 (release) by stargirl@stargirls-mbp.lan\n", out)

	out, logs, err := runBinary(bin, "-verbosity", "4", "info", "-format", "json")
	require.NoError(t, err)
	var got buildinfo.BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, buildinfo.BuildInfo{
		Release:      "12.24.2020",
		ReleaseYear:  2020,
		ReleaseMonth: 12,
		ReleaseDay:   24,
		Revision:     "12.24.2020-14-gb77c425-dirty",
		Date:         "20/01/2021 22:54 UTC",
		Compiler:     "arm-none-eabi-gcc 10.2.1 20201103 (release)",
		Machine:      "stargirl@stargirls-mbp.lan",
	}, got)
	assert.NotContains(t, logs, "not set by the linker", "injected build reported development values")
}

func TestLinkerInjectionNone(t *testing.T) {
	bin := buildWith(t, nil)
	_, logs, err := runBinary(bin, "-verbosity", "4", "info", "-format", "json")
	require.NoError(t, err)
	assert.Contains(t, logs, "not set by the linker")
}

func TestLinkerInjectionRejected(t *testing.T) {
	outOfRange := make([][2]string, len(releaseValues))
	copy(outOfRange, releaseValues)
	outOfRange[2] = [2]string{"releaseMonth", "13"}
	// -X with an empty value leaves the variable empty.
	emptyMachine := make([][2]string, len(releaseValues))
	copy(emptyMachine, releaseValues)
	emptyMachine[7] = [2]string{"machine", ""}

	for name, tt := range map[string]struct {
		values [][2]string
		want   string
	}{
		"partial":       {releaseValues[:1], "build info partially set"},
		"month 13":      {outOfRange, `releaseMonth="13": value out of range`},
		"empty machine": {emptyMachine, `machine="": build info partially set`},
	} {
		t.Run(name, func(t *testing.T) {
			bin := buildWith(t, tt.values)
			out, logs, err := runBinary(bin, "version")
			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr, "binary started with bad build info")
			assert.Empty(t, out)
			assert.Contains(t, logs, tt.want)
		})
	}
}
