package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aquachain/gembuild/buildinfo"
	"gitlab.com/aquachain/gembuild/common/toml"
)

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{clientIdentifier, "-verbosity", "2"}, args...))
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, buildinfo.String()+"\n", out)

	out, err = run(t)
	require.NoError(t, err)
	assert.Equal(t, buildinfo.String()+"\n", out, "version is the default command")
}

func TestInfoJSON(t *testing.T) {
	out, err := run(t, "info", "-format", "json")
	require.NoError(t, err)
	var got buildinfo.BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, buildinfo.Get(), got)
}

func TestInfoTOML(t *testing.T) {
	out, err := run(t, "info", "-format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "release_month = ")
	var got buildinfo.BuildInfo
	require.NoError(t, toml.Unmarshal([]byte(out), &got))
	assert.Equal(t, buildinfo.Get(), got)
}

func TestInfoText(t *testing.T) {
	out, err := run(t, "info", "-nocolor")
	require.NoError(t, err)
	b := buildinfo.Get()
	assert.Contains(t, out, "Release:    "+b.Release+" (1970-01-01)")
	assert.Contains(t, out, "Compiler:   "+b.Compiler+"\n")
	assert.Contains(t, out, "Machine:    "+b.Machine+"\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestInfoBadFormat(t *testing.T) {
	_, err := run(t, "info", "-format", "yaml")
	assert.ErrorContains(t, err, "unknown -format")
}

func TestBadVerbosity(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run([]string{clientIdentifier, "-verbosity", "12", "version"})
	assert.ErrorContains(t, err, "invalid -verbosity")
	assert.NotContains(t, out.String(), buildinfo.String())
}

func TestLicense(t *testing.T) {
	out, err := run(t, "license")
	require.NoError(t, err)
	assert.Contains(t, out, "GNU General Public License")
}

func TestServeStopsOnSchedule(t *testing.T) {
	t.Setenv("GEMBUILD_SCHEDULE_TIMEOUT", "200ms")
	start := time.Now()
	_, err := run(t, "serve", "-http.port", "0")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestParseTypicalDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, parseTypicalDuration("30"))
	assert.Equal(t, 200*time.Millisecond, parseTypicalDuration("200ms"))
	assert.Equal(t, time.Duration(0), parseTypicalDuration(""))
	assert.Equal(t, time.Duration(0), parseTypicalDuration("soon"))
}
