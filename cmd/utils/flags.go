// Copyright 2018 The aquachain Authors
// This file is part of gembuild.
//
// gembuild is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gembuild is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gembuild. If not, see <http://www.gnu.org/licenses/>.

// Package utils contains internal helper functions for gembuild commands.
package utils

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/urfave/cli"
	"gitlab.com/aquachain/gembuild/common/log"
	"gitlab.com/aquachain/gembuild/common/sense"
	"gitlab.com/aquachain/gembuild/internal/buildapi"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
var (
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: int(log.GetLevelFromEnv()),
	}
	JSONLogFlag = cli.BoolFlag{
		Name:  "jsonlog",
		Usage: "Log in JSON format (" + sense.Describe("JSONLOG") + ")",
	}
	DebugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "Prepends log messages with call-site location (file and line number)",
	}

	FormatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "Output format: text, json or toml",
		Value: "text",
	}
	NoColorFlag = cli.BoolFlag{
		Name:  "nocolor",
		Usage: "Disable colored output (" + sense.Describe("NO_COLOR") + ")",
	}

	HTTPListenAddrFlag = cli.StringFlag{
		Name:  "http.addr",
		Usage: "HTTP server listening interface",
		Value: "127.0.0.1",
	}
	HTTPPortFlag = cli.IntFlag{
		Name:  "http.port",
		Usage: "HTTP server listening port",
		Value: 8547,
	}
	HTTPCORSDomainFlag = cli.StringFlag{
		Name:  "http.corsdomain",
		Usage: "Comma separated list of domains from which to accept cross origin requests (browser enforced)",
		Value: "",
	}
	HTTPVirtualHostsFlag = cli.StringFlag{
		Name:  "http.vhosts",
		Usage: "Comma separated list of virtual hostnames from which to accept requests (server enforced). Accepts '*' wildcard.",
		Value: "localhost",
	}
)

// SetupLogging installs the root log handler from the global flags.
func SetupLogging(ctx *cli.Context, w io.Writer) error {
	lvl := ctx.GlobalInt(VerbosityFlag.Name)
	if lvl < int(log.LvlCrit) || lvl > int(log.LvlTrace) {
		return fmt.Errorf("invalid -%s %d, want %d..%d", VerbosityFlag.Name, lvl, log.LvlCrit, log.LvlTrace)
	}
	jsonlog := ctx.GlobalBool(JSONLogFlag.Name) || sense.EnvBool("JSONLOG")
	log.SetRootHandler(log.NewHandler(w, log.Lvl(lvl), jsonlog, ctx.GlobalBool(DebugFlag.Name)))
	return nil
}

// MakeHTTPConfig creates the build info server configuration from the flags.
func MakeHTTPConfig(ctx *cli.Context) (buildapi.Config, error) {
	cfg := buildapi.DefaultConfig
	port := ctx.Int(HTTPPortFlag.Name)
	if port < 0 || port > 65535 {
		return cfg, fmt.Errorf("invalid -%s %d", HTTPPortFlag.Name, port)
	}
	cfg.Addr = net.JoinHostPort(ctx.String(HTTPListenAddrFlag.Name), strconv.Itoa(port))
	cfg.CORSOrigins = SplitAndTrim(ctx.String(HTTPCORSDomainFlag.Name))
	cfg.VirtualHosts = SplitAndTrim(ctx.String(HTTPVirtualHostsFlag.Name))
	return cfg, nil
}

// SplitAndTrim splits input separated by a comma
// and trims excessive white space from the substrings.
func SplitAndTrim(input string) []string {
	var result []string
	for _, r := range strings.Split(input, ",") {
		if r = strings.TrimSpace(r); r != "" {
			result = append(result, r)
		}
	}
	return result
}
