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

package main

import (
	"fmt"
	"net"

	"github.com/urfave/cli"
	"gitlab.com/aquachain/gembuild/buildinfo"
	"gitlab.com/aquachain/gembuild/cmd/utils"
	"gitlab.com/aquachain/gembuild/internal/buildapi"
)

var serveCommand = cli.Command{
	Action:    serve,
	Name:      "serve",
	Usage:     "Serve build information over HTTP",
	ArgsUsage: " ",
	Category:  "BUILD INFO COMMANDS",
	Flags: []cli.Flag{
		utils.HTTPListenAddrFlag,
		utils.HTTPPortFlag,
		utils.HTTPCORSDomainFlag,
		utils.HTTPVirtualHostsFlag,
	},
	Description: `
The serve command answers GET ` + buildapi.PathInfo + ` with JSON and
GET ` + buildapi.PathSummary + ` with the one line summary, until interrupted.
`,
}

func serve(ctx *cli.Context) error {
	cfg, err := utils.MakeHTTPConfig(ctx)
	if err != nil {
		return err
	}
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	mainctx, stop := mainContext()
	defer stop()
	return buildapi.Serve(mainctx, buildapi.New(buildinfo.Get(), cfg), ln)
}
