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

// gembuild reports how the running binary was built.
package main

import (
	"os"
	"sort"

	"github.com/urfave/cli"
	"gitlab.com/aquachain/gembuild/buildinfo"
	"gitlab.com/aquachain/gembuild/cmd/utils"
)

const (
	clientIdentifier = "gembuild"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = clientIdentifier
	app.Usage = "firmware build provenance"
	app.Version = buildinfo.Get().Revision
	app.HideVersion = true // we have a command to print the version
	app.Copyright = "Copyright 2018-2021 The aquachain Authors"
	app.Flags = []cli.Flag{
		utils.VerbosityFlag,
		utils.JSONLogFlag,
		utils.DebugFlag,
	}
	sort.Sort(cli.FlagsByName(app.Flags))

	app.Commands = []cli.Command{
		// See misccmd.go:
		versionCommand,
		infoCommand,
		licenseCommand,
		// See servecmd.go:
		serveCommand,
	}
	app.Action = version // default command is 'version'
	app.Before = func(ctx *cli.Context) error {
		return utils.SetupLogging(ctx, os.Stderr)
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		utils.Fatalf("%v", err)
	}
}
