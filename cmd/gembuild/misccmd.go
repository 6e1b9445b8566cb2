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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli"
	"gitlab.com/aquachain/gembuild/buildinfo"
	"gitlab.com/aquachain/gembuild/cmd/utils"
	"gitlab.com/aquachain/gembuild/common/log"
	"gitlab.com/aquachain/gembuild/common/sense"
	"gitlab.com/aquachain/gembuild/common/toml"
)

var (
	versionCommand = cli.Command{
		Action:    version,
		Name:      "version",
		Usage:     "Print the build summary",
		ArgsUsage: " ",
		Category:  "MISCELLANEOUS COMMANDS",
		Description: `
The output of this command is supposed to be machine-readable.
`,
	}
	infoCommand = cli.Command{
		Action:    info,
		Name:      "info",
		Usage:     "Print every build information field",
		ArgsUsage: " ",
		Category:  "BUILD INFO COMMANDS",
		Flags: []cli.Flag{
			utils.FormatFlag,
			utils.NoColorFlag,
		},
		Description: `
The info command prints the release, release date, revision, build date,
compiler and builder of this binary. Use -format json or -format toml
for machine-readable output.
`,
	}
	licenseCommand = cli.Command{
		Action:    license,
		Name:      "license",
		Usage:     "Display license information",
		ArgsUsage: " ",
		Category:  "MISCELLANEOUS COMMANDS",
	}
)

func version(ctx *cli.Context) error {
	_, err := fmt.Fprintln(ctx.App.Writer, buildinfo.String())
	return err
}

func info(ctx *cli.Context) error {
	b := buildinfo.Get()
	if !buildinfo.Injected() {
		log.Debug("build info was not set by the linker, showing development values")
	}
	w := ctx.App.Writer
	switch format := ctx.String(utils.FormatFlag.Name); format {
	case "text", "":
		nocolor := ctx.Bool(utils.NoColorFlag.Name) || sense.EnvBool("NO_COLOR")
		return writeText(w, b, nocolor)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	case "toml":
		return toml.NewEncoder(w).Encode(b)
	default:
		return fmt.Errorf("unknown -%s %q, want text, json or toml", utils.FormatFlag.Name, format)
	}
}

// writeText prints aligned labels, colored when w is a terminal.
func writeText(w io.Writer, b buildinfo.BuildInfo, nocolor bool) error {
	label := color.New(color.FgCyan, color.Bold)
	if f, ok := w.(*os.File); ok && !nocolor && isatty.IsTerminal(f.Fd()) {
		label.EnableColor()
		w = colorable.NewColorable(f)
	} else {
		label.DisableColor()
	}
	rows := []struct{ k, v string }{
		{"Release", fmt.Sprintf("%s (%04d-%02d-%02d)", b.Release, b.ReleaseYear, b.ReleaseMonth, b.ReleaseDay)},
		{"Revision", b.Revision},
		{"Build Date", b.Date},
		{"Compiler", b.Compiler},
		{"Machine", b.Machine},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s %s\n", label.Sprintf("%-11s", r.k+":"), r.v); err != nil {
			return err
		}
	}
	return nil
}

func license(ctx *cli.Context) error {
	_, err := fmt.Fprintln(ctx.App.Writer, `gembuild is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

gembuild is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with gembuild. If not, see <http://www.gnu.org/licenses/>.`)
	return err
}
