// Copyright 2018 The aquachain Authors
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

package log

import (
	"os"
	"runtime/debug"

	"gitlab.com/aquachain/gembuild/common/sense"
)

var (
	StderrHandler         = newRootHandler()
	root          *logger = newRoot(StderrHandler)
)

// New returns a new logger with the given context.
// New is a convenient alias for Root().New
func New(ctx ...interface{}) LoggerI {
	return root.New(ctx...)
}

// SetRootHandler replaces the handler of the root logger and of every logger
// derived from it.
func SetRootHandler(h Handler) {
	root.SetHandler(h)
}

// Root returns the root logger
func Root() LoggerI {
	return root
}

// The following functions bypass the exported logger methods (logger.Debug,
// etc.) to keep the call depth the same for all paths to logger.write so
// runtime.Caller(2) always refers to the call site in client code.

// Trace is a convenient alias for Root().Trace
func Trace(msg string, ctx ...interface{}) {
	root.write(msg, LvlTrace, ctx)
}

// Debug is a convenient alias for Root().Debug
func Debug(msg string, ctx ...interface{}) {
	root.write(msg, LvlDebug, ctx)
}

// Info is a convenient alias for Root().Info
func Info(msg string, ctx ...interface{}) {
	root.write(msg, LvlInfo, ctx)
}

// Warn is a convenient alias for Root().Warn
func Warn(msg string, ctx ...interface{}) {
	root.write(msg, LvlWarn, ctx)
}

// Error is a convenient alias for Root().Error
func Error(msg string, ctx ...interface{}) {
	root.write(msg, LvlError, ctx)
}

// Crit is a convenient alias for Root().Crit
func Crit(msg string, ctx ...interface{}) {
	root.write(msg, LvlCrit, ctx)
	if sense.EnvBool("DEBUG") {
		println("stack trace requested (DEBUG=1)...")
		debug.PrintStack()
	}
	os.Exit(1)
}
