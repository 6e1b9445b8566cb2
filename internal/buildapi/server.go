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

// Package buildapi serves build information over read-only HTTP.
package buildapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"gitlab.com/aquachain/gembuild/buildinfo"
	"gitlab.com/aquachain/gembuild/common/log"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"

	PathInfo    = "/buildinfo"
	PathSummary = "/buildinfo/summary"

	shutdownTimeout = 5 * time.Second
)

// Config of the HTTP endpoint.
type Config struct {
	Addr         string
	CORSOrigins  []string // CORS is disabled when empty
	VirtualHosts []string // accepted Host header names, "*" for any
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig listens on localhost only.
var DefaultConfig = Config{
	Addr:         "127.0.0.1:8547",
	VirtualHosts: []string{"localhost"},
	ReadTimeout:  2 * time.Second,
	WriteTimeout: 2 * time.Second,
}

// NewHandler returns the routes for info with host, CORS and access log
// handling applied (in that order).
func NewHandler(info buildinfo.BuildInfo, cfg Config) http.Handler {
	router := httprouter.New()
	router.HandleMethodNotAllowed = true
	router.GET(PathInfo, infoHandler(info))
	router.GET(PathSummary, summaryHandler(info.String()))
	return newVHostHandler(cfg.VirtualHosts, newCorsHandler(newLoggedHandler(router), cfg.CORSOrigins))
}

// New creates the HTTP server for info.
func New(info buildinfo.BuildInfo, cfg Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      NewHandler(info, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}
}

// Serve runs srv on ln until ctx is done, then shuts it down gracefully.
// A closed server is not an error.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	log.Info("serving build info", "addr", ln.Addr().String())
	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	log.Info("stopping build info server", "cause", context.Cause(ctx))
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func infoHandler(info buildinfo.BuildInfo) httprouter.Handle {
	body, err := json.MarshalIndent(info, "", " ")
	if err != nil {
		// plain struct of strings and integers
		panic(err)
	}
	body = append(body, '\n')
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("content-type", contentTypeJSON)
		w.Write(body)
	}
}

func summaryHandler(summary string) httprouter.Handle {
	body := []byte(summary + "\n")
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("content-type", contentTypeText)
		w.Write(body)
	}
}
