// Copyright 2026 The Moody Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package web implements the web pages of the Moody chart calculator
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/InsuvaiK/moody/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
)

// Server holds the web application
type Server struct {
	cfg *inp.Config    // read-only after NewServer
	mux *http.ServeMux // routes
}

// NewServer returns a new server
func NewServer(cfg *inp.Config) *Server {
	if cfg == nil {
		cfg = inp.DefaultConfig()
	}
	o := &Server{cfg: cfg, mux: http.NewServeMux()}
	o.mux.HandleFunc("GET /{$}", o.handleRoot)
	o.mux.HandleFunc("GET /section", o.handleNav)
	o.mux.HandleFunc("GET /section/{name}", o.handleSection)
	o.mux.HandleFunc("GET /api/calc", o.handleCalc)
	o.mux.HandleFunc("GET /chart.svg", o.handleChart)
	return o
}

// Handler returns the http handler with request logging
func (o *Server) Handler() http.Handler {
	return o.logRequests(o.mux)
}

// ListenAndServe serves requests until ctx is cancelled
func (o *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              o.cfg.Addr,
		Handler:           o.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		done <- srv.Shutdown(c)
	}()
	if o.cfg.Verbose {
		io.PfWhite("serving Moody chart on %s\n", o.cfg.Addr)
	}
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return chk.Err("server failed:\n%v", err)
	}
	return <-done
}

// statusWriter records the status code of a response
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// logRequests tags each request with an id and prints one line per request
func (o *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		if !o.cfg.Verbose {
			return
		}
		if sw.status >= 400 {
			io.PfRed("%s %s %s %d %v\n", id, r.Method, r.URL.Path, sw.status, time.Since(start))
			return
		}
		io.Pf("%s %s %s %d %v\n", id, r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}
