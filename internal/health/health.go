// Package health contains the health endpoint and the Pinger contract
// subsystems implement to report their liveness.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// nolint: gochecknoglobals
var version = "dev"

// GetVersion returns service version set at build time.
func GetVersion() string {
	return version
}

// Pinger ...
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to the Pinger interface.
type PingFunc func(ctx context.Context) error

// Ping ...
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Handler returns a handler which pings every subsystem and reports 200
// only when all of them respond within the timeout.
func Handler(timeout time.Duration, pingers ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		g, gCtx := errgroup.WithContext(ctx)
		for _, p := range pingers {
			p := p
			g.Go(func() error {
				return p.Ping(gCtx)
			})
		}

		status := http.StatusOK
		body := map[string]string{"status": "ok", "version": version}

		if err := g.Wait(); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = err.Error()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body) // nolint: errcheck
	}
}
