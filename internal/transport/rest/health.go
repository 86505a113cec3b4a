package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

// Overall and per-component health states.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusDown     = "down"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to the pinger interface.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type component struct {
	name     string
	pinger   pinger
	critical bool
}

// HealthHandler serves the liveness, readiness and health endpoints.
// Postgres is critical. Redis only feeds inbound dedup, so losing it degrades
// the service without taking it out of rotation.
type HealthHandler struct {
	components []component
	version    string
	now        func() time.Time
}

// NewHealthHandler builds the handler. cache may be nil when Redis is not
// configured, in which case it is not reported.
func NewHealthHandler(db pinger, cache pinger, version string) *HealthHandler {
	h := &HealthHandler{
		components: []component{{name: "database", pinger: db, critical: true}},
		version:    version,
		now:        time.Now,
	}
	if cache != nil {
		h.components = append(h.components, component{name: "redis", pinger: cache})
	}
	return h
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK, Timestamp: h.now()})
}

// Ready answers 503 only when a critical component is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, _ := h.check(r.Context())
	writeJSON(w, httpStatus(overall), HealthResponse{Status: overall, Timestamp: h.now()})
}

// Health reports every component with its latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, components := h.check(r.Context())
	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

// check pings all components concurrently under one timeout.
func (h *HealthHandler) check(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make(map[string]CompStatus, len(h.components))
		overall = StatusOK
	)

	var g errgroup.Group
	for _, c := range h.components {
		g.Go(func() error {
			start := time.Now()
			err := c.pinger.Ping(ctx)
			latency := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				results[c.name] = CompStatus{Status: StatusOK, Latency: latency.String()}
			case c.critical:
				results[c.name] = CompStatus{Status: StatusDown}
				overall = StatusDown
			default:
				results[c.name] = CompStatus{Status: StatusDegraded}
				if overall == StatusOK {
					overall = StatusDegraded
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	return overall, results
}

func httpStatus(overall string) int {
	if overall == StatusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
