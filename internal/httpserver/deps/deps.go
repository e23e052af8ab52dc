package deps

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MrSnakeDoc/marketmarket/internal/catalog"
	"github.com/MrSnakeDoc/marketmarket/internal/logger"
	"github.com/MrSnakeDoc/marketmarket/internal/session"
	"github.com/MrSnakeDoc/marketmarket/internal/view"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	AllowedHosts []string // Host headers allowed to access the API
	AllowedCIDRS []string // IPs allowed to access healthz/readyz/infra/metrics
	TrustProxy   bool     // true if running behind a trusted reverse proxy (e.g., cloudflared)

	RateBurst        int // session mutations allowed in a burst, per client IP
	RateRefillPerMin int // tokens refilled per minute, per client IP

	Catalog  *catalog.Store      // immutable listing catalog
	Sessions *session.Service    // per-client view state
	Pages    *view.Builder       // view-model builder for the render surfaces
	Gatherer prometheus.Gatherer // source for /metrics (nil disables the route)
}

// Now returns the current time through TimeNow when set.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
