package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "marketmarket"

// Metrics groups the collectors exported on /metrics.
// All methods are safe on a nil receiver so callers can run without metrics.
type Metrics struct {
	commands        *prometheus.CounterVec
	sessionsCreated prometheus.Counter
	sessionsExpired prometheus.Counter
	visibleListings prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "View state commands applied, by command and result.",
		}, []string{"command", "result"}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Sessions opened.",
		}),
		sessionsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_expired_total",
			Help:      "Idle sessions evicted by the sweeper.",
		}),
		visibleListings: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "visible_listings",
			Help:      "Number of listings left after filtering.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
	}

	for _, c := range []prometheus.Collector{m.commands, m.sessionsCreated, m.sessionsExpired, m.visibleListings} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Command records one applied command. result is "ok" or an error class.
func (m *Metrics) Command(name, result string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(name, result).Inc()
}

func (m *Metrics) SessionCreated() {
	if m == nil {
		return
	}
	m.sessionsCreated.Inc()
}

func (m *Metrics) SessionsExpired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.sessionsExpired.Add(float64(n))
}

func (m *Metrics) Visible(n int) {
	if m == nil {
		return
	}
	m.visibleListings.Observe(float64(n))
}
