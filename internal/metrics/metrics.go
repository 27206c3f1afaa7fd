// Package metrics exposes Prometheus instruments for dialog and scroll-lock
// activity. A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "popup_modal"

// Metrics implements the observer interfaces of the scroll lock coordinator
// and the modal controller.
type Metrics struct {
	Holders    prometheus.Gauge
	Engages    prometheus.Counter
	Releases   prometheus.Counter
	Opens      prometheus.Counter
	Closes     prometheus.Counter
	Dismissals *prometheus.CounterVec
}

// New creates the instruments and registers them with reg. A nil registerer
// leaves them unregistered, which suits tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Holders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scroll_lock_holders",
			Help:      "Number of overlays currently holding the page scroll lock.",
		}),
		Engages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scroll_lock_engages_total",
			Help:      "Scroll lock engagements.",
		}),
		Releases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scroll_lock_releases_total",
			Help:      "Scroll lock releases of a held lock.",
		}),
		Opens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modal_opens_total",
			Help:      "Dialog open transitions.",
		}),
		Closes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modal_closes_total",
			Help:      "Dialog close transitions, including unmount while open.",
		}),
		Dismissals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modal_dismiss_requests_total",
			Help:      "Dismiss requests by trigger and whether a handler received them.",
		}, []string{"trigger", "handled"}),
	}
	if reg != nil {
		reg.MustRegister(m.Holders, m.Engages, m.Releases, m.Opens, m.Closes, m.Dismissals)
	}
	return m
}

func (m *Metrics) LockEngaged(string) {
	if m == nil {
		return
	}
	m.Engages.Inc()
}

func (m *Metrics) LockReleased(string) {
	if m == nil {
		return
	}
	m.Releases.Inc()
}

func (m *Metrics) LockHolders(n int) {
	if m == nil {
		return
	}
	m.Holders.Set(float64(n))
}

func (m *Metrics) ModalOpened(string) {
	if m == nil {
		return
	}
	m.Opens.Inc()
}

func (m *Metrics) ModalClosed(string) {
	if m == nil {
		return
	}
	m.Closes.Inc()
}

func (m *Metrics) DismissRequested(_ string, trigger string, handled bool) {
	if m == nil {
		return
	}
	h := "false"
	if handled {
		h = "true"
	}
	m.Dismissals.WithLabelValues(trigger, h).Inc()
}
