package handlers

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts state changes made through the sandbox API.
type Metrics struct {
	Mutations *prometheus.CounterVec
}

// NewMetrics registers the sandbox counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sandbox_mutations_total",
			Help: "Charges and disputes created or changed, by resource and operation.",
		}, []string{"resource", "operation"}),
	}

	reg.MustRegister(m.Mutations)

	return m
}

func (m *Metrics) mutated(resource, operation string) {
	if m == nil {
		return
	}

	m.Mutations.WithLabelValues(resource, operation).Inc()
}
