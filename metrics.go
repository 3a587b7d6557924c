package governance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes.
const (
	outcomeCommitted = "committed"
	outcomeRejected  = "rejected"
)

// Execution paths.
const (
	pathTimelock   = "timelock"
	pathMultisig   = "multisig"
	pathStandalone = "standalone"
)

type metrics struct {
	calls      *prometheus.CounterVec
	executions *prometheus.CounterVec
	scheduled  prometheus.Gauge
}

// newMetrics creates the collectors and registers them on registerer, if not nil.
func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)

	return &metrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "governance_calls_total",
			Help: "governance calls by method and outcome",
		}, []string{"method", "outcome"}),
		executions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "governance_executions_total",
			Help: "target invocations by execution path",
		}, []string{"path"}),
		scheduled: factory.NewGauge(prometheus.GaugeOpts{
			Name: "governance_scheduled_timelocks",
			Help: "number of scheduled timelocked proposals",
		}),
	}
}

func (m *metrics) observeCall(method, outcome string) {
	m.calls.WithLabelValues(method, outcome).Inc()
}

func (m *metrics) observeExecution(path string) {
	m.executions.WithLabelValues(path).Inc()
}

func (m *metrics) setScheduled(n int) {
	m.scheduled.Set(float64(n))
}
