package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	PlansBuilt *prometheus.CounterVec
	PlanPages  prometheus.Gauge
	FactReads  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		PlansBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "firstrun_plans_built_total",
				Help: "Total number of onboarding plans built",
			},
			[]string{"promotion"},
		),
		PlanPages: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "firstrun_plan_pages",
				Help: "Number of pages in the most recently built plan",
			},
		),
		FactReads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "firstrun_fact_reads_total",
				Help: "Total number of fact snapshots, by default handler capability",
			},
			[]string{"supported"},
		),
	}

	for _, c := range []prometheus.Collector{m.PlansBuilt, m.PlanPages, m.FactReads} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFactsRead: func(ctx context.Context, e *domain.FactsEvent) {
			m.FactReads.WithLabelValues(strconv.FormatBool(e.Facts.DeviceSupportsDefaultHandlerConfiguration)).Inc()
		},
		OnPlanBuilt: func(ctx context.Context, e *domain.PlanEvent) {
			m.PlansBuilt.WithLabelValues(strconv.FormatBool(e.Promotion)).Inc()
			m.PlanPages.Set(float64(e.PageCount))
		},
	}
}
