package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/firstrun"
	"github.com/aretw0/firstrun/pkg/adapters/memory"
	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/aretw0/firstrun/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordPlans(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	store := memory.NewStore()
	eng, err := firstrun.New(memory.NewDetector(true, false), store, firstrun.WithLifecycleHooks(metrics.Hooks()))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = eng.BuildPageBlueprints(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PlansBuilt.WithLabelValues("true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.PlanPages))

	_, err = store.RecordPromotionDialogShown(ctx)
	require.NoError(t, err)
	_, err = eng.BuildPageBlueprints(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PlansBuilt.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PlanPages))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.FactReads.WithLabelValues("true")))
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	hooks := observability.LoggingHooks(logger)

	hooks.OnPlanBuilt(context.Background(), &domain.PlanEvent{
		EventBase: domain.EventBase{Type: domain.EventPlanBuilt},
		Kinds:     []domain.PageKind{domain.PageWelcome},
		PageCount: 1,
	})

	assert.Contains(t, buf.String(), "plan_built")
	assert.Contains(t, buf.String(), "pages=1")
	assert.Contains(t, buf.String(), "welcome")
}

func TestCombine(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{OnPlanBuilt: func(context.Context, *domain.PlanEvent) { order = append(order, "a") }}
	b := domain.LifecycleHooks{
		OnFactsRead: func(context.Context, *domain.FactsEvent) { order = append(order, "facts") },
		OnPlanBuilt: func(context.Context, *domain.PlanEvent) { order = append(order, "b") },
	}

	hooks := observability.Combine(a, domain.LifecycleHooks{}, b)
	hooks.OnFactsRead(context.Background(), &domain.FactsEvent{})
	hooks.OnPlanBuilt(context.Background(), &domain.PlanEvent{})

	assert.Equal(t, []string{"facts", "a", "b"}, order)
	assert.Nil(t, observability.Combine().OnPlanBuilt)
}
