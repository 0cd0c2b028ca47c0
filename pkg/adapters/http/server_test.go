package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/firstrun"
	"github.com/aretw0/firstrun/internal/logging"
	httpAdapter "github.com/aretw0/firstrun/pkg/adapters/http"
	"github.com/aretw0/firstrun/pkg/adapters/memory"
	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/aretw0/firstrun/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...firstrun.Option) *firstrun.Engine {
	t.Helper()
	eng, err := firstrun.New(memory.NewDetector(true, false), memory.NewStore(), opts...)
	require.NoError(t, err)
	return eng
}

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestPlanFlow(t *testing.T) {
	handler := httpAdapter.NewHandler(newEngine(t), httpAdapter.WithLogger(logging.NewNop()))

	// Before any plan
	w := do(t, handler, http.MethodGet, "/plan/count")
	require.Equal(t, http.StatusOK, w.Code)
	var count httpAdapter.PageCountResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&count))
	assert.Equal(t, 0, count.PageCount)

	// Fresh install: two pages
	w = do(t, handler, http.MethodGet, "/plan")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var plan struct {
		PageCount int `json:"page_count"`
		Pages     []struct {
			Kind  string `json:"kind"`
			Title string `json:"title"`
		} `json:"pages"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&plan))
	assert.Equal(t, 2, plan.PageCount)
	assert.Equal(t, "default_browser_promotion", plan.Pages[1].Kind)

	// Dialog shown
	w = do(t, handler, http.MethodPost, "/promotion/shown")
	require.Equal(t, http.StatusOK, w.Code)
	var promo httpAdapter.PromotionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&promo))
	assert.Equal(t, 1, promo.Count)

	// Promotion no longer offered
	w = do(t, handler, http.MethodGet, "/plan")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&plan))
	assert.Equal(t, 1, plan.PageCount)

	w = do(t, handler, http.MethodGet, "/plan/count")
	require.NoError(t, json.NewDecoder(w.Body).Decode(&count))
	assert.Equal(t, 1, count.PageCount)
}

type failingEngine struct{}

func (failingEngine) BuildPageBlueprints(ctx context.Context) (*domain.OnboardingPlan, error) {
	return nil, domain.ErrFactUnavailable
}
func (failingEngine) PageCount() int { return 0 }
func (failingEngine) RecordPromotionDialogShown(ctx context.Context) (int, error) {
	return 0, errors.New("read-only store")
}

func TestErrors(t *testing.T) {
	handler := httpAdapter.NewHandler(failingEngine{}, httpAdapter.WithLogger(logging.NewNop()))

	w := do(t, handler, http.MethodGet, "/plan")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "onboarding fact unavailable")

	w = do(t, handler, http.MethodPost, "/promotion/shown")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	handler := httpAdapter.NewHandler(newEngine(t))
	w := do(t, handler, http.MethodGet, "/promotion/shown")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	handler := httpAdapter.NewHandler(
		newEngine(t, firstrun.WithLifecycleHooks(metrics.Hooks())),
		httpAdapter.WithMetrics(reg),
		httpAdapter.WithLogger(logging.NewNop()),
	)

	require.Equal(t, http.StatusOK, do(t, handler, http.MethodGet, "/plan").Code)

	w := do(t, handler, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `firstrun_plans_built_total{promotion="true"} 1`)
	assert.Contains(t, w.Body.String(), "firstrun_plan_pages 2")
}

func TestMetricsNotMountedByDefault(t *testing.T) {
	handler := httpAdapter.NewHandler(newEngine(t))
	assert.Equal(t, http.StatusNotFound, do(t, handler, http.MethodGet, "/metrics").Code)
}
