package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aretw0/firstrun"
	"github.com/aretw0/firstrun/internal/logging"
	"github.com/aretw0/firstrun/pkg/adapters/memory"
	"github.com/aretw0/firstrun/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng, err := firstrun.New(memory.NewDetector(true, false), memory.NewStore())
	require.NoError(t, err)
	return NewServer(eng, WithLogger(logging.NewNop()))
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestTools_PlanFlow(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.handlePageCount(ctx, mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"page_count":0}`, resultText(t, res))

	res, err = s.handleBuildPlan(ctx, mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var plan struct {
		PageCount int `json:"page_count"`
		Pages     []struct {
			Kind string `json:"kind"`
		} `json:"pages"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &plan))
	assert.Equal(t, 2, plan.PageCount)
	assert.Equal(t, "default_browser_promotion", plan.Pages[1].Kind)

	res, err = s.handleRecordPromotionShown(ctx, mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":1}`, resultText(t, res))

	_, err = s.handleBuildPlan(ctx, mcp.CallToolRequest{})
	require.NoError(t, err)
	res, err = s.handlePageCount(ctx, mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"page_count":1}`, resultText(t, res))
}

type failingEngine struct{}

func (failingEngine) BuildPageBlueprints(ctx context.Context) (*domain.OnboardingPlan, error) {
	return nil, domain.ErrFactUnavailable
}
func (failingEngine) PageCount() int { return 0 }
func (failingEngine) RecordPromotionDialogShown(ctx context.Context) (int, error) {
	return 0, errors.New("read-only store")
}

func TestTools_ErrorsAreToolResults(t *testing.T) {
	s := NewServer(failingEngine{}, WithLogger(logging.NewNop()))
	ctx := context.Background()

	res, err := s.handleBuildPlan(ctx, mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "onboarding fact unavailable")

	res, err = s.handleRecordPromotionShown(ctx, mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "read-only store")
}

func TestServer_ListsTools(t *testing.T) {
	s := newTestServer(t)

	resp := s.MCPServer().HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	for _, name := range []string{ToolBuildPlan, ToolPageCount, ToolRecordPromotionShown} {
		assert.Contains(t, string(data), `"`+name+`"`)
	}
}
