package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/firstrun"
	"github.com/aretw0/firstrun/internal/presentation/graph"
	"github.com/aretw0/firstrun/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool and resource names exposed to agents.
const (
	ToolBuildPlan            = "build_plan"
	ToolPageCount            = "page_count"
	ToolRecordPromotionShown = "record_promotion_shown"

	DecisionGraphURI = "firstrun://decision-graph"
)

// Engine defines the interface required by the MCP server to interact with firstrun.
type Engine interface {
	ports.PlanService
}

// PageCountResult is the payload of the page_count tool.
type PageCountResult struct {
	PageCount int `json:"page_count"`
}

// PromotionResult is the payload of the record_promotion_shown tool.
type PromotionResult struct {
	Count int `json:"count"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used for tool failures. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		logger:    slog.Default(),
		mcpServer: server.NewMCPServer("firstrun-mcp", firstrun.Version),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, e.g. for custom transports.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP endpoints over SSE until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(ToolBuildPlan,
		mcp.WithDescription("Read the current onboarding facts and build the list of pages to show on first launch."),
	), s.handleBuildPlan)

	s.mcpServer.AddTool(mcp.NewTool(ToolPageCount,
		mcp.WithDescription("Number of pages in the most recently built plan (0 if none was built)."),
	), s.handlePageCount)

	s.mcpServer.AddTool(mcp.NewTool(ToolRecordPromotionShown,
		mcp.WithDescription("Record that the default browser promotion dialog was shown. Returns the new count."),
	), s.handleRecordPromotionShown)
}

func (s *Server) handleBuildPlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plan, err := s.engine.BuildPageBlueprints(ctx)
	if err != nil {
		s.logger.Error("MCP build_plan failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("build plan failed: %v", err)), nil
	}
	return jsonResult(plan)
}

func (s *Server) handlePageCount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(PageCountResult{PageCount: s.engine.PageCount()})
}

func (s *Server) handleRecordPromotionShown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count, err := s.engine.RecordPromotionDialogShown(ctx)
	if err != nil {
		s.logger.Error("MCP record_promotion_shown failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("record failed: %v", err)), nil
	}
	return jsonResult(PromotionResult{Count: count})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(DecisionGraphURI, "Onboarding decision flowchart",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      DecisionGraphURI,
				MIMEType: "text/plain",
				Text:     graph.GenerateMermaid(nil),
			},
		}, nil
	})
}
