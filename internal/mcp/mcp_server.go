// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names exposed by the server.
const (
	ToolComputeReadiness = "compute_readiness"
	ToolMomentumTrend    = "get_momentum_trend"
	ToolFormulas         = "get_formulas"
)

// NewMCPServer initializes and configures the examtwin MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Exam Readiness Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: compute_readiness ---
	s.AddTool(mcp.NewTool(ToolComputeReadiness,
		mcp.WithDescription("Compute the IELTS readiness dashboard: projected band, readiness percent, zone, risk, confidence and momentum trend. Omitted inputs fall back to the configured values."),
		mcp.WithNumber(contract.KeyTargetBand, mcp.Description("Target overall band (5-9, step 0.5)."), mcp.Min(schema.MinTargetBand), mcp.Max(schema.MaxTargetBand)),
		mcp.WithNumber(contract.KeyExamDays, mcp.Description("Days until the exam (7-180)."), mcp.Min(schema.MinExamDays), mcp.Max(schema.MaxExamDays)),
		mcp.WithNumber(contract.KeyListening, mcp.Description("Listening band (0-9, step 0.5)."), mcp.Min(schema.MinSectionBand), mcp.Max(schema.MaxSectionBand)),
		mcp.WithNumber(contract.KeyReading, mcp.Description("Reading band (0-9, step 0.5)."), mcp.Min(schema.MinSectionBand), mcp.Max(schema.MaxSectionBand)),
		mcp.WithNumber(contract.KeyWriting, mcp.Description("Writing band (0-9, step 0.5)."), mcp.Min(schema.MinSectionBand), mcp.Max(schema.MaxSectionBand)),
		mcp.WithNumber(contract.KeySpeaking, mcp.Description("Speaking band (0-9, step 0.5)."), mcp.Min(schema.MinSectionBand), mcp.Max(schema.MaxSectionBand)),
		mcp.WithNumber(contract.KeyAccuracy, mcp.Description("Practice accuracy percent (0-100)."), mcp.Min(schema.MinAccuracy), mcp.Max(schema.MaxAccuracy)),
		mcp.WithNumber(contract.KeyConsistency, mcp.Description("Study days per week (0-7)."), mcp.Min(schema.MinConsistency), mcp.Max(schema.MaxConsistency)),
		mcp.WithNumber(contract.KeyMocksTaken, mcp.Description("Mock tests taken (0-10)."), mcp.Min(schema.MinMocks), mcp.Max(schema.MaxMocks)),
		mcp.WithNumber(contract.KeySeed, mcp.Description("Seed for the momentum trend. 0 or omitted draws a fresh trend."), mcp.Min(0), mcp.Max(contract.MaxInputSeed)),
	), h.handleComputeReadiness)

	// --- 2. Tool: get_momentum_trend ---
	s.AddTool(mcp.NewTool(ToolMomentumTrend,
		mcp.WithDescription("Generate the synthetic four-point momentum trend ending at a readiness percent."),
		mcp.WithNumber("readiness", mcp.Description("Current readiness percent (0-100)."), mcp.Required(), mcp.Min(0), mcp.Max(schema.MaxReadiness)),
		mcp.WithNumber(contract.KeySeed, mcp.Description("Seed for the trend. 0 or omitted draws a fresh trend.")),
	), h.handleMomentumTrend)

	// --- 3. Tool: get_formulas ---
	s.AddTool(mcp.NewTool(ToolFormulas,
		mcp.WithDescription("Describe every formula, weight and threshold behind the readiness dashboard."),
	), h.handleFormulas)

	return s
}

// StartMCPServer starts the examtwin MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, version string) error {
	s := NewMCPServer(baseCfg, version)
	return server.ServeStdio(s)
}
