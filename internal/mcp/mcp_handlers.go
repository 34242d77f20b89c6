package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/huangsam/examtwin/core"
	"github.com/huangsam/examtwin/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleComputeReadiness(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		args = map[string]any{}
	}
	if err := contract.ValidateInputDocument(args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	cfg := h.baseCfg.Clone()
	seed, err := contract.ApplyInputDocument(&cfg.Inputs, args)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if seed != nil {
		cfg.Seed = *seed
	}

	report, err := core.GetReadinessReport(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}
	contract.Logger().Debug("Served readiness", zap.String("run_id", report.RunID), zap.Int("readiness", report.Readiness))
	return jsonResult(report)
}

func (h *toolHandler) handleMomentumTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	readiness, err := request.RequireFloat("readiness")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if readiness != float64(int(readiness)) {
		return mcp.NewToolResultError(fmt.Sprintf("readiness must be a whole number, got %v", readiness)), nil
	}
	seed := h.baseCfg.Seed
	if s := request.GetFloat(contract.KeySeed, 0); s != 0 {
		if s < 0 || s > contract.MaxInputSeed || s != math.Trunc(s) {
			return mcp.NewToolResultError(fmt.Sprintf("seed must be a whole number between 0 and %d, got %v", uint64(contract.MaxInputSeed), s)), nil
		}
		seed = uint64(s)
	}

	result, err := core.GetMomentumTrend(core.WithSuppressHeader(ctx), int(readiness), seed)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleFormulas(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(core.BuildFormulasRenderModel())
}

// jsonResult wraps a value as an indented JSON text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
