package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/hpps/core"
	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleScoreCandidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	raw := request.GetString("metrics_json", "")
	if raw == "" {
		return mcp.NewToolResultError("metrics_json is required"), nil
	}

	candidates, err := core.DecodeCandidates([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid metrics document: %v", err)), nil
	}
	if len(candidates) != 1 {
		return mcp.NewToolResultError(fmt.Sprintf("score_candidate expects exactly one candidate, got %d", len(candidates))), nil
	}
	if name := request.GetString("candidate", ""); name != "" {
		candidates[0].Candidate = name
	}

	result, err := core.ComputeHPPS(&candidates[0], cfg.Params, core.NewDiagnostics())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	result.ScoredAt = time.Now()

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScoreBatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	raw := request.GetString("metrics_json", "")
	if raw == "" {
		return mcp.NewToolResultError("metrics_json is required"), nil
	}

	candidates, err := core.DecodeCandidates([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid metrics document: %v", err)), nil
	}
	if len(candidates) == 0 {
		return mcp.NewToolResultError("no candidates found in metrics document"), nil
	}

	out := core.ScoreBatch(ctx, candidates, cfg.Params, cfg.Workers)
	now := time.Now()
	for i := range out.Results {
		out.Results[i].ScoredAt = now
	}
	ranked := core.RankResults(out.Results, cfg.ResultLimit)

	payload := struct {
		Results  []schema.Result     `json:"results"`
		Failures []map[string]string `json:"failures,omitempty"`
	}{Results: ranked}
	for _, f := range out.Failures {
		payload.Failures = append(payload.Failures, map[string]string{
			"candidate": f.Candidate,
			"error":     f.Err,
		})
	}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetScoreHistory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.mgr == nil {
		return mcp.NewToolResultError("score store is not initialized"), nil
	}
	store := h.mgr.GetScoreStore()
	if store == nil {
		return mcp.NewToolResultError("score store is not initialized"), nil
	}

	limit := request.GetInt("limit", contract.DefaultResultLimit)
	results, err := store.ListResults(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
