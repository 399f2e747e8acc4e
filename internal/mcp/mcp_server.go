// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the HPPS MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"HPPS Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: score_candidate ---
	s.AddTool(mcp.NewTool("score_candidate",
		mcp.WithDescription("Score a single candidate from a JSON metrics object and return the full HPPS result."),
		mcp.WithString("metrics_json", mcp.Description("JSON object with the candidate's raw metrics (cf_rating, lc_rating, real_projects_count, ...)."), mcp.Required()),
		mcp.WithString("candidate", mcp.Description("Candidate identifier to attach to the result.")),
	), h.handleScoreCandidate)

	// --- 2. Tool: score_batch ---
	s.AddTool(mcp.NewTool("score_batch",
		mcp.WithDescription("Score a JSON array of candidate metrics objects and return results ranked by final HPPS."),
		mcp.WithString("metrics_json", mcp.Description("JSON array of candidate metrics objects."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked results returned.")),
	), h.handleScoreBatch)

	// --- 3. Tool: get_score_history ---
	s.AddTool(mcp.NewTool("get_score_history",
		mcp.WithDescription("Retrieve previously scored candidates from the score store, newest first."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of stored results returned.")),
	), h.handleGetScoreHistory)

	return s
}

// StartMCPServer starts the HPPS MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
