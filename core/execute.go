package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/internal/outwriter"
	"github.com/huangsam/hpps/schema"
)

// ExecuteScore scores a single candidate from the configured metrics
// document and writes the result in the configured output format.
func ExecuteScore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	candidates, err := LoadCandidates(cfg.InputPath)
	if err != nil {
		return err
	}
	if len(candidates) != 1 {
		return fmt.Errorf("score expects exactly one candidate, got %d (use 'hpps batch' for arrays)", len(candidates))
	}

	start := time.Now()
	runID := beginRun(mgr, cfg, start, 1)

	result, err := ComputeHPPS(&candidates[0], cfg.Params, NewDiagnostics())
	if err != nil {
		return err
	}
	result.ScoredAt = start

	recordResults(mgr, runID, []schema.Result{*result})
	endRun(mgr, runID, 1)

	ow := outwriter.NewOutWriter()
	return ow.WriteResults([]schema.Result{*result}, nil, cfg, time.Since(start))
}

// ExecuteBatch scores every candidate in the configured metrics document
// with a worker pool, ranks survivors by final score, and writes both the
// ranked results and any per-candidate failures.
func ExecuteBatch(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	candidates, err := LoadCandidates(cfg.InputPath)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return errors.New("no candidates found in metrics document")
	}

	start := time.Now()
	runID := beginRun(mgr, cfg, start, len(candidates))

	out := ScoreBatch(ctx, candidates, cfg.Params, cfg.Workers)
	for i := range out.Results {
		out.Results[i].ScoredAt = start
	}
	ranked := RankResults(out.Results, cfg.ResultLimit)

	recordResults(mgr, runID, ranked)
	endRun(mgr, runID, len(ranked))

	ow := outwriter.NewOutWriter()
	return ow.WriteResults(ranked, out.Failures, cfg, time.Since(start))
}

// ExecuteMetrics prints the active weight tables and penalty settings.
func ExecuteMetrics(cfg *contract.Config) error {
	ow := outwriter.NewOutWriter()
	return ow.WriteMetricsDefinitions(cfg)
}

// beginRun starts store tracking for a scoring run. Store problems degrade
// to warnings; they never block scoring.
func beginRun(mgr contract.StoreManager, cfg *contract.Config, start time.Time, total int) int64 {
	store := storeOf(mgr)
	if store == nil {
		return 0
	}
	configParams := map[string]any{
		"workers":      cfg.Workers,
		"result_limit": cfg.ResultLimit,
		"candidates":   total,
		"exclude_la":   cfg.Params.ExcludeLAFromPenalty,
	}
	runID, err := store.BeginRun(start, configParams)
	if err != nil {
		contract.LogWarn("Score tracking initialization failed", err)
		return 0
	}
	return runID
}

func recordResults(mgr contract.StoreManager, runID int64, results []schema.Result) {
	store := storeOf(mgr)
	if store == nil || runID <= 0 {
		return
	}
	for _, r := range results {
		if err := store.RecordResult(runID, r); err != nil {
			contract.LogWarn(fmt.Sprintf("Failed to record result for %s", r.Candidate), err)
		}
	}
}

func endRun(mgr contract.StoreManager, runID int64, total int) {
	store := storeOf(mgr)
	if store == nil || runID <= 0 {
		return
	}
	if err := store.EndRun(runID, time.Now(), total); err != nil {
		contract.LogWarn("Failed to finalize score tracking", err)
	}
}

func storeOf(mgr contract.StoreManager) contract.ScoreStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetScoreStore()
}
