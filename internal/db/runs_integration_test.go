//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db, err := Connect(context.Background(), databaseURL)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	return db
}

func createTestRun(t *testing.T, db *DB, ctx context.Context) uuid.UUID {
	t.Helper()
	runID, err := db.CreateRun(ctx, "TestCorp", "Backend Engineer", "https://example.com/job", 85)
	if err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}
	return runID
}

func cleanupTestRun(t *testing.T, db *DB, runID uuid.UUID) {
	t.Helper()
	if err := db.DeleteRun(context.Background(), runID); err != nil {
		t.Logf("cleanup: %v", err)
	}
}

func TestIntegration_RunLifecycle(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	runID := createTestRun(t, db, ctx)
	defer cleanupTestRun(t, db, runID)

	t.Run("get run", func(t *testing.T) {
		run, err := db.GetRun(ctx, runID)
		if err != nil {
			t.Fatalf("GetRun failed: %v", err)
		}
		if run == nil {
			t.Fatal("run not found")
		}
		if run.Status != StatusRunning {
			t.Errorf("Status = %q, want running", run.Status)
		}
		if run.TargetScore != 85 {
			t.Errorf("TargetScore = %v, want 85", run.TargetScore)
		}
	})

	t.Run("complete run", func(t *testing.T) {
		finalScore := 78.5
		if err := db.CompleteRun(ctx, runID, StatusCompleted, &finalScore); err != nil {
			t.Fatalf("CompleteRun failed: %v", err)
		}

		run, err := db.GetRun(ctx, runID)
		if err != nil {
			t.Fatalf("GetRun failed: %v", err)
		}
		if run.Status != StatusCompleted {
			t.Errorf("Status = %q, want completed", run.Status)
		}
		if run.FinalScore == nil || *run.FinalScore != 78.5 {
			t.Errorf("FinalScore = %v, want 78.5", run.FinalScore)
		}
		if run.CompletedAt == nil {
			t.Error("CompletedAt should be set")
		}
	})

	t.Run("list runs filtered", func(t *testing.T) {
		runs, err := db.ListRuns(ctx, RunFilters{Company: "TestCorp", Limit: 10})
		if err != nil {
			t.Fatalf("ListRuns failed: %v", err)
		}
		if len(runs) == 0 {
			t.Error("expected at least one run")
		}
	})
}

func TestIntegration_Artifacts(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	runID := createTestRun(t, db, ctx)
	defer cleanupTestRun(t, db, runID)

	t.Run("save and load match report", func(t *testing.T) {
		report := &types.MatchReport{
			OverallScore:  61.0,
			SkillScore:    50.0,
			MatchedSkills: []string{"Go"},
			MissingSkills: []string{"Kubernetes"},
			TotalRequired: 2,
			Method:        "basic_tfidf",
		}
		if err := db.SaveMatchReport(ctx, runID, report); err != nil {
			t.Fatalf("SaveMatchReport failed: %v", err)
		}

		loaded, err := db.GetMatchReportByRunID(ctx, runID)
		if err != nil {
			t.Fatalf("GetMatchReportByRunID failed: %v", err)
		}
		if loaded == nil {
			t.Fatal("report not found")
		}
		if loaded.OverallScore != 61.0 {
			t.Errorf("OverallScore = %v, want 61.0", loaded.OverallScore)
		}
	})

	t.Run("upsert replaces artifact", func(t *testing.T) {
		report := &types.MatchReport{OverallScore: 70.0, Method: "basic_tfidf"}
		if err := db.SaveMatchReport(ctx, runID, report); err != nil {
			t.Fatalf("SaveMatchReport failed: %v", err)
		}

		loaded, err := db.GetMatchReportByRunID(ctx, runID)
		if err != nil {
			t.Fatalf("GetMatchReportByRunID failed: %v", err)
		}
		if loaded.OverallScore != 70.0 {
			t.Errorf("OverallScore = %v, want 70.0 after upsert", loaded.OverallScore)
		}
	})

	t.Run("missing artifact returns nil", func(t *testing.T) {
		plan, err := db.GetImprovementPlanByRunID(ctx, runID)
		if err != nil {
			t.Fatalf("GetImprovementPlanByRunID failed: %v", err)
		}
		if plan != nil {
			t.Error("expected nil for unsaved artifact")
		}
	})

	t.Run("optimization result with resume text", func(t *testing.T) {
		result := &types.OptimizationResult{
			OptimizedResume: "optimized resume body",
			OriginalScore:   54.0,
			FinalScore:      72.0,
			Improvement:     18.0,
			StrategyUsed:    "keyword_optimization",
		}
		if err := db.SaveOptimizationResult(ctx, runID, result); err != nil {
			t.Fatalf("SaveOptimizationResult failed: %v", err)
		}

		text, err := db.GetOptimizedResumeByRunID(ctx, runID)
		if err != nil {
			t.Fatalf("GetOptimizedResumeByRunID failed: %v", err)
		}
		if text != "optimized resume body" {
			t.Errorf("resume text = %q", text)
		}

		summaries, err := db.ListArtifacts(ctx, runID)
		if err != nil {
			t.Fatalf("ListArtifacts failed: %v", err)
		}
		if len(summaries) < 3 {
			t.Errorf("artifact count = %d, want at least 3", len(summaries))
		}
	})
}
