package analyzer

import (
	"testing"

	"github.com/standardbeagle/tqa/internal/config"
	"github.com/standardbeagle/tqa/internal/model"
)

func TestAnalyzeMissingTranslations(t *testing.T) {
	file := model.NewTranslationFile("strings.json", model.FormatJSON, []byte("{}"))
	file.AddUnit("a.b", "Hello {name}!", "")
	file.AddUnit("a.c", "Save", "")

	result, err := Analyze(file, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byUnit := make(map[int]bool)
	for _, issue := range result.Issues {
		if issue.Type == model.IssueMissingTranslation {
			byUnit[issue.UnitIndex] = true
		}
	}
	if !byUnit[1] || !byUnit[2] {
		t.Fatalf("expected both units to carry a missing_translation issue, got %v", byUnit)
	}
}

func TestAnalyzeStatisticClosure(t *testing.T) {
	file := model.NewTranslationFile("strings.json", model.FormatJSON, []byte("{}"))
	file.AddUnit("a", "Save", "")
	file.AddUnit("b", "Cancel", "  ")

	result, err := Analyze(file, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := result.Stats.Errors + result.Stats.Warnings + result.Stats.Info
	if sum != result.Stats.Total {
		t.Errorf("expected errors+warnings+info=%d, got %d", result.Stats.Total, sum)
	}

	var byTypeSum int
	for _, count := range result.Stats.ByType {
		byTypeSum += count
	}
	if byTypeSum != result.Stats.Total {
		t.Errorf("expected by-type sum=%d, got %d", result.Stats.Total, byTypeSum)
	}
}

func TestAnalyzeIssueOrderingIsStableByUnitIndex(t *testing.T) {
	file := model.NewTranslationFile("strings.json", model.FormatJSON, []byte("{}"))
	file.AddUnit("a", "Save", "")
	file.AddUnit("b", "Cancel", "")
	file.AddUnit("c", "Delete", "")

	result, err := Analyze(file, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := 0
	for _, issue := range result.Issues {
		if issue.UnitIndex < last {
			t.Fatalf("issues not ordered by unit index: saw %d after %d", issue.UnitIndex, last)
		}
		last = issue.UnitIndex
	}
}

func TestAnalyzeRuleIndependence(t *testing.T) {
	file := model.NewTranslationFile("strings.json", model.FormatJSON, []byte("{}"))
	file.AddUnit("a", "Save", "")

	full, err := Analyze(file, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := config.Default()
	cfg.Rules["missing_translation"] = false
	reduced, err := Analyze(file, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, issue := range reduced.Issues {
		if issue.Type == model.IssueMissingTranslation {
			t.Fatal("expected no missing_translation issues when rule disabled")
		}
	}
	if len(reduced.Issues) >= len(full.Issues) {
		t.Errorf("expected reduced issue count, got %d vs full %d", len(reduced.Issues), len(full.Issues))
	}
}

func TestAnalyzeWithWorkersMatchesSequential(t *testing.T) {
	file := model.NewTranslationFile("strings.json", model.FormatJSON, []byte("{}"))
	for i := 0; i < 20; i++ {
		file.AddUnit("k", "Save file", "")
	}

	seq, err := Analyze(file, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	par, err := Analyze(file, config.Default(), WithWorkers(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seq.Issues) != len(par.Issues) {
		t.Fatalf("expected equal issue counts, got %d vs %d", len(seq.Issues), len(par.Issues))
	}
	for i := range seq.Issues {
		if seq.Issues[i].UnitIndex != par.Issues[i].UnitIndex || seq.Issues[i].Type != par.Issues[i].Type {
			t.Errorf("issue %d differs between sequential and parallel runs", i)
		}
	}
}
