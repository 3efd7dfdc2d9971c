// Package analyzer implements the analyzer driver (C5): composes the
// enabled rules, iterates units in document order, and aggregates issues
// and per-type statistics into a QAResult.
package analyzer

import (
	"sort"
	"sync"

	"github.com/standardbeagle/tqa/internal/config"
	"github.com/standardbeagle/tqa/internal/model"
	"github.com/standardbeagle/tqa/internal/rules"
)

// Option configures an Analyze call.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers parallelizes rule evaluation across units. Units are
// read-only during analysis and rules are side-effect-free (spec §5), so
// the only requirement is restoring stable (unit_index, rule_index)
// ordering before returning, which Analyze always does regardless of
// workers.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Analyze runs every enabled rule over every unit of file, in document
// order, and aggregates the results (spec §4.5).
func Analyze(file *model.TranslationFile, cfg *config.QAConfig, opts ...Option) (*model.QAResult, error) {
	o := &options{workers: 1}
	for _, opt := range opts {
		opt(o)
	}

	ctx := rules.NewContext(file.Units, cfg)

	enabled := make([]rules.Rule, 0, len(rules.Canonical))
	for _, r := range rules.Canonical {
		if cfg.RuleEnabled(r.Name) {
			enabled = append(enabled, r)
		}
	}

	perUnit := make([][]model.QAIssue, len(file.Units))

	if o.workers <= 1 {
		for i := range file.Units {
			perUnit[i] = runRules(&file.Units[i], ctx, enabled)
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, o.workers)
		for i := range file.Units {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				perUnit[i] = runRules(&file.Units[i], ctx, enabled)
			}(i)
		}
		wg.Wait()
	}

	issues := make([]model.QAIssue, 0, len(file.Units))
	for _, us := range perUnit {
		issues = append(issues, us...)
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].UnitIndex < issues[j].UnitIndex
	})

	return &model.QAResult{
		FileID:     file.ID,
		Filename:   file.Filename,
		TotalUnits: len(file.Units),
		Issues:     issues,
		Stats:      aggregateStats(issues),
	}, nil
}

func runRules(u *model.TranslationUnit, ctx *rules.Context, enabled []rules.Rule) []model.QAIssue {
	var out []model.QAIssue
	for _, r := range enabled {
		if issue := r.Check(u, ctx); issue != nil {
			out = append(out, *issue)
		}
	}
	return out
}

func aggregateStats(issues []model.QAIssue) model.QAStats {
	stats := model.QAStats{
		Total:  len(issues),
		ByType: make(map[model.IssueType]int),
	}
	for _, issue := range issues {
		stats.ByType[issue.Type]++
		switch issue.Severity {
		case model.SeverityError:
			stats.Errors++
		case model.SeverityWarning:
			stats.Warnings++
		case model.SeverityInfo:
			stats.Info++
		}
	}
	return stats
}
