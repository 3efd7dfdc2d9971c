package rules

import (
	"testing"

	"github.com/standardbeagle/tqa/internal/config"
	"github.com/standardbeagle/tqa/internal/model"
)

func unit(key, source, target string) model.TranslationUnit {
	return model.TranslationUnit{ID: model.NewID(), Key: key, Source: source, Target: target, Index: 1}
}

func testContext(units []model.TranslationUnit, cfg *config.QAConfig) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return NewContext(units, cfg)
}

func TestMissingTranslation(t *testing.T) {
	u := unit("a.b", "Save", "")
	ctx := testContext([]model.TranslationUnit{u}, nil)
	issue := MissingTranslation(&u, ctx)
	if issue == nil {
		t.Fatal("expected missing_translation issue")
	}
	if issue.Suggestion != "Save" {
		t.Errorf("expected suggestion 'Save', got %q", issue.Suggestion)
	}
}

func TestLeadingTrailingSpacesTrailing(t *testing.T) {
	u := unit("k", "Save file", "Sauver le fichier ")
	ctx := testContext([]model.TranslationUnit{u}, nil)
	issue := LeadingTrailingSpaces(&u, ctx)
	if issue == nil {
		t.Fatal("expected leading_trailing_spaces issue")
	}
}

func TestInconsistentPlaceholdersCount(t *testing.T) {
	u := unit("k", "Hello %s, you have %d messages.", "Bonjour %s, vous avez messages.")
	ctx := testContext([]model.TranslationUnit{u}, nil)
	issue := InconsistentPlaceholders(&u, ctx)
	if issue == nil {
		t.Fatal("expected inconsistent_placeholders issue")
	}
}

func TestInconsistentPunctuationSuggestion(t *testing.T) {
	u := unit("k", "Are you sure?", "Êtes-vous sûr")
	ctx := testContext([]model.TranslationUnit{u}, nil)
	issue := InconsistentPunctuation(&u, ctx)
	if issue == nil {
		t.Fatal("expected inconsistent_punctuation issue")
	}
	if issue.Suggestion != "Êtes-vous sûr?" {
		t.Errorf("expected suggestion 'Êtes-vous sûr?', got %q", issue.Suggestion)
	}
}

func TestTargetSameAsSourceAndInconsistentTarget(t *testing.T) {
	units := []model.TranslationUnit{
		{ID: "u1", Key: "k1", Source: "OK", Target: "OK", Index: 1},
		{ID: "u2", Key: "k2", Source: "OK", Target: "Oui", Index: 2},
	}
	ctx := testContext(units, nil)

	issue1 := TargetSameAsSource(&units[0], ctx)
	if issue1 == nil {
		t.Fatal("expected target_same_as_source on unit 1")
	}

	it1 := InconsistentTarget(&units[0], ctx)
	if it1 == nil {
		t.Fatal("expected inconsistent_target on unit 1")
	}
	it2 := InconsistentTarget(&units[1], ctx)
	if it2 == nil {
		t.Fatal("expected inconsistent_target on unit 2")
	}
}

func TestInvalidHTMLTagsUnclosed(t *testing.T) {
	u := unit("k", "Click <b>here</b>", "Cliquez <b>ici")
	ctx := testContext([]model.TranslationUnit{u}, nil)
	issue := InvalidHTMLTags(&u, ctx)
	if issue == nil {
		t.Fatal("expected invalid_html_tags issue")
	}
}

func TestKeyTermMismatch(t *testing.T) {
	cfg := config.Default()
	cfg.Glossary = []model.GlossaryTerm{{Source: "file", Target: "fichier"}}
	u := unit("k", "Open file", "Ouvrir document")
	ctx := testContext([]model.TranslationUnit{u}, cfg)
	issue := KeyTermMismatch(&u, ctx)
	if issue == nil {
		t.Fatal("expected key_term_mismatch issue")
	}
	if issue.Suggestion != "fichier" {
		t.Errorf("expected suggestion 'fichier', got %q", issue.Suggestion)
	}
}

func TestDuplicateTranslation(t *testing.T) {
	units := []model.TranslationUnit{
		{ID: "u1", Key: "k1", Source: "Save", Target: "Enregistrer", Index: 1},
		{ID: "u2", Key: "k2", Source: "Save", Target: "Enregistrer", Index: 2},
	}
	ctx := testContext(units, nil)
	issue := DuplicateTranslation(&units[1], ctx)
	if issue == nil {
		t.Fatal("expected duplicate_translation issue")
	}
}

func TestAlphanumericMismatch(t *testing.T) {
	u := unit("k", "Version 12", "Version")
	ctx := testContext([]model.TranslationUnit{u}, nil)
	issue := AlphanumericMismatch(&u, ctx)
	if issue == nil {
		t.Fatal("expected alphanumeric_mismatch issue")
	}
}

func TestTooLongTranslation(t *testing.T) {
	cfg := config.Default()
	u := unit("k", "Save", "Enregistrer le fichier maintenant avec beaucoup de texte supplementaire")
	ctx := testContext([]model.TranslationUnit{u}, cfg)
	issue := TooLongTranslation(&u, ctx)
	if issue == nil {
		t.Fatal("expected too_long_translation issue")
	}
}

func TestStructuralRulesQuietOnPlainTranslation(t *testing.T) {
	u := unit("k", "Save file", "Enregistrer le fichier")
	ctx := testContext([]model.TranslationUnit{u}, nil)
	quiet := []Rule{}
	for _, r := range Canonical {
		switch r.Name {
		case "inconsistent_brackets", "inconsistent_placeholders", "inconsistent_numbers",
			"inconsistent_urls", "inconsistent_emails", "special_characters_mismatch",
			"formatting_issues", "leading_trailing_spaces", "inconsistent_punctuation":
			quiet = append(quiet, r)
		}
	}
	for _, rule := range quiet {
		if issue := rule.Check(&u, ctx); issue != nil {
			t.Errorf("rule %s unexpectedly fired: %s", rule.Name, issue.Message)
		}
	}
}
