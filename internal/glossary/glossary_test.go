package glossary

import "testing"

func TestLoadCSVSkipsHeaderAndBlankRows(t *testing.T) {
	data := []byte("source,term,context\nServer,Serveur,networking\nClient,Client,\n,Foo,bar\n")
	terms, err := LoadCSV("terms.csv", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("expected 2 terms (header and blank-source row skipped), got %d", len(terms))
	}
	if terms[0].Source != "Server" || terms[0].Target != "Serveur" || terms[0].Context != "networking" {
		t.Errorf("unexpected first term: %+v", terms[0])
	}
	if terms[1].Source != "Client" || terms[1].Target != "Client" {
		t.Errorf("unexpected second term: %+v", terms[1])
	}
}

func TestLoadTSVRequiresTwoNonEmptyCells(t *testing.T) {
	data := []byte("Account\tCompte\nOnlyOneColumn\n")
	terms, err := LoadTSV("terms.tsv", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != 1 {
		t.Fatalf("expected 1 term, got %d", len(terms))
	}
	if terms[0].Source != "Account" || terms[0].Target != "Compte" {
		t.Errorf("unexpected term: %+v", terms[0])
	}
}

func TestLoadTMXReusesBundleSourceTargetRule(t *testing.T) {
	data := []byte(`<tmx><body>
  <tu>
    <tuv xml:lang="en"><seg>Invoice</seg></tuv>
    <tuv xml:lang="de"><seg>Rechnung</seg></tuv>
  </tu>
</body></tmx>`)
	terms, err := LoadTMX("glossary.tmx", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != 1 || terms[0].Source != "Invoice" || terms[0].Target != "Rechnung" {
		t.Fatalf("unexpected terms: %+v", terms)
	}
}

func TestLoadCSVMalformedReturnsParseError(t *testing.T) {
	data := []byte("\"unterminated")
	if _, err := LoadCSV("bad.csv", data); err == nil {
		t.Fatal("expected a parse error for malformed CSV")
	}
}
