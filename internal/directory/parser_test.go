package directory

import (
	"strings"
	"testing"
)

func TestClassifyHeader(t *testing.T) {
	tests := []struct {
		line       string
		wantType   HeaderType
		wantLabel  string
		wantHeader bool
	}{
		{"Portfolio Acquisition Executive (RDA)", HeaderPAE, "RDA", true},
		{"PAE Ground Combat", HeaderPAE, "PAE", true},
		{"Capability Program Executive Aviation (CPE-AVN)", HeaderCPE, "CPE-AVN", true},
		{"Program Executive Office Aviation (PEO AVN)", HeaderPEO, "PEO AVN", true},
		{"PM Apache (PM-AH)", HeaderPM, "PM-AH", true},
		{"Department of the Army", HeaderService, "Army", true},
		{"COL John A. Smith", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		h, ok := ClassifyHeader(tt.line, 100)
		if ok != tt.wantHeader {
			t.Errorf("ClassifyHeader(%q) header=%v, want %v", tt.line, ok, tt.wantHeader)
			continue
		}
		if !ok {
			continue
		}
		if h.Type != tt.wantType {
			t.Errorf("ClassifyHeader(%q) type=%q, want %q", tt.line, h.Type, tt.wantType)
		}
		if got := h.Label(); got != tt.wantLabel {
			t.Errorf("ClassifyHeader(%q) label=%q, want %q", tt.line, got, tt.wantLabel)
		}
	}
}

func TestClassifyHeaderServiceLengthThreshold(t *testing.T) {
	long := "Department of the Army " + strings.Repeat("x", 100)
	if _, ok := ClassifyHeader(long, 100); ok {
		t.Error("long prose mentioning a service should not classify as a header")
	}
	if h, ok := ClassifyHeader("Department of the Army", 100); !ok || h.Type != HeaderService {
		t.Error("short service line should classify as a service header")
	}
}

func TestContextClearing(t *testing.T) {
	var ctx Context
	ctx.EnterService("Army")
	ctx.EnterPAE("RDA")
	ctx.EnterCPE("CPE-AVN")
	ctx.EnterOffice("PM-AH")

	ctx.EnterCPE("CPE-MSL")
	if ctx.Office != "" {
		t.Errorf("new CPE should clear office, got %q", ctx.Office)
	}
	if ctx.PAE != "RDA" || ctx.Service != "Army" {
		t.Errorf("new CPE should not clear ancestors, got %+v", ctx)
	}

	ctx.EnterPAE("GCS")
	if ctx.CPE != "" || ctx.Office != "" {
		t.Errorf("new PAE should clear CPE and office, got %+v", ctx)
	}

	ctx.EnterService("Navy")
	if ctx.PAE != "" || ctx.CPE != "" || ctx.Office != "" {
		t.Errorf("new service should clear all descendants, got %+v", ctx)
	}
}

func TestParsePageNoFalsePositives(t *testing.T) {
	p := NewParser(DefaultConfig(), nil)
	p.ParsePage(1, "the quick brown fox\njumps over the lazy dog\n\n   \n")
	if n := len(p.Records()); n != 0 {
		t.Errorf("expected no records from nameless body text, got %d", n)
	}
}

func TestParsePageEmptyPageIsNoOp(t *testing.T) {
	p := NewParser(DefaultConfig(), nil)
	p.ParsePage(1, "")
	p.ParsePage(2, "   \n\t\n")
	if len(p.Records()) != 0 || len(p.Relationships()) != 0 {
		t.Error("empty pages must not produce records or relationships")
	}
}

func TestParsePagePortfolioStamping(t *testing.T) {
	p := NewParser(DefaultConfig(), nil)
	p.ParsePage(1, "Portfolio Acquisition Executive (RDA)\nCOL John A. Smith\nDirector, Operations")

	recs := p.Records()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Portfolio != "RDA" {
		t.Errorf("expected portfolio %q, got %q", "RDA", rec.Portfolio)
	}
	if rec.ParentOrganization != "RDA" {
		t.Errorf("expected parent %q, got %q", "RDA", rec.ParentOrganization)
	}
	if rec.OrganizationType != "PAE Staff" {
		t.Errorf("expected org type %q, got %q", "PAE Staff", rec.OrganizationType)
	}
	if rec.LastUpdated != LastUpdatedTag {
		t.Errorf("expected provenance tag %q, got %q", LastUpdatedTag, rec.LastUpdated)
	}
}

func TestParsePageHierarchyRelationships(t *testing.T) {
	p := NewParser(DefaultConfig(), nil)
	p.ParsePage(1, strings.Join([]string{
		"Portfolio Acquisition Executive (RDA)",
		"Capability Program Executive Aviation (CPE-AVN)",
		"PM Apache (PM-AH)",
	}, "\n"))

	rels := p.Relationships()
	if len(rels) != 2 {
		t.Fatalf("expected 2 relationships, got %d: %+v", len(rels), rels)
	}

	reportsTo := rels[0]
	if reportsTo.ChildEntity != "CPE-AVN" || reportsTo.ParentEntity != "RDA" ||
		reportsTo.RelationshipType != RelReportsTo {
		t.Errorf("unexpected CPE edge: %+v", reportsTo)
	}
	if reportsTo.ChildType != "CPE" || reportsTo.ParentType != "PAE" {
		t.Errorf("unexpected CPE edge types: %+v", reportsTo)
	}

	partOf := rels[1]
	if partOf.ChildEntity != "PM-AH" || partOf.ParentEntity != "CPE-AVN" ||
		partOf.RelationshipType != RelPartOf {
		t.Errorf("unexpected PM edge: %+v", partOf)
	}
}

func TestParsePageNoEdgeWithoutParentContext(t *testing.T) {
	p := NewParser(DefaultConfig(), nil)
	// CPE with no active PAE, PM after a service header cleared the CPE.
	p.ParsePage(1, "Capability Program Executive Aviation (CPE-AVN)\nArmy\nPM Apache (PM-AH)")
	if n := len(p.Relationships()); n != 0 {
		t.Errorf("expected no relationships without parent context, got %d", n)
	}
}

func TestParsePageServiceHeaderClearsContext(t *testing.T) {
	p := NewParser(DefaultConfig(), nil)
	p.ParsePage(1, strings.Join([]string{
		"Portfolio Acquisition Executive (RDA)",
		"Capability Program Executive Aviation (CPE-AVN)",
		"Navy",
		"CAPT David Lee",
	}, "\n"))

	recs := p.Records()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.ServiceAgency != "Navy" {
		t.Errorf("expected service %q, got %q", "Navy", rec.ServiceAgency)
	}
	if rec.Portfolio != "" || rec.ParentOrganization != "" || rec.OrganizationType != "" {
		t.Errorf("expected cleared context on record, got %+v", rec)
	}
}

func TestParseCorpusContextPersistsAcrossPages(t *testing.T) {
	p := NewParser(DefaultConfig(), nil)
	p.ParseCorpus([]Page{
		{Number: 1, Text: "Portfolio Acquisition Executive (RDA)"},
		{Number: 2, Text: "Program Executive Office Aviation (PEO AVN)\nCOL John A. Smith\nProgram Manager, Apache\njohn.smith@army.mil"},
	})

	recs := p.Records()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Name != "John A. Smith" {
		t.Errorf("expected name %q, got %q", "John A. Smith", rec.Name)
	}
	if rec.RankTitle != "COL" {
		t.Errorf("expected rank %q, got %q", "COL", rec.RankTitle)
	}
	if rec.ParentOrganization != "PEO AVN" {
		t.Errorf("expected parent %q, got %q", "PEO AVN", rec.ParentOrganization)
	}
	if rec.Email != "john.smith@army.mil" {
		t.Errorf("expected email %q, got %q", "john.smith@army.mil", rec.Email)
	}
	if rec.PageNumber != 2 {
		t.Errorf("expected page 2, got %d", rec.PageNumber)
	}
	if rec.Position != "Program Manager" || rec.PositionType != "PM" {
		t.Errorf("unexpected position: %q / %q", rec.Position, rec.PositionType)
	}

	// The PEO header on page 2 must see the PAE entered on page 1.
	rels := p.Relationships()
	found := false
	for _, rel := range rels {
		if rel.ChildEntity == "PEO AVN" && rel.ParentEntity == "RDA" &&
			rel.RelationshipType == RelReportsTo {
			found = true
		}
	}
	if !found {
		t.Errorf("expected PEO AVN -> RDA Reports_To edge, got %+v", rels)
	}
}

func TestParsePageAdjacentWindowSuppression(t *testing.T) {
	p := NewParser(DefaultConfig(), nil)
	p.ParsePage(1, "Biography of\nCOL John A. Smith\nacquisition career overview")

	recs := p.Records()
	if len(recs) != 1 {
		t.Fatalf("expected overlapping windows to yield 1 record, got %d", len(recs))
	}
	if recs[0].Name != "John A. Smith" {
		t.Errorf("expected name %q, got %q", "John A. Smith", recs[0].Name)
	}
}

func TestDedupeRecords(t *testing.T) {
	a := PersonRecord{Name: "Jane Doe", Position: "Program Manager", OrganizationName: "PEO AVN"}
	b := a // byte-identical second detection
	c := a
	c.Position = "Deputy Program Manager"

	out := DedupeRecords([]PersonRecord{a, b, c})
	if len(out) != 2 {
		t.Fatalf("expected 2 records after dedupe, got %d", len(out))
	}
	if out[0].Position != "Program Manager" || out[1].Position != "Deputy Program Manager" {
		t.Errorf("expected first-seen order preserved, got %+v", out)
	}
}

func TestDedupeRecordsIdempotent(t *testing.T) {
	recs := []PersonRecord{
		{Name: "Jane Doe", Position: "Program Manager", OrganizationName: "PEO AVN"},
		{Name: "Jane Doe", Position: "Program Manager", OrganizationName: "PEO AVN"},
		{Name: "John Smith", Position: "Director", OrganizationName: "PM-AH"},
	}
	once := DedupeRecords(recs)
	twice := DedupeRecords(once)
	if len(once) != len(twice) {
		t.Fatalf("dedupe not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("record %d changed on second pass", i)
		}
	}
}

func TestDedupeRelationships(t *testing.T) {
	rels := []Relationship{
		{ChildEntity: "CPE-AVN", ParentEntity: "RDA", RelationshipType: RelReportsTo},
		{ChildEntity: "CPE-AVN", ParentEntity: "RDA", RelationshipType: RelReportsTo},
		{ChildEntity: "PM-AH", ParentEntity: "CPE-AVN", RelationshipType: RelPartOf},
	}
	out := DedupeRelationships(rels)
	if len(out) != 2 {
		t.Fatalf("expected 2 relationships after dedupe, got %d", len(out))
	}
}
