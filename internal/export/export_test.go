package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/jcsullivan216/dowdirectory/internal/directory"
	"github.com/xuri/excelize/v2"
)

func sampleRecords() []directory.PersonRecord {
	return []directory.PersonRecord{
		{
			ServiceAgency:            "Army",
			OrganizationType:         "PEO",
			OrganizationName:         "PEO Aviation",
			OrganizationAbbreviation: "PEO AVN",
			Name:                     "John A. Smith",
			RankTitle:                "COL",
			Position:                 "Program Executive Officer",
			Status:                   "Confirmed",
			Email:                    "john.smith@army.mil",
			PageNumber:               3,
			LastUpdated:              directory.LastUpdatedTag,
		},
		{
			Name:       "Robert Jones",
			RankTitle:  "Mr.",
			Status:     "Acting",
			PageNumber: 4,
		},
	}
}

func sampleRelationships() []directory.Relationship {
	return []directory.Relationship{
		{
			ChildEntity:      "PEO AVN",
			ChildType:        "PEO",
			ParentEntity:     "RDA",
			ParentType:       "PAE",
			RelationshipType: directory.RelReportsTo,
		},
	}
}

func TestWriteRecordsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecordsCSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteRecordsCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "service_agency" || rows[0][len(rows[0])-1] != "notes" {
		t.Errorf("header wrong: %v", rows[0])
	}
	if len(rows[1]) != len(directory.RecordColumns) {
		t.Errorf("row width %d, want %d", len(rows[1]), len(directory.RecordColumns))
	}
	if rows[1][6] != "John A. Smith" {
		t.Errorf("name column wrong: %q", rows[1][6])
	}
	if rows[1][17] != "3" {
		t.Errorf("page number column wrong: %q", rows[1][17])
	}
}

func TestWriteRelationshipsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRelationshipsCSV(&buf, sampleRelationships()); err != nil {
		t.Fatalf("WriteRelationshipsCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	want := []string{"PEO AVN", "PEO", "RDA", "PAE", "Reports_To"}
	for i, v := range want {
		if rows[1][i] != v {
			t.Errorf("column %d = %q, want %q", i, rows[1][i], v)
		}
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecordsCSV(&buf, nil); err != nil {
		t.Fatalf("WriteRecordsCSV: %v", err)
	}
	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "service_agency,") {
		t.Errorf("empty export should still carry the header: %q", out)
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("expected header only, got:\n%s", out)
	}
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, sampleRecords(), sampleRelationships()); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Records" || sheets[1] != "Relationships" {
		t.Fatalf("sheets wrong: %v", sheets)
	}

	rows, err := f.GetRows("Records")
	if err != nil {
		t.Fatalf("get records rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 record rows, got %d", len(rows))
	}
	if rows[0][0] != "service_agency" {
		t.Errorf("records header wrong: %v", rows[0])
	}
	if rows[1][6] != "John A. Smith" {
		t.Errorf("name cell wrong: %q", rows[1][6])
	}

	relRows, err := f.GetRows("Relationships")
	if err != nil {
		t.Fatalf("get relationship rows: %v", err)
	}
	if len(relRows) != 2 {
		t.Fatalf("expected header + 1 relationship row, got %d", len(relRows))
	}
	if relRows[1][4] != "Reports_To" {
		t.Errorf("relationship type cell wrong: %q", relRows[1][4])
	}
}
