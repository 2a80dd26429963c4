// Package report computes data-quality statistics over a final record set
// and renders them for the terminal. It is read-only: nothing here mutates
// records.
package report

import (
	"math"
	"time"

	"github.com/jcsullivan216/dowdirectory/internal/directory"
)

// CompletenessFields is the fixed list of fields tracked for completeness,
// in display order.
var CompletenessFields = []string{
	"name", "rank_title", "position", "email", "phone",
	"location", "service_agency", "organization_name", "mission_area",
}

var fieldValue = map[string]func(directory.PersonRecord) string{
	"name":              func(r directory.PersonRecord) string { return r.Name },
	"rank_title":        func(r directory.PersonRecord) string { return r.RankTitle },
	"position":          func(r directory.PersonRecord) string { return r.Position },
	"email":             func(r directory.PersonRecord) string { return r.Email },
	"phone":             func(r directory.PersonRecord) string { return r.Phone },
	"location":          func(r directory.PersonRecord) string { return r.Location },
	"service_agency":    func(r directory.PersonRecord) string { return r.ServiceAgency },
	"organization_name": func(r directory.PersonRecord) string { return r.OrganizationName },
	"mission_area":      func(r directory.PersonRecord) string { return r.MissionArea },
}

// FieldStat is the completeness of a single field.
type FieldStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Report is a point-in-time quality summary of an extraction run.
type Report struct {
	TotalRecords          int                  `json:"total_records"`
	TotalRelationships    int                  `json:"total_relationships"`
	FieldCompleteness     map[string]FieldStat `json:"field_completeness"`
	RecordsByService      map[string]int       `json:"records_by_service"`
	RecordsByPositionType map[string]int       `json:"records_by_position_type"`
	GeneratedAt           time.Time            `json:"generated_at"`
}

// Build computes the quality report for a record and relationship set.
// Records with no service are grouped under "Unknown"; records with no
// position type under "Other".
func Build(records []directory.PersonRecord, rels []directory.Relationship) Report {
	rep := Report{
		TotalRecords:          len(records),
		TotalRelationships:    len(rels),
		FieldCompleteness:     make(map[string]FieldStat, len(CompletenessFields)),
		RecordsByService:      make(map[string]int),
		RecordsByPositionType: make(map[string]int),
		GeneratedAt:           time.Now(),
	}

	for _, field := range CompletenessFields {
		get := fieldValue[field]
		count := 0
		for _, rec := range records {
			if get(rec) != "" {
				count++
			}
		}
		pct := 0.0
		if len(records) > 0 {
			pct = math.Round(float64(count)/float64(len(records))*1000) / 10
		}
		rep.FieldCompleteness[field] = FieldStat{Count: count, Percentage: pct}
	}

	for _, rec := range records {
		service := rec.ServiceAgency
		if service == "" {
			service = "Unknown"
		}
		rep.RecordsByService[service]++

		posType := rec.PositionType
		if posType == "" {
			posType = "Other"
		}
		rep.RecordsByPositionType[posType]++
	}

	return rep
}
