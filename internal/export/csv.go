// Package export writes extraction results to CSV and XLSX files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jcsullivan216/dowdirectory/internal/directory"
)

// WriteRecordsCSV writes personnel records with a header row.
func WriteRecordsCSV(w io.Writer, records []directory.PersonRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(directory.RecordColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRelationshipsCSV writes organizational edges with a header row.
func WriteRelationshipsCSV(w io.Writer, rels []directory.Relationship) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(directory.RelationshipColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rel := range rels {
		if err := cw.Write(rel.Row()); err != nil {
			return fmt.Errorf("write relationship: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
