package pagesource

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcsullivan216/dowdirectory/internal/directory"
)

// CSVSource reads page dumps in page_number,text form, one row per page. A
// header row is skipped when the first column is not numeric.
type CSVSource struct{}

func (s *CSVSource) Pages(r io.Reader, filename string) ([]directory.Page, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var pages []directory.Page
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		row++
		if len(rec) < 2 {
			return nil, fmt.Errorf("csv row %d: want page_number,text columns, got %d", row, len(rec))
		}

		num, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			if row == 1 {
				// Header row.
				continue
			}
			return nil, fmt.Errorf("csv row %d: bad page number %q", row, rec[0])
		}
		pages = append(pages, directory.Page{Number: num, Text: rec[1]})
	}
	return pages, nil
}
