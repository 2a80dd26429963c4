package pagesource

import (
	"io"

	"github.com/jcsullivan216/dowdirectory/internal/directory"
)

// TextSource reads plain-text page dumps. Form feeds separate pages; a file
// without form feeds is a single page.
type TextSource struct{}

func (s *TextSource) Pages(r io.Reader, filename string) ([]directory.Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return paginate(string(data)), nil
}
