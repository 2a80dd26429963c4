// Package pagesource acquires raw directory text as ordered page streams.
// Each source converts one document format into (page number, text) pairs;
// the extraction engine downstream never sees the original file format.
package pagesource

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jcsullivan216/dowdirectory/internal/directory"
)

// Source converts raw document bytes into ordered page texts.
type Source interface {
	Pages(r io.Reader, filename string) ([]directory.Page, error)
}

// SupportedExtensions lists file extensions this tool can read.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".docx": true,
	".csv":  true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFSource{FallbackPdftotext: true}, nil
	case ".txt":
		return &TextSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	case ".csv":
		return &CSVSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// paginate splits flat text into pages on form feeds. Blank pages are kept
// so page numbering stays aligned with the source document.
func paginate(text string) []directory.Page {
	parts := strings.Split(text, "\f")
	pages := make([]directory.Page, len(parts))
	for i, part := range parts {
		pages[i] = directory.Page{Number: i + 1, Text: part}
	}
	return pages
}
