package pagesource

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/jcsullivan216/dowdirectory/internal/directory"
)

// Directory dumps are often split into chunk files named like
// dow_directory_pages_41_to_80.pdf. The filename carries the global page
// range, so pages extracted from a chunk get renumbered to document order.
var chunkRangePattern = regexp.MustCompile(`pages_(\d+)_to_(\d+)`)

// ChunkFiles lists chunk files in dir matching pattern, sorted by name so
// the chunks process in page order.
func ChunkFiles(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// ChunkOffset returns the page offset encoded in a chunk filename: a chunk
// covering pages 41 to 80 has offset 40. Filenames without a page range get
// offset 0.
func ChunkOffset(path string) int {
	m := chunkRangePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0
	}
	start, err := strconv.Atoi(m[1])
	if err != nil || start < 1 {
		return 0
	}
	return start - 1
}

// ReadPages extracts pages from one file and shifts their numbers by offset.
func ReadPages(path string, offset int) ([]directory.Page, error) {
	src, err := ForFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	pages, err := src.Pages(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("read pages from %s: %w", filepath.Base(path), err)
	}
	for i := range pages {
		pages[i].Number += offset
	}
	return pages, nil
}
