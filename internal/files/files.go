// Package files selects the documents a batch will print.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PDFSuffix is matched literally and case-sensitively, so "scan.PDF" is not selected
const PDFSuffix = ".pdf"

// List returns the absolute paths of the PDF files directly inside dir.
// See ListWithSuffix for the matching rules.
func List(dir string) ([]string, error) {
	return ListWithSuffix(dir, PDFSuffix)
}

// ListWithSuffix returns the absolute paths of the entries directly inside dir
// whose name ends with suffix. Subdirectories are neither descended into nor
// returned. Results follow directory-listing order, which os.ReadDir sorts by
// file name. An empty result is not an error.
func ListWithSuffix(dir, suffix string) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving folder path: %w", err)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("error reading folder %s: %w", absDir, err)
	}

	matched := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}

		matched = append(matched, filepath.Join(absDir, entry.Name()))
	}

	return matched, nil
}
