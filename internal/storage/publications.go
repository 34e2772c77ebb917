// Package storage reads publication records and writes the generated
// LaTeX fragments.
package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/changgoo/pub2tex/internal/reference"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ErrInputNotFound is returned when the publications file does not exist.
var ErrInputNotFound = errors.New("publications file not found")

// ReadPublications reads records from a JSON array file (pubs.json) or, for
// a .jsonl extension, one record per line.
func ReadPublications(path string) ([]reference.Publication, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run the fetch step first)", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("reading publications: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return parseJSONL(data)
	}

	var pubs []reference.Publication
	if err := json.Unmarshal(data, &pubs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return pubs, nil
}

func parseJSONL(data []byte) ([]reference.Publication, error) {
	var pubs []reference.Publication
	scanner := bufio.NewScanner(bytes.NewReader(data))

	// Increase buffer size for long lines
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var p reference.Publication
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		pubs = append(pubs, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading publications: %w", err)
	}

	return pubs, nil
}
