package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/changgoo/pub2tex/internal/cv"
)

// WriteFragments writes each fragment to dir/<name>, replacing existing
// files. It returns the paths written.
func WriteFragments(dir string, frags []cv.Fragment) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := make([]string, 0, len(frags))
	for _, f := range frags {
		if f.Name == "" || f.Name != filepath.Base(f.Name) {
			return paths, fmt.Errorf("invalid fragment name %q", f.Name)
		}
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(f.Text), 0644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", f.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
