// Package fsutil locates calculation sheet files on disk.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FindSheets recursively searches root for sheet files (.hcl). Paths are
// returned sorted so multi-file sheets load in a stable order.
func FindSheets(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .hcl sheet files found under %s", root)
	}
	sort.Strings(paths)
	return paths, nil
}
