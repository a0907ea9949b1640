// Package corpus builds the full blog corpus: discovery, ordering,
// pagination and grouping.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverSources walks the content directories and returns the
// content-relative paths matching the include globs minus the exclude globs.
// Paths present in several directories appear once: ingestion resolves which
// directory wins.
func DiscoverSources(contentDirs, include, exclude []string) ([]string, error) {
	seen := make(map[string]struct{})
	var sources []string

	for _, dir := range contentDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			ok, err := matchAny(include, rel)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			excluded, err := matchAny(exclude, rel)
			if err != nil {
				return err
			}
			if excluded {
				return nil
			}

			if _, dup := seen[rel]; !dup {
				seen[rel] = struct{}{}
				sources = append(sources, rel)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk content directory %s: %w", dir, err)
		}
	}

	sort.Strings(sources)
	return sources, nil
}

func matchAny(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
