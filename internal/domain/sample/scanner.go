package sample

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/brocklab/seqdat/internal/repository"
)

// Scan returns the sorted, deduplicated set of sample identifiers found among
// raw read files under dir, recursing through all subdirectories. A missing
// directory yields repository.ErrNotFound, which callers may absorb.
func Scan(dir, sep string) ([]string, error) {
	files, err := walkFiles(dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	ids := make([]string, 0, len(files))
	for _, f := range files {
		id := f.ID(sep)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Collect groups raw read files under dir by sample identifier. Files within
// a group are ordered lexicographically by path, so lane files concatenate in
// lane order (L001 before L002).
func Collect(dir, sep string) (map[string][]File, error) {
	files, err := walkFiles(dir)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]File)
	for _, f := range files {
		id := f.ID(sep)
		groups[id] = append(groups[id], f)
	}
	return groups, nil
}

// walkFiles traverses dir iteratively (no recursion) and returns every raw
// read file below it, sorted by path.
func walkFiles(dir string) ([]File, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("data directory %s: %w", dir, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}

	var files []File
	stack := []string{dir}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(cur)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", cur, err)
		}
		for _, e := range entries {
			path := filepath.Join(cur, e.Name())
			if e.IsDir() {
				stack = append(stack, path)
				continue
			}
			if IsRawRead(e.Name()) {
				files = append(files, File{Path: path})
			}
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
