package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Candidate is one file queued for conversion. Depth is the number of path
// segments, used to order the batch.
type Candidate struct {
	Path  string
	Depth int
}

// Enumerate walks root and collects every regular file beneath it as a
// candidate. Symlinks and other non-regular entries are excluded; no
// extension filtering is applied, so re-running over a tree containing a
// previous run's converted_videos directory reprocesses those outputs too.
//
// The returned slice is materialized and sorted by depth descending (most
// deeply nested first). Order among equal-depth candidates is unspecified.
func Enumerate(root string) ([]Candidate, error) {
	var candidates []Candidate
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		candidates = append(candidates, Candidate{
			Path:  path,
			Depth: pathDepth(path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Depth > candidates[j].Depth
	})
	return candidates, nil
}

// pathDepth counts the segments of a cleaned path.
func pathDepth(path string) int {
	cleaned := filepath.Clean(path)
	sep := string(filepath.Separator)
	return len(strings.Split(strings.TrimPrefix(cleaned, sep), sep))
}
