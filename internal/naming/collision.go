package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CollisionResolver tracks output paths claimed during a run and resolves
// duplicates by appending "_N" before the extension. Two clips shot within
// the same second derive the same timestamp token; without disambiguation
// the later encode would overwrite the earlier one.
type CollisionResolver struct {
	owners map[string]string // output path -> input path that owns it
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{owners: make(map[string]string)}
}

// Resolve returns the final output path for input. If requestedOutput is
// unclaimed (or already owned by input), it is returned as-is; otherwise the
// first free "_N" variant is claimed, starting at 2.
func (cr *CollisionResolver) Resolve(input, requestedOutput string) string {
	owner, exists := cr.owners[requestedOutput]
	if !exists || owner == input {
		cr.owners[requestedOutput] = input
		return requestedOutput
	}

	dir := filepath.Dir(requestedOutput)
	base := filepath.Base(requestedOutput)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for n := 2; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		cOwner, cExists := cr.owners[candidate]
		if !cExists || cOwner == input {
			cr.owners[candidate] = input
			return candidate
		}
	}
}
