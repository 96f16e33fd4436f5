package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionResolver_Unclaimed(t *testing.T) {
	cr := NewCollisionResolver()
	got := cr.Resolve("/in/a.mp4", "/out/20240501_123045_ProResHQ.mov")
	assert.Equal(t, "/out/20240501_123045_ProResHQ.mov", got)
}

func TestCollisionResolver_SameOwnerIsStable(t *testing.T) {
	cr := NewCollisionResolver()
	first := cr.Resolve("/in/a.mp4", "/out/x_ProResHQ.mov")
	second := cr.Resolve("/in/a.mp4", "/out/x_ProResHQ.mov")
	assert.Equal(t, first, second)
}

func TestCollisionResolver_SuffixesDuplicates(t *testing.T) {
	cr := NewCollisionResolver()
	out := "/out/20240501_123045_ProResHQ.mov"

	assert.Equal(t, out, cr.Resolve("/in/a.mp4", out))
	assert.Equal(t, "/out/20240501_123045_ProResHQ_2.mov", cr.Resolve("/in/b.mp4", out))
	assert.Equal(t, "/out/20240501_123045_ProResHQ_3.mov", cr.Resolve("/in/c.mp4", out))
}
