// Package probe extracts single metadata fields from a video stream via
// ffprobe. Each lookup is an independent subprocess call whose failure
// yields an empty value: a clip without a creation_time tag must not lose
// its color primaries, and vice versa.
package probe

import (
	"context"
	"os/exec"
	"strings"
)

// field selects which stream entry a probe call requests.
type field struct {
	entries string
}

var (
	fieldColorPrimaries = field{entries: "stream=color_primaries"}
	fieldCreationTime   = field{entries: "stream_tags=creation_time"}
)

// ColorPrimaries returns the color_primaries value of the first video
// stream, or "" when the field is absent or ffprobe fails.
func ColorPrimaries(ctx context.Context, path string) string {
	return lookup(ctx, fieldColorPrimaries, path)
}

// CreationTime returns the creation_time stream tag of the first video
// stream (an ISO-like timestamp string), or "" when the tag is absent or
// ffprobe fails.
func CreationTime(ctx context.Context, path string) string {
	return lookup(ctx, fieldCreationTime, path)
}

// lookup runs one ffprobe call for a single field. Output is the raw value
// with no wrapper or key prefix; any error maps to "".
func lookup(ctx context.Context, f field, path string) string {
	cmd := exec.CommandContext(ctx, "ffprobe", args(f, path)...)
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// args builds the ffprobe argument vector for a single-field lookup on the
// first video stream.
func args(f field, path string) []string {
	return []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", f.entries,
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
}
