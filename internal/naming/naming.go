// Package naming derives output filenames from capture-time metadata, with
// the original filename stem as fallback, and resolves output collisions.
package naming

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/proresbatch/internal/config"
)

// tokenReplacer strips date separators and maps the date/time divider
// (space or "T") to an underscore.
var tokenReplacer = strings.NewReplacer(
	":", "",
	"-", "",
	" ", "_",
	"T", "_",
)

// TimestampToken converts an ISO-like creation time into a compact token:
// "2024-05-01 12:30:45.123" -> "20240501_123045". Anything from the first
// "." on (sub-second fraction, timezone suffix in some containers) is
// dropped.
func TimestampToken(creationTime string) string {
	tok := tokenReplacer.Replace(creationTime)
	tok, _, _ = strings.Cut(tok, ".")
	return tok
}

// Stem returns the filename without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputName derives the output filename for one candidate: the compact
// timestamp token when creationTime is non-empty, otherwise the input's
// stem, plus the fixed suffix and container extension.
func OutputName(creationTime, inputPath string) string {
	name := TimestampToken(creationTime)
	if name == "" {
		name = Stem(inputPath)
	}
	return name + config.OutputSuffix + config.OutputExt
}
