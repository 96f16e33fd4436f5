// Package ffmpeg builds and runs the external encode command. Commands are
// argument vectors handed straight to exec, never shell strings, so paths
// with spaces or metacharacters need no quoting.
package ffmpeg

import "github.com/backmassage/proresbatch/internal/profile"

// Build constructs the complete ffmpeg argument slice for one candidate.
//
// The preamble keeps ffmpeg non-interactive: -nostdin and -y prevent the
// overwrite prompt from stalling a re-run over an existing output directory.
func Build(p profile.Profile, inputPath, outputPath string, verbose bool) []string {
	args := make([]string, 0, 32)

	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")

	if verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	args = append(args, "-i", inputPath)
	args = append(args, p.Args()...)
	return append(args, outputPath)
}
