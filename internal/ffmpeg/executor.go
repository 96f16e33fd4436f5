package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single ffmpeg invocation. The caller
// logs completion regardless of Err; a failed encode shows up as a missing
// output file, with Stderr available on the debug channel.
type ExecResult struct {
	Stderr string
	Err    error
}

// Execute runs the prepared argument vector. When verbose, stderr is tee'd
// to os.Stderr in real time; otherwise it is captured silently. The call
// blocks until the encoder exits; there is no timeout.
func Execute(ctx context.Context, args []string, verbose bool) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
