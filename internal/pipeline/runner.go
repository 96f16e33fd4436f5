// Package pipeline orchestrates candidate enumeration, per-file conversion,
// and batch summary reporting.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/proresbatch/internal/config"
	"github.com/backmassage/proresbatch/internal/display"
	"github.com/backmassage/proresbatch/internal/ffmpeg"
	"github.com/backmassage/proresbatch/internal/logging"
	"github.com/backmassage/proresbatch/internal/naming"
	"github.com/backmassage/proresbatch/internal/probe"
	"github.com/backmassage/proresbatch/internal/profile"
	"github.com/backmassage/proresbatch/internal/resolve"
)

// Run is the top-level batch entry point. A file target becomes a single
// candidate; a directory target is enumerated depth-first. Candidates are
// processed strictly sequentially, one encoder process at a time.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, target resolve.Target) RunStats {
	var stats RunStats

	var candidates []Candidate
	if target.Kind == resolve.KindFile {
		candidates = []Candidate{{Path: target.Path, Depth: pathDepth(target.Path)}}
	} else {
		var err error
		candidates, err = Enumerate(target.Path)
		if err != nil {
			log.Error("File discovery failed: %v", err)
			return stats
		}
	}

	stats.Total = len(candidates)
	resolver := naming.NewCollisionResolver()

	log.Info("Found %d file(s)", stats.Total)
	log.Info("Out: %s", target.OutputDir)
	log.Info("")

	for i, cand := range candidates {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processCandidate(ctx, cfg, log, cand, target.OutputDir, &stats, resolver)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processCandidate handles one file: probe metadata, derive the output name,
// select the profile, and invoke the encoder. Probe failures downgrade to
// empty values; the encoder's exit status is not inspected, so a completion
// line is logged after every invocation and a failed encode shows up only as
// a missing output file.
func processCandidate(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	cand Candidate,
	outputDir string,
	stats *RunStats,
	resolver *naming.CollisionResolver,
) {
	basename := filepath.Base(cand.Path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	// --- Probe: two independent lookups, each non-fatal ---
	creationTime := probe.CreationTime(ctx, cand.Path)
	primaries := probe.ColorPrimaries(ctx, cand.Path)
	if creationTime == "" {
		log.Debug("  no creation_time tag, falling back to filename")
	}

	// --- Derive output name ---
	outputName := naming.OutputName(creationTime, cand.Path)
	outputPath := resolver.Resolve(cand.Path, filepath.Join(outputDir, outputName))
	if creationTime != "" {
		stats.TimestampNamed++
	} else {
		stats.FallbackNamed++
	}

	// --- Select profile and build the command ---
	prof := profile.Select(primaries)
	args := ffmpeg.Build(prof, cand.Path, outputPath, cfg.Verbose)

	log.Info("  -> %s (profile: %s)", filepath.Base(outputPath), prof)

	if fi, err := os.Stat(cand.Path); err == nil {
		stats.TotalInputBytes += fi.Size()
	}

	if cfg.DryRun {
		log.Success("[DRY] Would run: %s", strings.Join(args, " "))
		stats.Converted++
		return
	}

	// --- Invoke the encoder ---
	start := time.Now()
	result := ffmpeg.Execute(ctx, args, cfg.Verbose)
	if result.Err != nil {
		log.Debug("  encoder exited with error: %v", result.Err)
		logStderr(log, result.Stderr)
	}

	stats.Converted++
	log.Success("Converted '%s' to ProRes HQ at '%s' in %ds, using color primaries: %s",
		basename, outputPath, int(time.Since(start).Seconds()), primariesLabel(primaries))
}

func primariesLabel(primaries string) string {
	if primaries == "" {
		return "unknown"
	}
	return primaries
}

// logStderr emits the tail of the encoder's stderr on the debug channel.
func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Debug("  %s", l)
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d of %d file(s) dispatched", stats.Converted, stats.Total)
	log.Info("  Named from creation time: %d", stats.TimestampNamed)
	log.Info("  Named from filename:      %d", stats.FallbackNamed)
	if cfg.DryRun {
		log.Info("  Input processed: n/a (dry run)")
		return
	}
	log.Info("  Input processed: %s", display.FormatBytes(stats.TotalInputBytes))
}
