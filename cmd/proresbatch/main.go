// Command proresbatch is the CLI entrypoint for the batch ProRes converter.
//
// It takes a single file or directory, probes each candidate's color
// primaries and creation time via ffprobe, and encodes it to ProRes 422 HQ
// with a color-profile-matched parameter set, naming the output from the
// capture timestamp when one is present.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/proresbatch/internal/check"
	"github.com/backmassage/proresbatch/internal/config"
	"github.com/backmassage/proresbatch/internal/display"
	"github.com/backmassage/proresbatch/internal/logging"
	"github.com/backmassage/proresbatch/internal/pipeline"
	"github.com/backmassage/proresbatch/internal/resolve"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	cfg := config.DefaultConfig()

	var forceColor, noColor bool
	parsed := false // set once RunE starts; distinguishes usage errors

	root := &cobra.Command{
		Use:     "proresbatch [flags] <path>",
		Short:   "Batch-convert videos to ProRes 422 HQ, named by capture time",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Args: func(cmd *cobra.Command, args []string) error {
			if cfg.CheckOnly {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed = true
			if len(args) == 1 {
				cfg.TargetPath = args[0]
			}
			switch {
			case forceColor:
				cfg.ColorMode = config.ColorAlways
			case noColor:
				cfg.ColorMode = config.ColorNever
			}
			return run(&cfg)
		},
	}

	root.Flags().BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Log the encode command instead of running it")
	root.Flags().BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run system diagnostics and exit")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output (tees encoder stderr)")
	root.Flags().BoolVar(&forceColor, "color", false, "Force colored logs")
	root.Flags().BoolVar(&noColor, "no-color", false, "Disable colored logs")
	root.Flags().StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "proresbatch: %v\n", err)
		if !parsed {
			fmt.Fprint(os.Stderr, root.UsageString())
		}
		return 1
	}
	return 0
}

// run executes the resolved command. Classification failures (missing or
// unsupported target) report and return nil: the tool's contract is to print
// a message and exit normally for those.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return errors.New("system check failed")
		}
		return nil
	}

	log.Info("=== proresbatch v%s ===", version)
	if cfg.DryRun {
		log.Warn("DRY RUN — nothing will be encoded")
	}

	// Classify the target before touching anything else: a nonexistent path
	// must cause no filesystem writes and no subprocess calls.
	target, err := resolve.Resolve(cfg.TargetPath)
	if err != nil {
		if errors.Is(err, resolve.ErrNotFound) || errors.Is(err, resolve.ErrUnsupportedTarget) {
			log.Error("%v", err)
			return nil
		}
		return err
	}

	if err := check.CheckDeps(); err != nil {
		return err
	}

	if err := target.EnsureOutputDir(); err != nil {
		log.Error("Cannot create output directory: %v", err)
		return nil
	}

	// Cancel the run between files on SIGINT/SIGTERM so an interrupt does
	// not leave a torn candidate mid-loop.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	pipeline.Run(ctx, cfg, log, target)
	return nil
}
