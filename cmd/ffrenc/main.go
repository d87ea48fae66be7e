// Command ffrenc batch-transcodes video files to fragmented h264/mp4 with
// live progress, driving an external ffmpeg process per input.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thmsn/ffrenc/internal/check"
	"github.com/thmsn/ffrenc/internal/config"
	"github.com/thmsn/ffrenc/internal/display"
	"github.com/thmsn/ffrenc/internal/logging"
	"github.com/thmsn/ffrenc/internal/pipeline"
)

// Exit codes: 0 all jobs succeeded, 1 at least one job failed (or the run
// was interrupted), 2 usage or configuration error.
func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()

	// The config file loads first so CLI flags override its values.
	cfgPath := config.ConfigFilePath(os.Args[1:])
	if cfgPath == "" {
		cfgPath = config.FindConfigFile()
	}
	if cfgPath != "" {
		if err := config.LoadConfigFile(&cfg, cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, "ffrenc:", err)
			return 2
		}
	}

	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		// flag already reported the problem on stderr
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "ffrenc:", err)
		return 2
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ffrenc:", err)
		return 1
	}
	defer log.Close()

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	if !cfg.JSONProgress {
		display.PrintBanner()
	}
	log.Info("ffrenc v%s", config.Version())
	if cfg.ConfigFile != "" {
		log.Debug(cfg.Verbose, "defaults loaded from %s", cfg.ConfigFile)
	}

	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v (try --check for diagnostics)", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, stats := pipeline.Run(ctx, &cfg, log, os.Stdin)

	if stats.Total == 0 && !stats.Interrupted {
		log.Error("no inputs to process")
		return 2
	}
	if stats.Interrupted {
		return 1
	}
	return results.ExitCode()
}
