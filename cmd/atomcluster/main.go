// Command atomcluster reads an XYZ geometry, groups atoms closer than a cutoff
// into clusters, writes one membership file per cluster and suggests Multiwfn
// runs for the largest clusters.
//
// Usage:
//
//	atomcluster [-config run.yaml] [-filename in.xyz] [-cutoff 1.65] ...
//
// Values come from the built-in defaults, then the optional YAML file, then
// any flag given explicitly on the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/atomcluster/config"
	"github.com/katalvlaran/atomcluster/export"
	"github.com/katalvlaran/atomcluster/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "atomcluster:", err)
		stop()
		os.Exit(1)
	}
}

// run parses args, executes the pipeline and prints the summary to stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	log, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rep, err := pipeline.Run(ctx, cfg, log)
	if err != nil {
		log.Error("run failed", zap.Error(err))
		return err
	}

	fmt.Fprintln(stdout, "Cluster sizes:", formatSizes(rep))
	if cfg.PassToMultiwfn {
		return export.WriteSuggestions(stdout, rep.Suggestions)
	}

	return nil
}

// formatSizes renders the size table in key order, e.g. {0: 3, 1: 2}.
func formatSizes(rep *pipeline.Report) string {
	s := "{"
	for i, k := range rep.Sizes.Keys() {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d: %d", k, rep.Sizes[k])
	}

	return s + "}"
}
