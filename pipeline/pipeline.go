package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/atomcluster/analysis"
	"github.com/katalvlaran/atomcluster/archive"
	"github.com/katalvlaran/atomcluster/cluster"
	"github.com/katalvlaran/atomcluster/config"
	"github.com/katalvlaran/atomcluster/connectivity"
	"github.com/katalvlaran/atomcluster/export"
	"github.com/katalvlaran/atomcluster/xyz"
)

// Report is the outcome of Run.
type Report struct {
	Atoms       int
	Edges       int
	Partition   cluster.Partition // indices in the configured base
	Sizes       analysis.Sizes
	Summary     analysis.Summary
	Histogram   []analysis.Bin
	Ranked      []analysis.Ranked
	Suggestions []export.Suggestion
	Files       []string // membership files, key order
	XYZFiles    []string // per-cluster geometries, when enabled
	ArchiveID   string   // empty unless archiving is enabled
}

// Run executes the job described by cfg. ctx is checked between stages.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	// 1. Geometry.
	frame, err := xyz.ReadFile(cfg.Filename)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read: %w", err)
	}
	log.Info("geometry loaded",
		zap.String("file", cfg.Filename),
		zap.Int("atoms", frame.Len()),
		zap.String("comment", frame.Comment))

	// 2. Proximity edges.
	edges, err := connectivity.Build(frame.Positions(), cfg.Cutoff,
		connectivity.WithMethod(connectivity.Method(cfg.Neighbors)),
		connectivity.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, fmt.Errorf("pipeline: connectivity: %w", err)
	}
	log.Debug("edges built",
		zap.Float64("cutoff", cfg.Cutoff),
		zap.String("neighbors", cfg.Neighbors),
		zap.Int("workers", cfg.Workers),
		zap.Int("edges", len(edges)))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3. Clusters, zero-based.
	p, err := cluster.Merge(frame.Len(), edges, cluster.WithMethod(cluster.Method(cfg.Method)))
	if err != nil {
		return nil, fmt.Errorf("pipeline: merge: %w", err)
	}
	if cfg.Singletons {
		p = p.WithIsolated(frame.Len())
	}
	log.Info("clusters merged",
		zap.String("method", cfg.Method),
		zap.Int("clusters", p.Len()),
		zap.Int("clustered_atoms", len(p.Atoms())),
		zap.Bool("singletons", cfg.Singletons))

	rep := &Report{Atoms: frame.Len(), Edges: len(edges)}
	if cfg.ClusterXYZ {
		if rep.XYZFiles, err = export.WriteClusterXYZ(cfg.OutName, frame, p); err != nil {
			return nil, err
		}
	}

	// 4. Output index base, applied once.
	if cfg.IndexOne {
		log.Info("output will be 1-indexed")
	} else {
		log.Info("output will be 0-indexed")
	}
	rep.Partition = p.Shift(cfg.IndexBase())
	if rep.Files, err = export.WriteClusters(cfg.OutName, rep.Partition); err != nil {
		return nil, err
	}
	log.Debug("membership files written", zap.Strings("files", rep.Files))

	// 5. Sizes and histogram.
	rep.Sizes = analysis.Count(rep.Partition)
	rep.Summary = analysis.Summarize(rep.Sizes)
	rep.Histogram = analysis.Histogram(rep.Sizes)
	if err := writeHistogram(cfg, rep.Histogram, log); err != nil {
		return nil, err
	}

	// 6. Largest clusters and suggestions.
	if cfg.SelectNLargest > 0 {
		rep.Ranked = analysis.TopN(rep.Sizes, cfg.SelectNLargest)
		if len(rep.Ranked) < cfg.SelectNLargest {
			log.Warn("fewer clusters than requested",
				zap.Int("requested", cfg.SelectNLargest),
				zap.Int("available", len(rep.Ranked)))
		}
	}
	if cfg.PassToMultiwfn {
		rep.Suggestions = export.Suggest(rep.Ranked, rep.Partition, cfg.States)
	}

	// 7. Archive.
	if cfg.Archive != "" {
		if rep.ArchiveID, err = archiveRun(ctx, cfg, rep); err != nil {
			return nil, fmt.Errorf("pipeline: archive: %w", err)
		}
		log.Info("run archived", zap.String("archive", cfg.Archive), zap.String("id", rep.ArchiveID))
	}

	log.Info("run complete",
		zap.Int("clusters", rep.Summary.Clusters),
		zap.Int("largest", rep.Summary.Largest),
		zap.Duration("elapsed", time.Since(start)))

	return rep, nil
}

// writeHistogram emits the CSV table and the plot when configured.
// An empty histogram skips the plot with a warning.
func writeHistogram(cfg *config.Config, bins []analysis.Bin, log *zap.Logger) error {
	if cfg.HistogramCSV != "" {
		f, err := os.Create(cfg.HistogramCSV)
		if err != nil {
			return fmt.Errorf("pipeline: histogram csv: %w", err)
		}
		if err := export.WriteHistogramCSV(f, bins); err != nil {
			f.Close()
			return fmt.Errorf("pipeline: histogram csv: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if cfg.Histogram == "" {
		return nil
	}
	if len(bins) == 0 {
		log.Warn("no clusters, histogram skipped", zap.String("path", cfg.Histogram))
		return nil
	}
	if err := export.PlotHistogram(cfg.Histogram, bins); err != nil {
		return fmt.Errorf("pipeline: histogram plot: %w", err)
	}
	log.Debug("histogram saved", zap.String("path", cfg.Histogram))

	return nil
}

// archiveRun saves rep into the bbolt archive named by cfg.Archive.
func archiveRun(ctx context.Context, cfg *config.Config, rep *Report) (string, error) {
	store, err := archive.Open(cfg.Archive)
	if err != nil {
		return "", err
	}
	defer store.Close()

	return store.Save(ctx, archive.Record{
		Source:    cfg.Filename,
		Atoms:     rep.Atoms,
		Cutoff:    cfg.Cutoff,
		IndexBase: cfg.IndexBase(),
		Method:    cfg.Method,
		Clusters:  rep.Partition,
		Sizes:     rep.Sizes,
	})
}
