package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/atomcluster/config"
)

// parseConfig layers defaults, the optional -config YAML file and explicitly
// set flags, in that order, and validates the result.
func parseConfig(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("atomcluster", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var configPath string
	fs.StringVar(&configPath, "config", "", "YAML configuration file applied over the defaults")

	f := config.Default()
	fs.StringVar(&f.Filename, "filename", f.Filename, "Path to the XYZ file")
	fs.Float64Var(&f.Cutoff, "cutoff", f.Cutoff, "Cutoff distance for connecting atoms")
	fs.StringVar(&f.OutName, "outname", f.OutName, "Name of the output file; cluster k is written to <stem>_k<ext>")
	fs.Var(config.BoolFlag{Value: &f.PassToMultiwfn}, "pass_to_Multiwfn",
		"If true, print suggested Multiwfn runs (true/false, yes/no, 1/0)")
	fs.IntVar(&f.SelectNLargest, "select_N_largest_clusters", f.SelectNLargest,
		"Number of largest clusters passed to Multiwfn")
	fs.Var(config.BoolFlag{Value: &f.IndexOne}, "indexing_1", "If true, output indices are 1-based")
	fs.Var(config.IntList{Value: &f.States}, "states", "Comma separated list of states to analyze")
	fs.StringVar(&f.Histogram, "histogram", f.Histogram, "Cluster size plot (pdf, png, svg); empty disables it")
	fs.StringVar(&f.HistogramCSV, "histogram_csv", f.HistogramCSV, "Cluster size table; empty disables it")
	fs.BoolVar(&f.ClusterXYZ, "cluster_xyz", f.ClusterXYZ, "Also write every cluster as an XYZ file")
	fs.StringVar(&f.Method, "method", f.Method, "Merge method: unionfind, bfs or rescan")
	fs.StringVar(&f.Neighbors, "neighbors", f.Neighbors, "Pair search: allpairs or celllist")
	fs.IntVar(&f.Workers, "workers", f.Workers, "Goroutines for the all-pairs scan (0 = sequential)")
	fs.BoolVar(&f.Singletons, "singletons", f.Singletons, "Report atoms without neighbours as one-atom clusters")
	fs.StringVar(&f.Archive, "archive", f.Archive, "bbolt file recording every run; empty disables it")
	fs.StringVar(&f.LogLevel, "log_level", f.LogLevel, "Log level: debug, info, warn, error")
	fs.BoolVar(&f.Development, "dev", f.Development, "Human readable development logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Only flags the user actually set override the file.
	fs.Visit(func(fl *flag.Flag) {
		if apply, ok := overrides[fl.Name]; ok {
			apply(cfg, f)
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// overrides copies one flag-backed field from src into dst.
var overrides = map[string]func(dst, src *config.Config){
	"filename":                  func(d, s *config.Config) { d.Filename = s.Filename },
	"cutoff":                    func(d, s *config.Config) { d.Cutoff = s.Cutoff },
	"outname":                   func(d, s *config.Config) { d.OutName = s.OutName },
	"pass_to_Multiwfn":          func(d, s *config.Config) { d.PassToMultiwfn = s.PassToMultiwfn },
	"select_N_largest_clusters": func(d, s *config.Config) { d.SelectNLargest = s.SelectNLargest },
	"indexing_1":                func(d, s *config.Config) { d.IndexOne = s.IndexOne },
	"states":                    func(d, s *config.Config) { d.States = s.States },
	"histogram":                 func(d, s *config.Config) { d.Histogram = s.Histogram },
	"histogram_csv":             func(d, s *config.Config) { d.HistogramCSV = s.HistogramCSV },
	"cluster_xyz":               func(d, s *config.Config) { d.ClusterXYZ = s.ClusterXYZ },
	"method":                    func(d, s *config.Config) { d.Method = s.Method },
	"neighbors":                 func(d, s *config.Config) { d.Neighbors = s.Neighbors },
	"workers":                   func(d, s *config.Config) { d.Workers = s.Workers },
	"singletons":                func(d, s *config.Config) { d.Singletons = s.Singletons },
	"archive":                   func(d, s *config.Config) { d.Archive = s.Archive },
	"log_level":                 func(d, s *config.Config) { d.LogLevel = s.LogLevel },
	"dev":                       func(d, s *config.Config) { d.Development = s.Development },
}
