package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/atomcluster/cluster"
	"github.com/katalvlaran/atomcluster/connectivity"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of run parameters.
type Config struct {
	// Filename is the XYZ geometry to cluster.
	Filename string `yaml:"filename" validate:"required"`

	// Cutoff is the strict connection distance.
	Cutoff float64 `yaml:"cutoff" validate:"gt=0"`

	// OutName is the template for membership files; key k goes to <stem>_k<ext>.
	OutName string `yaml:"outname" validate:"required"`

	// PassToMultiwfn enables the suggested Multiwfn command lines.
	PassToMultiwfn bool `yaml:"pass_to_multiwfn"`

	// SelectNLargest is how many of the largest clusters the suggestion uses.
	SelectNLargest int `yaml:"select_n_largest_clusters" validate:"gte=0"`

	// IndexOne switches exported indices to 1-based.
	IndexOne bool `yaml:"indexing_1"`

	// States lists the excited states to suggest runs for.
	States []int `yaml:"states" validate:"dive,gte=1"`

	// Histogram is the size plot path (pdf, png, svg...); empty disables it.
	Histogram string `yaml:"histogram"`

	// HistogramCSV is the size table path; empty disables it.
	HistogramCSV string `yaml:"histogram_csv"`

	// ClusterXYZ additionally writes each cluster as <stem>_k.xyz.
	ClusterXYZ bool `yaml:"cluster_xyz"`

	// Method is the merge strategy.
	Method string `yaml:"method" validate:"oneof=unionfind bfs rescan"`

	// Neighbors is the pair enumeration strategy.
	Neighbors string `yaml:"neighbors" validate:"oneof=allpairs celllist"`

	// Workers is the goroutine count of the all-pairs scan; 0 is sequential.
	Workers int `yaml:"workers" validate:"gte=0"`

	// Singletons also reports atoms without neighbours as one-atom clusters.
	Singletons bool `yaml:"singletons"`

	// Archive is a bbolt file recording every run; empty disables it.
	Archive string `yaml:"archive"`

	// LogLevel is the minimum zap level.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Development selects zap's development encoder.
	Development bool `yaml:"development"`
}

// Default returns the defaults of the original command line.
func Default() *Config {
	return &Config{
		Filename:       "tests/Dimer-2metal_OptionA.xyz",
		Cutoff:         connectivity.DefaultCutoff,
		OutName:        "tests/outputfile.txt",
		PassToMultiwfn: true,
		SelectNLargest: 2,
		IndexOne:       true,
		States:         []int{1, 2},
		Histogram:      "cluster_sizes_histogram.pdf",
		Method:         string(cluster.MethodUnionFind),
		Neighbors:      string(connectivity.MethodAllPairs),
		LogLevel:       "info",
	}
}

// Load decodes the YAML file at path over Default and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

var validate = validator.New()

// Validate checks every field constraint and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// formatFieldError renders a single validation failure.
func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// IndexBase returns 1 for 1-based output and 0 otherwise.
func (c *Config) IndexBase() int {
	if c.IndexOne {
		return 1
	}

	return 0
}
