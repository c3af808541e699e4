// Package config holds the run configuration of atomcluster: the defaults of
// the original command line, YAML loading on top of those defaults, struct
// validation and construction of the zap logger.
//
// Precedence is defaults < YAML file < explicitly set flags; the last step is
// applied by the command (see cmd/atomcluster).
package config
