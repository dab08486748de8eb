package cmd

import (
	"go.uber.org/zap"
)

// newLogger returns a development logger when verbose, otherwise a
// production logger that only emits warnings and errors.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Sampling = nil
	return cfg.Build()
}
