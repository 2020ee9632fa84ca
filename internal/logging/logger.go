// Package logging wires go.uber.org/zap for the driver binaries. The core
// engine never logs — its contract is the result sequence it returns to
// its caller, nothing more — so this package is only imported by
// cmd/crossd, never by internal/matching or internal/engine.
package logging

import "go.uber.org/zap"

// New builds a production zap.SugaredLogger, or a development logger when
// dev is true (human-readable, colorized level, for local runs).
func New(dev bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
