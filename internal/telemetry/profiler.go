// Package telemetry optionally starts a github.com/grafana/pyroscope-go
// continuous profiler for cmd/crossd, grounded on yanun0323-go-hft's use
// of the same library. Purely additive: never on the engine's call path,
// and a no-op when no server address is configured.
package telemetry

import (
	"github.com/grafana/pyroscope-go"

	"crossengine/internal/errs"
)

// StartProfiler connects to the pyroscope server at addr under
// applicationName, or returns a nil profiler if addr is empty. The
// package-level Stop accepts that nil profiler.
func StartProfiler(addr, applicationName string) (*pyroscope.Profiler, error) {
	if addr == "" {
		return nil, nil
	}

	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: applicationName,
		ServerAddress:   addr,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
		},
	})
	if err != nil {
		return nil, errs.Wrap(err, "starting pyroscope profiler")
	}
	return p, nil
}

// Stop gracefully shuts down p, tolerating a nil profiler.
func Stop(p *pyroscope.Profiler) error {
	if p == nil {
		return nil
	}
	return p.Stop()
}
