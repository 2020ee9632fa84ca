// Command crossd runs the same matching engine as cmd/cross, but behind
// an HTTP + WebSocket facade (internal/httpapi) instead of a textual
// stdin/stdout loop, adapted from the teacher's cmd/server/main.go.
package main

import (
	"net/http"
	"os"

	"crossengine/internal/config"
	"crossengine/internal/engine"
	"crossengine/internal/httpapi"
	"crossengine/internal/logging"
	"crossengine/internal/telemetry"
)

func main() {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logging.New(os.Getenv("ENV") != "production")
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	profiler, err := telemetry.StartProfiler(cfg.ProfilerAddr, "crossd")
	if err != nil {
		log.Errorw("starting profiler", "error", err)
	}
	defer telemetry.Stop(profiler)

	e := engine.New()
	srv := httpapi.NewServer(e, cfg.AuthToken)

	log.Infow("crossd listening", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Routes(cfg.CORSOrigin)); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
