package main

import (
	"context"
	"log"

	"bbp-finder-be/internal/bootstrap"
	"bbp-finder-be/internal/config"
	"bbp-finder-be/internal/server"
	"bbp-finder-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer (honors the ui.yaml telemetry opt-out)
	shutdownTracer := tracer.InitTracer(cfg.UI.DisableTelemetry)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
