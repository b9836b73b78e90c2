package main

import (
	"log"

	"resume-viewer/internal/bootstrap"
	"resume-viewer/internal/shared/config"
	"resume-viewer/internal/shared/server"
	"resume-viewer/internal/shared/telemetry"
)

func main() {
	defer telemetry.Sync()

	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr":           addr,
		"env":            cfg.Env,
		"metadata_store": cfg.MetadataStoreType,
		"object_store":   cfg.ObjectStoreType,
		"llm_provider":   cfg.LLMProvider,
	})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
