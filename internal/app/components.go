package app

import "weave/internal/core/ports"

// Components bundles the resolved top-level collaborators handed to the CLI.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
