// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "weave/internal/adapters/cache"
	_ "weave/internal/adapters/config"
	_ "weave/internal/adapters/fingerprint"
	_ "weave/internal/adapters/logger"
	_ "weave/internal/adapters/markdown"
	_ "weave/internal/adapters/parser"
	_ "weave/internal/adapters/shell"
	_ "weave/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "weave/internal/app"
	_ "weave/internal/engine/pipeline"
)
