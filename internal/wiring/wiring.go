// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/hotpatchkit/dexopt/internal/adapters/binder"
	_ "github.com/hotpatchkit/dexopt/internal/adapters/config"
	_ "github.com/hotpatchkit/dexopt/internal/adapters/dalvik"
	_ "github.com/hotpatchkit/dexopt/internal/adapters/dex2oat"
	_ "github.com/hotpatchkit/dexopt/internal/adapters/fs"
	_ "github.com/hotpatchkit/dexopt/internal/adapters/lockfile"
	_ "github.com/hotpatchkit/dexopt/internal/adapters/logger"
	_ "github.com/hotpatchkit/dexopt/internal/adapters/record"
	_ "github.com/hotpatchkit/dexopt/internal/adapters/shell"
	_ "github.com/hotpatchkit/dexopt/internal/adapters/sysprop"
	_ "github.com/hotpatchkit/dexopt/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/hotpatchkit/dexopt/internal/app"
	_ "github.com/hotpatchkit/dexopt/internal/engine/optimizer"
)
