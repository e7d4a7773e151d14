// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fileslist/internal/adapters/config"
	_ "go.trai.ch/fileslist/internal/adapters/fs"
	_ "go.trai.ch/fileslist/internal/adapters/logger"
	_ "go.trai.ch/fileslist/internal/adapters/shell"
	_ "go.trai.ch/fileslist/internal/adapters/style"
	_ "go.trai.ch/fileslist/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/fileslist/internal/app"
)
