package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fileslist/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/fileslist/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/fileslist/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/fileslist/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fileslist/internal/adapters/style"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fileslist/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/fileslist/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ScannerNodeID,
			fs.StoreNodeID,
			style.NodeID,
			shell.NodeID,
			watcher.FactoryNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.FileScanner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}

	styles, err := graft.Dep[ports.StyleResolver](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.CommandExecutor](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, scanner, store, styles, executor, watchers, log), nil
}
