package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fileslist/internal/core/ports"
)

const (
	// ScannerNodeID is the unique identifier for the file scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	// StoreNodeID is the unique identifier for the artifact store Graft node.
	StoreNodeID graft.ID = "adapter.fs.store"
)

func init() {
	graft.Register(graft.Node[ports.FileScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileScanner, error) {
			return NewScanner(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactStore, error) {
			return NewStore(), nil
		},
	})
}
