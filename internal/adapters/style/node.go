package style

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fileslist/internal/core/ports"
)

// NodeID is the unique identifier for the style resolver Graft node.
const NodeID graft.ID = "adapter.style"

func init() {
	graft.Register(graft.Node[ports.StyleResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StyleResolver, error) {
			return NewResolver(), nil
		},
	})
}
