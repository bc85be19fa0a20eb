package retailer

import (
	"sync"

	"github.com/light-bringer/agrocart-service/internal/app/catalog/contracts"
	"github.com/light-bringer/agrocart-service/internal/pkg/clock"
)

// Registry hands out one InventoryView per owner identity, so the locally
// patched list survives across requests from the same retailer.
type Registry struct {
	mu     sync.Mutex
	source contracts.RemoteSource
	clock  clock.Clock
	views  map[string]*InventoryView
}

// NewRegistry creates an empty registry over the given remote source.
func NewRegistry(source contracts.RemoteSource, clk clock.Clock) *Registry {
	return &Registry{
		source: source,
		clock:  clk,
		views:  make(map[string]*InventoryView),
	}
}

// View returns the inventory view for an owner, creating it on first use.
func (r *Registry) View(ownerID string) *InventoryView {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[ownerID]
	if !ok {
		v = NewInventoryView(r.source, r.clock, ownerID)
		r.views[ownerID] = v
	}
	return v
}
