package extension

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/caselink/caselink/internal/host"
)

// Deps carries the host collaborators an importer is constructed with.
type Deps struct {
	Credentials host.CredentialSource
	Persister   host.RecordPersister
	Logger      zerolog.Logger
}

// Factory creates an importer instance from configuration and host deps.
type Factory func(config map[string]any, deps Deps) (Importer, error)

// Registry holds importer factories indexed by importer ID.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates an empty importer registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory for the given importer ID.
// Panics if the ID is already registered.
func (r *Registry) Register(importerID string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[importerID]; exists {
		panic(fmt.Sprintf("importer factory already registered: %s", importerID))
	}
	r.factories[importerID] = factory
}

// Get returns the factory for the given importer ID.
func (r *Registry) Get(importerID string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[importerID]
	return factory, ok
}

// List returns all registered importer IDs.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	return ids
}

// Create instantiates an importer from the given ID, config and deps.
func (r *Registry) Create(importerID string, config map[string]any, deps Deps) (Importer, error) {
	factory, ok := r.Get(importerID)
	if !ok {
		return nil, fmt.Errorf("unknown importer: %s", importerID)
	}
	return factory(config, deps)
}

// --- Default Global Registry ---

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the global importer registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a factory to the default registry.
func Register(importerID string, factory Factory) {
	defaultRegistry.Register(importerID, factory)
}
