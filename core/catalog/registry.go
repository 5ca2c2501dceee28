// Package catalog holds the in-memory product registry. Products are
// loaded once at startup (from HCL files or an upstream fetch) and read
// concurrently by the quote engine and the API.
package catalog

import (
	"sync"

	"souq-core/core/types"
	"souq-core/internal/errors"
)

// Registry is a read-mostly product store keyed by product ID.
// Insertion order is preserved for listings.
type Registry struct {
	mu       sync.RWMutex
	products map[string]*types.Product
	order    []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		products: make(map[string]*types.Product),
	}
}

// Add registers a product, replacing any previous entry with the same ID
func (r *Registry) Add(product *types.Product) error {
	if product == nil || product.ID == "" {
		return errors.InvalidInput("product requires an ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; !exists {
		r.order = append(r.order, product.ID)
	}
	r.products[product.ID] = product
	return nil
}

// Get returns a product by ID
func (r *Registry) Get(id string) (*types.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("product", id)
	}
	return product, nil
}

// List returns all products in insertion order
func (r *Registry) List() []*types.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*types.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out
}

// Len returns the number of registered products
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
