package tiles

import (
	"errors"
	"fmt"
	"image"
)

// ErrSparseIDs is returned when tile ids do not form the sequence 0..n-1.
var ErrSparseIDs = errors.New("tile ids must be dense from 0")

// TileType defines the visual and gameplay properties of a tile kind.
type TileType struct {
	ID       int
	Name     string
	Image    image.Image
	Passable bool
}

// Registry is the ordered, immutable set of tile types indexed by id.
type Registry struct {
	types []TileType
}

// New builds a registry from the given tile types. Types may arrive in any
// order but their ids must cover 0..len-1 exactly once.
func New(types []TileType) (*Registry, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("empty tile list: %w", ErrSparseIDs)
	}
	ordered := make([]TileType, len(types))
	seen := make([]bool, len(types))
	for _, tt := range types {
		if tt.ID < 0 || tt.ID >= len(types) {
			return nil, fmt.Errorf("tile %q has id %d, want 0..%d: %w", tt.Name, tt.ID, len(types)-1, ErrSparseIDs)
		}
		if seen[tt.ID] {
			return nil, fmt.Errorf("duplicate tile id %d (%q): %w", tt.ID, tt.Name, ErrSparseIDs)
		}
		seen[tt.ID] = true
		ordered[tt.ID] = tt
	}
	return &Registry{types: ordered}, nil
}

// Len returns the number of registered tile types.
func (r *Registry) Len() int {
	return len(r.types)
}

// Valid reports whether id names a registered tile type.
func (r *Registry) Valid(id int) bool {
	return id >= 0 && id < len(r.types)
}

// Lookup returns the tile type for id. ok is false for unregistered ids.
func (r *Registry) Lookup(id int) (TileType, bool) {
	if !r.Valid(id) {
		return TileType{}, false
	}
	return r.types[id], true
}

// Passable reports whether id is walkable. Unknown ids are solid.
func (r *Registry) Passable(id int) bool {
	tt, ok := r.Lookup(id)
	return ok && tt.Passable
}

// Types returns a copy of all tile types in id order.
func (r *Registry) Types() []TileType {
	out := make([]TileType, len(r.types))
	copy(out, r.types)
	return out
}
