// SPDX-License-Identifier: MIT

package embedding

import "fmt"

// Registry is an ordered set of embeddings. The zero value is empty and ready
// to use; NewRegistry starts from the defaults. A Registry is a plain value
// owned by its caller, not shared state.
type Registry struct {
	items []Embedding
}

// NewRegistry returns a registry holding Defaults() followed by extra.
func NewRegistry(extra ...Embedding) (*Registry, error) {
	r := &Registry{}
	for _, e := range append(Defaults(), extra...) {
		if err := r.Register(e); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register appends e. The kind must be non-empty and unique, Fn non-nil.
func (r *Registry) Register(e Embedding) error {
	if e.Kind == "" || e.Fn == nil {
		return fmt.Errorf("register %q: %w", e.Kind, ErrInvalidEmbedding)
	}
	for _, have := range r.items {
		if have.Kind == e.Kind {
			return fmt.Errorf("register %q: %w", e.Kind, ErrDuplicateKind)
		}
	}
	if e.Name == "" {
		e.Name = string(e.Kind)
	}
	r.items = append(r.items, e)

	return nil
}

// Lookup finds an embedding by kind.
func (r *Registry) Lookup(kind Kind) (Embedding, error) {
	for _, e := range r.items {
		if e.Kind == kind {
			return e, nil
		}
	}

	return Embedding{}, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
}

// All returns a copy of the registered embeddings in registration order.
func (r *Registry) All() []Embedding {
	out := make([]Embedding, len(r.items))
	copy(out, r.items)

	return out
}

// Len reports the number of registered embeddings.
func (r *Registry) Len() int { return len(r.items) }
