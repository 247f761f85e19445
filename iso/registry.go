package iso

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvlgroup/cayley"
	"github.com/katalvlaran/lvlgroup/group"
)

// ErrDuplicateKey indicates an attempt to rebind an already-registered
// canonical key to a different name. The registry is append-only.
var ErrDuplicateKey = errors.New("iso: canonical key already registered under another name")

type entry struct {
	name        string
	description string
}

// Registry maps canonical keys to names. It performs no canonicalization
// itself — keys come from cayley.CanonicalKey (usually via Classify or
// RegisterGroup). Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register binds name (and an optional description) to an
// already-computed canonical key. Re-registering the same key with the
// same name is a no-op; a different name returns ErrDuplicateKey — no key
// is ever silently renamed.
func (r *Registry) Register(key, name, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.entries[key]; ok {
		if prev.name == name {
			return nil
		}

		return fmt.Errorf("%w: %q is already %q", ErrDuplicateKey, key, prev.name)
	}
	r.entries[key] = entry{name: name, description: description}

	return nil
}

// RegisterGroup canonicalizes g's table and registers it, returning the
// computed key. Errors propagate from canonicalization or Register.
func (r *Registry) RegisterGroup(g *group.Group, name, description string) (string, error) {
	key, err := cayley.CanonicalKey(g.Table(), nil)
	if err != nil {
		return "", err
	}
	if err = r.Register(key, name, description); err != nil {
		return "", err
	}

	return key, nil
}

// IsRegistered reports whether key has a bound name.
func (r *Registry) IsRegistered(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]

	return ok
}

// Name returns the name bound to key, and whether one exists.
func (r *Registry) Name(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]

	return e.name, ok
}

// Description returns the description bound to key, and whether the key
// is registered at all.
func (r *Registry) Description(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]

	return e.description, ok
}

// Keys returns all registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Classify computes t's isomorphism class and attaches the registered
// name when the key is known; otherwise the class comes back unnamed.
// Idempotent: classifying a Class's own Table() again yields an Equal
// class with the same key.
func (r *Registry) Classify(t cayley.Table) (Class, error) {
	c, err := FromTable(t, "")
	if err != nil {
		return Class{}, err
	}
	if name, ok := r.Name(c.key); ok {
		c.name = name
	}

	return c, nil
}

// ClassifyGroup is Classify on g's Cayley table.
func (r *Registry) ClassifyGroup(g *group.Group) (Class, error) {
	return r.Classify(g.Table())
}
