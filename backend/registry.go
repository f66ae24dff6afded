package backend

import "fmt"

// Registry maps concrete array types to their operation bundles. Lookup
// is a pure function of the inputs' runtime types: the Registry holds no
// per-call state and bundles are stateless singletons.
type Registry struct {
	backends []Ops
}

// NewRegistry builds a Registry over the given bundles. Order matters
// only when two bundles claim the same type, which registered backends
// must not do.
func NewRegistry(backends ...Ops) *Registry {
	r := &Registry{backends: make([]Ops, 0, len(backends))}
	for _, b := range backends {
		r.Register(b)
	}

	return r
}

// Register adds a bundle to the Registry. Registering nil panics.
func (r *Registry) Register(ops Ops) {
	if ops == nil {
		panic("backend: Register called with nil Ops")
	}
	r.backends = append(r.backends, ops)
}

// For returns the bundle owning every given array.
//
// It fails with ErrUnsupportedBackend when some input matches no
// registered backend, and with ErrMixedBackend when the inputs belong to
// two different backends. At least one array is required.
func (r *Registry) For(arrays ...Array) (Ops, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("For: %w: no input arrays", ErrUnsupportedBackend)
	}

	var found Ops
	for _, a := range arrays {
		ops := r.lookup(a)
		if ops == nil {
			return nil, fmt.Errorf("For: %w: %T", ErrUnsupportedBackend, a)
		}
		if found != nil && ops != found {
			return nil, fmt.Errorf("For: %w: %s vs %s", ErrMixedBackend, found.Backend(), ops.Backend())
		}
		found = ops
	}

	return found, nil
}

// lookup returns the first bundle owning a, or nil.
func (r *Registry) lookup(a Array) Ops {
	for _, b := range r.backends {
		if b.Owns(a) {
			return b
		}
	}

	return nil
}

// defaultRegistry serves package-level dispatch with the two built-in
// backends pre-registered.
var defaultRegistry = NewRegistry(Slice(), Vec())

// For dispatches against the default Registry.
func For(arrays ...Array) (Ops, error) { return defaultRegistry.For(arrays...) }

// Register adds a bundle to the default Registry. Intended for callers
// bringing their own array type; built-in backends are pre-registered.
func Register(ops Ops) { defaultRegistry.Register(ops) }

// Default returns the package-level Registry.
func Default() *Registry { return defaultRegistry }
