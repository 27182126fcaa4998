package formy

import (
	"fmt"
	"slices"
	"sync"
)

// Registry holds compiled form definitions keyed by name. Registration is a
// configuration-time operation: definitions are written at startup and read
// thereafter; redefining a name is last-writer-wins. Construct isolated
// registries in tests instead of sharing the package-level default.
type Registry struct {
	mu          sync.RWMutex
	defs        map[string]*Definition // wrapped with middlewares, used by Bind
	rawDefs     map[string]*Definition // unwrapped, re-wrapped from scratch by Use
	middlewares []Middleware
	opts        registryOptions
}

// NewRegistry creates an empty Registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		defs:    make(map[string]*Definition),
		rawDefs: make(map[string]*Definition),
		opts:    o,
	}
}

// Define compiles the declarations and registers the definition under name,
// replacing any previous definition with that name. Stored middlewares (see
// Use) are applied to every field's validator. On a *SchemaError nothing is
// stored and a previous registration under name is left untouched.
func (r *Registry) Define(name string, decls ...FieldDecl) (*Definition, error) {
	def, err := Compile(name, decls...)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rawDefs[name] = def
	wrapped := def.wrap(r.middlewares)
	r.defs[name] = wrapped
	if r.opts.logger != nil {
		r.opts.logger.Debug("form defined", "form", name, "fields", len(decls))
	}
	return wrapped, nil
}

// Use stores the given middlewares and reapplies them from scratch to all
// registered definitions (onion order: first middleware is outermost).
// Definitions registered after Use also get the chain. Calling Use again
// replaces the chain and rewraps from the raw definitions, so nothing is
// double-wrapped. Forms already constructed keep the chain they were built
// with.
func (r *Registry) Use(middlewares ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = middlewares
	for name, raw := range r.rawDefs {
		r.defs[name] = raw.wrap(middlewares)
	}
}

// Definition returns the registered definition, or (nil, false) if the name
// is unknown.
func (r *Registry) Definition(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.defs[name]
	return d, ok
}

// Names returns all registered form names, sorted for deterministic order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Bind constructs a bound Form from the named definition.
// Returns ErrFormNotFound if no definition is registered under name.
func (r *Registry) Bind(name string, bindings []Binding) (*Form, error) {
	def, ok := r.Definition(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormNotFound, name)
	}
	return def.Bind(bindings), nil
}

// Unbound constructs an unbound Form from the named definition.
// Returns ErrFormNotFound if no definition is registered under name.
func (r *Registry) Unbound(name string) (*Form, error) {
	def, ok := r.Definition(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormNotFound, name)
	}
	return def.Unbound(), nil
}

// defaultRegistry backs the package-level Define/Bind/Unbound convenience
// functions; applications that want isolation construct their own Registry.
var defaultRegistry = NewRegistry()

// Default returns the process-wide default registry.
func Default() *Registry { return defaultRegistry }

// Define registers a form definition in the default registry.
func Define(name string, decls ...FieldDecl) (*Definition, error) {
	return defaultRegistry.Define(name, decls...)
}

// Bind constructs a bound Form from the default registry.
func Bind(name string, bindings []Binding) (*Form, error) {
	return defaultRegistry.Bind(name, bindings)
}

// Unbound constructs an unbound Form from the default registry.
func Unbound(name string) (*Form, error) {
	return defaultRegistry.Unbound(name)
}
