// Where: internal/domain/registry/registry.go
// What: Owned configuration registry read by the templating consumer.
// Why: Replace the implicitly created page-wide object with an explicit value.
package registry

import (
	"sync"

	"github.com/poruru-code/hostenv/internal/domain/hostctx"
	"github.com/poruru-code/hostenv/internal/domain/value"
	"github.com/poruru-code/hostenv/internal/meta"
)

// Path names the plugin and feature namespaces holding a data sequence.
type Path struct {
	Plugin  string
	Feature string
}

// DefaultPath is the docsify mustache plugin location.
func DefaultPath() Path {
	return Path{Plugin: meta.DefaultPluginNamespace, Feature: meta.DefaultFeatureNamespace}
}

// WithDefaults fills empty namespaces from DefaultPath.
func (p Path) WithDefaults() Path {
	def := DefaultPath()
	if p.Plugin == "" {
		p.Plugin = def.Plugin
	}
	if p.Feature == "" {
		p.Feature = def.Feature
	}
	return p
}

func (p Path) String() string {
	p = p.WithDefaults()
	return p.Plugin + "." + p.Feature + "." + meta.DataKey
}

// Registry is a nested configuration document. Keys it does not manage are
// preserved as-is. A Registry is safe for concurrent use.
type Registry struct {
	mu  sync.Mutex
	doc map[string]any
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{doc: map[string]any{}}
}

// FromDocument copies an existing document into a registry. Typed maps and
// slices are normalized so prior entries and foreign keys survive. A nil
// document yields an empty registry.
func FromDocument(doc map[string]any) *Registry {
	normalized, _ := value.Normalize(doc).(map[string]any)
	if normalized == nil {
		normalized = map[string]any{}
	}
	return &Registry{doc: normalized}
}

// Ensure guarantees every level of path exists and returns how many levels
// held a value of the wrong shape and were replaced.
func (r *Registry) Ensure(path Path) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, repairs := r.ensure(path)
	return repairs
}

// Append adds entry as the last element of the data sequence at path and
// returns the new sequence length.
func (r *Registry) Append(path Path, entry hostctx.HostnameContext) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	feature, _ := r.ensure(path)
	data, _ := value.AsSlice(feature[meta.DataKey])
	data = append(data, entry.Fields())
	feature[meta.DataKey] = data
	return len(data)
}

// Entries returns a copy of the raw data sequence at path.
func (r *Registry) Entries(path Path) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, _ := value.AsSlice(r.lookup(path)[meta.DataKey])
	out, _ := value.Normalize(data).([]any)
	return out
}

// Contexts returns the entries at path that decode as descriptors, in order.
func (r *Registry) Contexts(path Path) []hostctx.HostnameContext {
	var out []hostctx.HostnameContext
	for _, entry := range r.Entries(path) {
		if ctx, ok := entry.(hostctx.HostnameContext); ok {
			out = append(out, ctx)
			continue
		}
		if ctx, ok := hostctx.FromFields(value.AsMap(entry)); ok {
			out = append(out, ctx)
		}
	}
	return out
}

// Len returns the length of the data sequence at path.
func (r *Registry) Len(path Path) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, _ := value.AsSlice(r.lookup(path)[meta.DataKey])
	return len(data)
}

// Document returns a deep copy of the whole registry document.
func (r *Registry) Document() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out, _ := value.Normalize(r.doc).(map[string]any)
	return out
}

func (r *Registry) ensure(path Path) (map[string]any, int) {
	path = path.WithDefaults()
	repairs := 0
	plugin, fixed := child(r.doc, path.Plugin)
	repairs += fixed
	feature, fixed := child(plugin, path.Feature)
	repairs += fixed
	switch feature[meta.DataKey].(type) {
	case []any:
	case nil:
		feature[meta.DataKey] = []any{}
	default:
		feature[meta.DataKey] = []any{}
		repairs++
	}
	return feature, repairs
}

// child returns parent[key] as an object, creating or replacing it as needed.
func child(parent map[string]any, key string) (map[string]any, int) {
	raw, exists := parent[key]
	if m := value.AsMap(raw); m != nil {
		return m, 0
	}
	m := map[string]any{}
	parent[key] = m
	if exists && raw != nil {
		return m, 1
	}
	return m, 0
}

func (r *Registry) lookup(path Path) map[string]any {
	path = path.WithDefaults()
	plugin := value.AsMap(r.doc[path.Plugin])
	return value.AsMap(plugin[path.Feature])
}
