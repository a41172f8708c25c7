package behavior

import (
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Props carries a behavior's YAML configuration.
type Props struct {
	node *yaml.Node
}

// NewProps wraps a YAML node. A nil or empty node decodes to nothing.
func NewProps(node *yaml.Node) Props {
	return Props{node: node}
}

// Decode unmarshals the props into v, leaving v untouched when empty.
func (p Props) Decode(v any) error {
	if p.node == nil || p.node.Kind == 0 {
		return nil
	}
	return p.node.Decode(v)
}

// Factory creates a behavior from its props.
type Factory func(props Props) (Behavior, error)

// KindInfo describes a registered behavior kind.
type KindInfo struct {
	Kind    string
	Summary string
}

type kind struct {
	summary string
	factory Factory
}

var (
	kinds = make(map[string]kind)
	mu    sync.RWMutex
)

// Register adds a behavior kind to the registry.
// Typically called from an init() function.
// Panics if the kind is already registered.
func Register(name, summary string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := kinds[name]; exists {
		panic(fmt.Sprintf("behavior: kind %q already registered", name))
	}
	kinds[name] = kind{summary: summary, factory: f}
}

// Kinds returns every registered kind, sorted by name.
func Kinds() []KindInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]KindInfo, 0, len(kinds))
	for name, k := range kinds {
		result = append(result, KindInfo{Kind: name, Summary: k.summary})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result
}

// Create instantiates a behavior of the named kind.
func Create(name string, props Props) (Behavior, error) {
	mu.RLock()
	k, ok := kinds[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("behavior: unknown kind %q", name)
	}
	b, err := k.factory(props)
	if err != nil {
		return nil, fmt.Errorf("behavior: create %q: %w", name, err)
	}
	return b, nil
}

// Exists reports whether a kind is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := kinds[name]
	return ok
}
