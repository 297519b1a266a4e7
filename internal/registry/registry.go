// Package registry provides a global registry of named rule presets.
// Presets register themselves in init() functions, so the CLI and config
// loader can look them up by ID without hardcoded tables.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Preset is a named rule, optionally tied to the topology it was designed for.
type Preset struct {
	ID    string
	Title string
	// Rule in canonical B<digits>/S<digits> form.
	Rule string
	// Topology the rule is meant for; zero means any.
	Topology life.Topology
}

// RuleSet parses the preset's rule.
func (p Preset) RuleSet() (life.RuleSet, error) {
	return life.ParseRuleString(p.Rule)
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Panics if the ID is already registered or the rule does not parse.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	if _, err := p.RuleSet(); err != nil {
		panic(fmt.Sprintf("registry: preset %q: %v", p.ID, err))
	}

	presets[p.ID] = p
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the preset registered under id.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
