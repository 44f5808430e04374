package choice

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Choice is a single selectable item. Identity is the ID; the Label is what
// filtering and display operate on. Choices are immutable once handed to a
// Registry.
type Choice struct {
	ID      string
	Label   string
	Enabled bool
}

// Registry is the ordered catalogue of choices for one widget instance.
// Order is the order choices were supplied in; that order is also the
// display and reporting order for selections. Duplicate ids are tolerated
// with a first-match-wins lookup policy.
type Registry struct {
	choices []Choice
	index   map[string]int // id -> first index with that id
}

// NewRegistry builds a registry from the supplied choices, preserving order.
func NewRegistry(choices []Choice) *Registry {
	r := &Registry{
		choices: make([]Choice, len(choices)),
		index:   make(map[string]int, len(choices)),
	}
	copy(r.choices, choices)
	for i, c := range r.choices {
		if _, seen := r.index[c.ID]; !seen {
			r.index[c.ID] = i
		}
	}
	return r
}

// Len returns the number of choices in the registry.
func (r *Registry) Len() int {
	return len(r.choices)
}

// Choices returns the registry contents in registry order.
// The returned slice is shared; callers must not mutate it.
func (r *Registry) Choices() []Choice {
	return r.choices
}

// ByID looks up a choice by id. For duplicate ids the first occurrence wins.
func (r *Registry) ByID(id string) (Choice, bool) {
	i, ok := r.index[id]
	if !ok {
		return Choice{}, false
	}
	return r.choices[i], true
}

// Contains reports whether id names a choice in the registry.
func (r *Registry) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// choiceDoc is the YAML shape of a choices file. Enabled is a pointer so an
// omitted field defaults to true rather than false.
type choiceDoc struct {
	Choices []struct {
		ID      string `yaml:"id"`
		Label   string `yaml:"label"`
		Enabled *bool  `yaml:"enabled"`
	} `yaml:"choices"`
}

// LoadFile reads a choices YAML file. A choice with no label falls back to
// its id so a minimal file of bare ids still renders something useful.
func LoadFile(path string) ([]Choice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read choices file: %w", err)
	}
	return Parse(data)
}

// Parse decodes choices from YAML bytes.
func Parse(data []byte) ([]Choice, error) {
	var doc choiceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse choices: %w", err)
	}

	choices := make([]Choice, 0, len(doc.Choices))
	for _, c := range doc.Choices {
		label := c.Label
		if label == "" {
			label = c.ID
		}
		enabled := true
		if c.Enabled != nil {
			enabled = *c.Enabled
		}
		choices = append(choices, Choice{
			ID:      c.ID,
			Label:   label,
			Enabled: enabled,
		})
	}
	return choices, nil
}
