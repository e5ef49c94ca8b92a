// Package loader reads capability, kind and entity type definitions from
// YAML or JSON and registers them.
package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zeusync/entitytype/internal/core/entity"
	"github.com/zeusync/entitytype/internal/core/kinds"
	"gopkg.in/yaml.v3"
)

// Config is a unified structure able to describe definitions in JSON or YAML.
// Entity indexes are not part of it; they come from registration order.
type Config struct {
	Capabilities []CapabilityRecord `json:"capabilities" yaml:"capabilities"`
	Kinds        []KindRecord       `json:"kinds" yaml:"kinds"`
	Entities     []EntityRecord     `json:"entities" yaml:"entities"`
}

type CapabilityRecord struct {
	Name    string   `json:"name" yaml:"name"`
	Parents []string `json:"parents,omitempty" yaml:"parents,omitempty"`
}

type KindRecord struct {
	Name       string   `json:"name" yaml:"name"`
	Implements []string `json:"implements,omitempty" yaml:"implements,omitempty"`
}

// EntityRecord lists component kind names in slot order. An empty or null
// entry becomes a nil component; entries are pointers so a null item keeps
// its slot instead of being dropped by the decoder.
type EntityRecord struct {
	Name       string    `json:"name" yaml:"name"`
	Components []*string `json:"components" yaml:"components"`
}

// Names returns the component kind names with null entries as "".
func (r EntityRecord) Names() []string {
	names := make([]string, len(r.Components))
	for i, name := range r.Components {
		if name != nil {
			names[i] = *name
		}
	}
	return names
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Build defines capabilities and kinds in kr, then creates and registers the
// entity types in er in file order.
//
// Capabilities are defined before any kind, so a capability parent named in
// a file must be another capability, not a kind.
//
// Broken capability or kind definitions fail the build. Entity component
// names that do not match a kind do not: the component is kept with a nil
// kind so Validate can report and strip it.
//
// Build stops at the first failing record. Definitions registered before it
// stay in kr and er; callers that hit an error should discard both
// registries.
func (c *Config) Build(kr *kinds.Registry, er *entity.Registry) ([]*entity.Type, error) {
	for _, rec := range c.Capabilities {
		if err := kr.DefineCapability(rec.Name, rec.Parents...); err != nil {
			return nil, fmt.Errorf("define capability: %w", err)
		}
	}
	for _, rec := range c.Kinds {
		if _, err := kr.RegisterKind(rec.Name, rec.Implements...); err != nil {
			return nil, fmt.Errorf("register kind: %w", err)
		}
	}

	types := make([]*entity.Type, 0, len(c.Entities))
	for _, rec := range c.Entities {
		comps := make([]*entity.Component, len(rec.Components))
		for i, name := range rec.Names() {
			if name == "" {
				continue
			}
			if k, ok := kr.Kind(name); ok {
				comps[i] = entity.NewComponent(k)
			} else {
				comps[i] = &entity.Component{KindName: name}
			}
		}

		t := entity.NewType(rec.Name, comps...)
		if err := er.Register(t); err != nil {
			return nil, fmt.Errorf("entity %q: %w", rec.Name, err)
		}
		types = append(types, t)
	}
	return types, nil
}
