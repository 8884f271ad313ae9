package schema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// rawDocument mirrors the export layout. Every section is optional.
type rawDocument struct {
	Version       string      `json:"luis_schema_version" yaml:"luis_schema_version"`
	Name          string      `json:"name" yaml:"name"`
	Culture       string      `json:"culture" yaml:"culture"`
	Intents       []rawIntent `json:"intents" yaml:"intents"`
	Entities      []rawEntity `json:"entities" yaml:"entities"`
	Regex         []rawEntity `json:"regex_entities" yaml:"regex_entities"`
	Composites    []rawEntity `json:"composites" yaml:"composites"`
	Hierarchicals []rawEntity `json:"hierarchicals" yaml:"hierarchicals"`
	ClosedLists   []rawEntity `json:"closedLists" yaml:"closedLists"`
	Prebuilt      []rawEntity `json:"prebuiltEntities" yaml:"prebuiltEntities"`
	PatternAny    []rawEntity `json:"patternAnyEntities" yaml:"patternAnyEntities"`
}

type rawIntent struct {
	Name string `json:"name" yaml:"name"`
}

type rawEntity struct {
	Name       string     `json:"name" yaml:"name"`
	Kind       string     `json:"kind" yaml:"kind"`
	Subkind    string     `json:"subkind" yaml:"subkind"`
	InstanceOf string     `json:"instanceOf" yaml:"instanceOf"`
	Roles      []string   `json:"roles" yaml:"roles"`
	Children   []rawChild `json:"children" yaml:"children"`
}

// rawChild is a composite child written either as an object or as a bare
// entity name.
type rawChild struct {
	rawEntity
	// Ref is set when the child was a bare name.
	Ref bool
}

func (c *rawChild) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c.Name = name
		c.Ref = true

		return nil
	}

	return json.Unmarshal(data, &c.rawEntity)
}

func (c *rawChild) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		c.Ref = true

		return value.Decode(&c.Name)
	case yaml.MappingNode:
		return value.Decode(&c.rawEntity)
	default:
		return fmt.Errorf("line %d: child must be a name or an entity", value.Line)
	}
}

// sections returns the entity sections in merge order.
func (r *rawDocument) sections() [][]rawEntity {
	bySection := map[Section][]rawEntity{
		SectionEntities:     r.Entities,
		SectionRegex:        r.Regex,
		SectionComposites:   r.Composites,
		SectionHierarchical: r.Hierarchicals,
		SectionClosedLists:  r.ClosedLists,
		SectionPrebuilt:     r.Prebuilt,
		SectionPatternAny:   r.PatternAny,
	}

	out := make([][]rawEntity, len(sectionKinds))
	for i, sk := range sectionKinds {
		out[i] = bySection[sk.section]
	}

	return out
}
