package schema

import "strings"

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the structural kind of an entity.
type Kind int

const (
	// KindUnknown marks an entity whose declared kind was not recognized.
	KindUnknown Kind = iota
	KindSimple
	KindList
	KindComposite
	KindPrebuilt
)

// Section names an entity-bearing section of an export.
type Section string

const (
	SectionEntities     Section = "entities"
	SectionRegex        Section = "regex_entities"
	SectionComposites   Section = "composites"
	SectionHierarchical Section = "hierarchicals"
	SectionClosedLists  Section = "closedLists"
	SectionPrebuilt     Section = "prebuiltEntities"
	SectionPatternAny   Section = "patternAnyEntities"
)

// sectionKinds lists the sections in merge order with their default kind.
var sectionKinds = []struct {
	section Section
	kind    Kind
}{
	{SectionEntities, KindSimple},
	{SectionRegex, KindSimple},
	{SectionComposites, KindComposite},
	{SectionHierarchical, KindComposite},
	{SectionClosedLists, KindList},
	{SectionPrebuilt, KindPrebuilt},
	{SectionPatternAny, KindSimple},
}

// ParseKind maps the textual kind of an entity descriptor to a Kind.
// Matching ignores case, spaces, dots, dashes and underscores.
// Unrecognized text yields KindUnknown.
func ParseKind(s string) Kind {
	norm := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '-', '_':
			return -1
		}

		return r
	}, strings.ToLower(s))

	switch norm {
	case "simple", "entity", "machinelearned", "ml", "regex", "patternany":
		return KindSimple
	case "list", "closedlist":
		return KindList
	case "composite", "hierarchical":
		return KindComposite
	case "prebuilt":
		return KindPrebuilt
	default:
		return KindUnknown
	}
}
