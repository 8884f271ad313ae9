package schema

import "luisgen/internal/diagnostic"

// Document is the loaded form of a LUIS export.
type Document struct {
	// Name is the application name. Never blank.
	Name string
	// Version is the luis_schema_version of the export, if present.
	Version string
	// Culture is the export culture, e.g. "en-us", if present.
	Culture string
	// Intents in export order.
	Intents []Intent
	// Entities merged from every section, in section order then source order.
	Entities []Entity
	// Diagnostics collects non-fatal findings such as dropped duplicates.
	Diagnostics diagnostic.Diagnostics
}

// Intent is a named category of user purpose.
type Intent struct {
	Name string
}

// Entity describes a named span of recognized data.
type Entity struct {
	// Name is the raw entity name as written in the export.
	Name string
	// Kind is the structural kind.
	Kind Kind
	// RawKind holds the declared kind text when Kind is KindUnknown.
	RawKind string
	// Section is the export section the entity (or its root composite) came from.
	Section Section
	// Subkind is the prebuilt recognizer name for KindPrebuilt, e.g. "number".
	Subkind string
	// Roles are alternate names under which the entity is also reported.
	Roles []string
	// Children of a composite entity, in source order.
	Children []Entity
	// Parent is the dotted path of the owning composite, empty at top level.
	Parent string
}

// IsComposite reports whether the entity is a composite with at least one child.
func (e *Entity) IsComposite() bool {
	return e.Kind == KindComposite && len(e.Children) > 0
}

// Path returns the dotted path of the entity, e.g. "Meeting.Room".
func (e *Entity) Path() string {
	if e.Parent == "" {
		return e.Name
	}

	return e.Parent + "." + e.Name
}

// lookup returns the top-level entity with the given raw name.
func (d *Document) lookup(name string) (*Entity, bool) {
	for i := range d.Entities {
		if d.Entities[i].Name == name {
			return &d.Entities[i], true
		}
	}

	return nil, false
}
