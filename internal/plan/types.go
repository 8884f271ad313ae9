package plan

import (
	"strings"

	"luisgen/internal/diagnostic"
)

// Type is the emitted type of a field. Every field is optional; Type only
// describes what a present value looks like.
type Type struct {
	// Primitive is the scalar type. Ignored when Composite is set.
	Primitive Primitive
	// Repeated marks an ordered sequence of Primitive.
	Repeated bool
	// Composite marks a reference to a nested declaration.
	Composite bool
	// Decl is the nested declaration referenced by a composite type. It is
	// attached by Resolve; ResolveType leaves it nil.
	Decl *Declaration
}

// String returns a readable form such as "[]DateTime" or "Meeting".
func (t Type) String() string {
	if t.Composite {
		if t.Decl != nil {
			return t.Decl.Name
		}

		return "composite"
	}

	var sb strings.Builder
	if t.Repeated {
		sb.WriteString("[]")
	}

	sb.WriteString(t.Primitive.String())

	return sb.String()
}

// Field is one resolved field of a declaration.
type Field struct {
	// Ident is the sanitized field identifier, unique in its declaration.
	Ident string
	// Source is the raw name the recognizer reports the value under: the
	// entity name, or the role name for role fields.
	Source string
	// Entity is the raw name of the entity the field was derived from.
	Entity string
	// Type of a present value.
	Type Type
	// Role marks a field produced by one of the entity's roles.
	Role bool
}

// IsNested reports whether the field references a nested declaration.
func (f Field) IsNested() bool {
	return f.Type.Composite && f.Type.Decl != nil
}

// Declaration is a generated type with one field per entity or role.
type Declaration struct {
	// Name is the sanitized type name, unique among all declarations.
	Name string
	// Source is the raw name: the app name for the root, the composite name
	// for nested declarations.
	Source string
	// Path is the dotted composite path, empty for the root.
	Path   string
	Fields []Field
}

// IntentMember is one member of the intent enumeration.
type IntentMember struct {
	// Ident is the sanitized member name, unique in the enumeration.
	Ident string
	// Source is the raw intent name.
	Source string
	// First is false when an earlier member has the same raw name.
	First bool
}

// Plan is the resolved, language-neutral model of one export.
type Plan struct {
	// AppName is the raw application name.
	AppName string
	// TypeName is the sanitized name of the top-level declaration.
	TypeName string
	// IntentType is the sanitized name of the intent enumeration.
	IntentType string
	// Intents in encounter order.
	Intents []IntentMember
	// Root is the top-level declaration.
	Root *Declaration
	// Nested holds one declaration per composite, children before parents.
	Nested []*Declaration
	// Diagnostics collected while loading and resolving.
	Diagnostics diagnostic.Diagnostics
}

// Declarations returns the nested declarations followed by the root.
func (p *Plan) Declarations() []*Declaration {
	out := make([]*Declaration, 0, len(p.Nested)+1)
	out = append(out, p.Nested...)

	return append(out, p.Root)
}
