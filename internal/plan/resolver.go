package plan

import (
	"fmt"
	"strings"

	"luisgen/internal/diagnostic"
	"luisgen/internal/naming"
	"luisgen/internal/schema"
)

// Options controls plan resolution.
type Options struct {
	// TypeName is the requested name of the top-level declaration.
	// Empty means DefaultTypeName of the app name.
	TypeName string
	// ReservedTypes are type names the emitters rely on. Declarations never
	// use them.
	ReservedTypes []string
	// ReservedMembers are member names the emitters add to every
	// declaration. Fields never use them.
	ReservedMembers []string
}

// DefaultTypeName derives the top-level type name from an app name by
// replacing spaces with underscores.
func DefaultTypeName(appName string) string {
	return strings.ReplaceAll(appName, " ", "_")
}

// Resolver builds a Plan from a Document.
type Resolver struct {
	doc  *schema.Document
	opts Options

	plan *Plan
	// types is the scope shared by all declaration and enumeration names.
	types *naming.Scope
}

// NewResolver creates a Resolver for doc.
func NewResolver(doc *schema.Document, opts Options) *Resolver {
	return &Resolver{doc: doc, opts: opts}
}

// Resolve is shorthand for NewResolver(doc, opts).Resolve().
func Resolve(doc *schema.Document, opts Options) (*Plan, error) {
	return NewResolver(doc, opts).Resolve()
}

// Resolve walks the document and returns the plan. It fails only when an
// entity has a kind the type mapper cannot classify.
func (r *Resolver) Resolve() (*Plan, error) {
	r.types = naming.NewScope(naming.PlaceholderEntity, r.opts.ReservedTypes...)
	r.plan = &Plan{AppName: r.doc.Name}
	r.plan.Diagnostics.Merge(r.doc.Diagnostics)

	requested := r.opts.TypeName
	if requested == "" {
		requested = DefaultTypeName(r.doc.Name)
	}

	r.plan.TypeName = r.types.Sanitize(requested)
	r.plan.IntentType = r.types.Sanitize(r.plan.TypeName + "Intent")

	r.resolveIntents()

	root := &Declaration{Name: r.plan.TypeName, Source: r.doc.Name}
	scope := r.memberScope(root)

	for i := range r.doc.Entities {
		if err := r.addEntity(root, scope, &r.doc.Entities[i]); err != nil {
			return nil, err
		}
	}

	r.plan.Root = root

	return r.plan, nil
}

func (r *Resolver) resolveIntents() {
	scope := naming.NewScope(naming.PlaceholderIntent)
	seen := make(map[string]bool, len(r.doc.Intents))

	for _, in := range r.doc.Intents {
		ident := r.claim(scope, in.Name, naming.PlaceholderIntent)

		r.plan.Intents = append(r.plan.Intents, IntentMember{
			Ident:  ident,
			Source: in.Name,
			First:  !seen[in.Name],
		})
		seen[in.Name] = true
	}
}

// addEntity appends the entity's field and its role fields to decl.
func (r *Resolver) addEntity(decl *Declaration, scope *naming.Scope, e *schema.Entity) error {
	t, degraded, err := classify(e)
	if err != nil {
		return err
	}

	if degraded != nil {
		r.plan.Diagnostics.AddWarning(degraded.code, degraded.message, e.Name, e.Path())
	}

	if t.Composite {
		nested, err := r.nested(e)
		if err != nil {
			return err
		}

		t.Decl = nested
	}

	decl.Fields = append(decl.Fields, Field{
		Ident:  r.claim(scope, e.Name, naming.PlaceholderEntity),
		Source: e.Name,
		Entity: e.Name,
		Type:   t,
	})

	for _, role := range e.Roles {
		decl.Fields = append(decl.Fields, Field{
			Ident:  r.claim(scope, role, naming.PlaceholderEntity),
			Source: role,
			Entity: e.Name,
			Type:   t,
			Role:   true,
		})
	}

	return nil
}

// nested builds the declaration of a composite. Child declarations are
// registered before their parent.
func (r *Resolver) nested(e *schema.Entity) (*Declaration, error) {
	decl := &Declaration{
		Name:   r.claim(r.types, e.Name, naming.PlaceholderEntity),
		Source: e.Name,
		Path:   e.Path(),
	}
	scope := r.memberScope(decl)

	for i := range e.Children {
		if err := r.addEntity(decl, scope, &e.Children[i]); err != nil {
			return nil, err
		}
	}

	r.plan.Nested = append(r.plan.Nested, decl)

	return decl, nil
}

// memberScope returns a fresh field scope for decl. A member may not share
// the name of its enclosing type.
func (r *Resolver) memberScope(decl *Declaration) *naming.Scope {
	claimed := make([]string, 0, len(r.opts.ReservedMembers)+1)
	claimed = append(claimed, decl.Name)
	claimed = append(claimed, r.opts.ReservedMembers...)

	return naming.NewScope(naming.PlaceholderEntity, claimed...)
}

// claim sanitizes raw in scope and records a diagnostic when a collision
// forced a suffix.
func (r *Resolver) claim(scope *naming.Scope, raw, placeholder string) string {
	ident := scope.Sanitize(raw)
	if base := naming.Identifier(raw, placeholder); ident != base {
		r.plan.Diagnostics.AddInfo(diagnostic.CodeRenamed,
			fmt.Sprintf("identifier %s already used; renamed to %s", base, ident), raw, "")
	}

	return ident
}
