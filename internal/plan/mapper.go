package plan

import (
	"luisgen/internal/diagnostic"
	"luisgen/internal/match"
	"luisgen/internal/schema"
)

// degradation explains why an entity fell back to the string type.
type degradation struct {
	code    string
	message string
}

// ResolveType returns the emitted type of an entity. It depends only on the
// entity's kind, prebuilt recognizer and children, so identical descriptors
// always resolve to identical types. Composite types carry no declaration;
// Resolve attaches it.
func ResolveType(e *schema.Entity) (Type, error) {
	t, _, err := classify(e)

	return t, err
}

func classify(e *schema.Entity) (Type, *degradation, error) {
	switch e.Kind {
	case schema.KindSimple:
		return Type{Primitive: PrimitiveString}, nil, nil

	case schema.KindList:
		return Type{Primitive: PrimitiveString, Repeated: true}, nil, nil

	case schema.KindPrebuilt:
		if t, ok := LookupPrebuilt(e.Subkind); ok {
			return t, nil, nil
		}

		msg := "unknown prebuilt recognizer " + quote(e.Subkind) + "; generated as string"
		if s, ok := match.Suggest(e.Subkind, prebuiltNames, match.DefaultThreshold); ok {
			msg += " (did you mean " + quote(s) + "?)"
		}

		return Type{Primitive: PrimitiveString}, &degradation{
			code:    diagnostic.CodeUnknownPrebuilt,
			message: msg,
		}, nil

	case schema.KindComposite:
		if len(e.Children) > 0 {
			return Type{Composite: true}, nil, nil
		}

		return Type{Primitive: PrimitiveString}, &degradation{
			code:    diagnostic.CodeEmptyComposite,
			message: "composite has no children; generated as string",
		}, nil

	default:
		kind := e.RawKind
		if kind == "" {
			kind = e.Kind.String()
		}

		return Type{}, nil, diagnostic.NewUnsupportedKindError(e.Path(), kind)
	}
}

func quote(s string) string {
	return `"` + s + `"`
}
