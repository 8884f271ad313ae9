package naming

import (
	"strconv"
	"strings"
	"unicode"
)

// Placeholders substituted for names that are empty after trimming.
const (
	PlaceholderEntity = "_entity"
	PlaceholderIntent = "_intent"
)

// reserved holds the keywords of C# and the reserved words of TypeScript.
// A single set keeps identifiers identical across every emitted artifact.
var reserved = map[string]struct{}{}

func init() {
	words := []string{
		// C#
		"abstract", "as", "base", "bool", "break", "byte", "case", "catch",
		"char", "checked", "class", "const", "continue", "decimal", "default",
		"delegate", "do", "double", "else", "enum", "event", "explicit",
		"extern", "false", "finally", "fixed", "float", "for", "foreach",
		"goto", "if", "implicit", "in", "int", "interface", "internal", "is",
		"lock", "long", "namespace", "new", "null", "object", "operator",
		"out", "override", "params", "private", "protected", "public",
		"readonly", "ref", "return", "sbyte", "sealed", "short", "sizeof",
		"stackalloc", "static", "string", "struct", "switch", "this", "throw",
		"true", "try", "typeof", "uint", "ulong", "unchecked", "unsafe",
		"ushort", "using", "virtual", "void", "volatile", "while",
		// TypeScript
		"debugger", "delete", "export", "extends", "function", "implements",
		"import", "instanceof", "let", "package", "super", "var", "with",
		"yield",
	}

	for _, w := range words {
		reserved[w] = struct{}{}
	}
}

// IsReserved reports whether s is a keyword in any generated language.
func IsReserved(s string) bool {
	_, ok := reserved[s]

	return ok
}

// Identifier converts raw into a valid identifier.
//
// Surrounding whitespace is trimmed, every rune that is not a letter, digit
// or underscore becomes '_', a leading digit or a reserved word is prefixed
// with '_', and an empty result is replaced by placeholder.
func Identifier(raw, placeholder string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return placeholder
	}

	var sb strings.Builder

	sb.Grow(len(trimmed) + 1)

	for i, r := range trimmed {
		if i == 0 && unicode.IsDigit(r) {
			sb.WriteByte('_')
		}

		if isIdentRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}

	id := sb.String()
	if IsReserved(id) {
		return "_" + id
	}

	return id
}

// Qualified sanitizes every dot-separated segment of a qualified name such
// as a C# namespace. Empty segments are dropped.
func Qualified(raw, placeholder string) string {
	var parts []string

	for _, seg := range strings.Split(raw, ".") {
		if strings.TrimSpace(seg) == "" {
			continue
		}

		parts = append(parts, Identifier(seg, placeholder))
	}

	if len(parts) == 0 {
		return placeholder
	}

	return strings.Join(parts, ".")
}

// isIdentRune returns true if the rune may appear in an identifier.
func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Scope tracks the identifiers already used in one declaration scope.
type Scope struct {
	placeholder string
	taken       map[string]struct{}
}

// NewScope creates a scope whose empty names become placeholder. The given
// identifiers are claimed up front.
func NewScope(placeholder string, claimed ...string) *Scope {
	s := &Scope{
		placeholder: placeholder,
		taken:       make(map[string]struct{}, len(claimed)),
	}

	for _, id := range claimed {
		s.Reserve(id)
	}

	return s
}

// Sanitize returns a valid identifier for raw that is unique in the scope and
// claims it.
func (s *Scope) Sanitize(raw string) string {
	base := Identifier(raw, s.placeholder)
	if !s.Has(base) {
		s.Reserve(base)

		return base
	}

	for n := 1; ; n++ {
		candidate := base + "_" + strconv.Itoa(n)
		if !s.Has(candidate) {
			s.Reserve(candidate)

			return candidate
		}
	}
}

// Reserve claims id without sanitizing it.
func (s *Scope) Reserve(id string) {
	s.taken[id] = struct{}{}
}

// Has reports whether id is already claimed.
func (s *Scope) Has(id string) bool {
	_, ok := s.taken[id]

	return ok
}
