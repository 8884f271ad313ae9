package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"luisgen/internal/diagnostic"
)

// Format is the serialization of an export.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath guesses the format from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads and parses the export at path. The file is always closed
// before returning.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, diagnostic.NewIOError("read", path, err)
	}
	defer f.Close()

	doc, err := Load(f, FormatFromPath(path))
	if err != nil {
		if diagnostic.IsSchemaError(err) {
			return nil, err
		}

		return nil, diagnostic.NewIOError("read", path, err)
	}

	return doc, nil
}

// Load reads the whole stream and parses it in the given format.
func Load(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}

	if format == FormatYAML {
		return ParseYAML(data)
	}

	return Parse(data)
}

// Parse parses a JSON export.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, diagnostic.NewSchemaError(diagnostic.Malformed, "", err)
	}

	return build(&raw)
}

// ParseYAML parses a YAML export with the same layout as the JSON one.
func ParseYAML(data []byte) (*Document, error) {
	var raw rawDocument

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, diagnostic.NewSchemaError(diagnostic.Malformed, "", err)
	}

	return build(&raw)
}

// builder merges the raw sections into a Document.
type builder struct {
	doc *Document
	// refs indexes top-level entities by raw name, used to resolve composite
	// children given by name. Composite and unknown entries are nil.
	refs map[string]*rawRef
}

type rawRef struct {
	kind    Kind
	subkind string
}

func build(raw *rawDocument) (*Document, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return nil, diagnostic.NewSchemaError(diagnostic.MissingAppName, "name", nil)
	}

	b := &builder{
		doc: &Document{
			Name:    raw.Name,
			Version: raw.Version,
			Culture: raw.Culture,
		},
		refs: make(map[string]*rawRef),
	}

	for i, in := range raw.Intents {
		if strings.TrimSpace(in.Name) == "" {
			return nil, diagnostic.NewSchemaError(diagnostic.MissingIntentName,
				fmt.Sprintf("intents[%d].name", i), nil)
		}

		b.doc.Intents = append(b.doc.Intents, Intent{Name: in.Name})
	}

	sections := raw.sections()
	b.indexRefs(sections)

	for i, entries := range sections {
		sk := sectionKinds[i]
		for j := range entries {
			path := fmt.Sprintf("%s[%d]", sk.section, j)

			e, err := b.entity(&entries[j], sk.kind, sk.section, path, "")
			if err != nil {
				return nil, err
			}

			if first, dup := b.doc.lookup(e.Name); dup {
				b.doc.Diagnostics.AddWarning(diagnostic.CodeDuplicateEntity,
					fmt.Sprintf("%s duplicates the entity first declared in %s; dropped", path, first.Section),
					e.Name, e.Name)

				continue
			}

			b.doc.Entities = append(b.doc.Entities, e)
		}
	}

	return b.doc, nil
}

// indexRefs records the kind of every top-level entity. The first
// declaration of a name wins, matching the merge rule.
func (b *builder) indexRefs(sections [][]rawEntity) {
	for i, entries := range sections {
		sk := sectionKinds[i]
		for _, re := range entries {
			if _, ok := b.refs[re.Name]; ok || re.Name == "" {
				continue
			}

			kind := kindOf(&re, sk.kind, sk.section)
			if kind == KindComposite || kind == KindUnknown {
				b.refs[re.Name] = nil

				continue
			}

			b.refs[re.Name] = &rawRef{kind: kind, subkind: subkindOf(&re, kind)}
		}
	}
}

func kindOf(re *rawEntity, def Kind, section Section) Kind {
	if re.Kind != "" {
		return ParseKind(re.Kind)
	}

	if section == SectionEntities && len(re.Children) > 0 {
		return KindComposite
	}

	return def
}

func subkindOf(re *rawEntity, kind Kind) string {
	if kind != KindPrebuilt {
		return ""
	}

	if re.Subkind != "" {
		return re.Subkind
	}

	return re.Name
}

func (b *builder) entity(re *rawEntity, def Kind, section Section, path, parent string) (Entity, error) {
	if strings.TrimSpace(re.Name) == "" {
		return Entity{}, diagnostic.NewSchemaError(diagnostic.MissingEntityName, path+".name", nil)
	}

	e := Entity{
		Name:    re.Name,
		Kind:    kindOf(re, def, section),
		Section: section,
		Parent:  parent,
	}

	if e.Kind == KindUnknown {
		e.RawKind = re.Kind
	}

	// A child declared as an instance of another entity takes that entity's kind.
	if re.Kind == "" && re.InstanceOf != "" && len(re.Children) == 0 {
		e.Kind, e.Subkind = b.resolveRef(re.InstanceOf)
	} else {
		e.Subkind = subkindOf(re, e.Kind)
	}

	for _, role := range re.Roles {
		if strings.TrimSpace(role) != "" {
			e.Roles = append(e.Roles, role)
		}
	}

	for i := range re.Children {
		child := &re.Children[i]
		childPath := fmt.Sprintf("%s.children[%d]", path, i)

		if child.Ref {
			if strings.TrimSpace(child.Name) == "" {
				return Entity{}, diagnostic.NewSchemaError(diagnostic.MissingEntityName, childPath, nil)
			}

			kind, subkind := b.resolveRef(child.Name)
			e.Children = append(e.Children, Entity{
				Name:    child.Name,
				Kind:    kind,
				Subkind: subkind,
				Section: section,
				Parent:  e.Path(),
			})

			continue
		}

		c, err := b.entity(&child.rawEntity, KindSimple, section, childPath, e.Path())
		if err != nil {
			return Entity{}, err
		}

		e.Children = append(e.Children, c)
	}

	return e, nil
}

// resolveRef returns the kind of the named entity, or KindSimple when the
// name is not declared or first declared as a composite.
func (b *builder) resolveRef(name string) (Kind, string) {
	if ref := b.refs[name]; ref != nil {
		return ref.kind, ref.subkind
	}

	return KindSimple, ""
}
