package plan

import (
	"gopkg.in/yaml.v3"
)

// Export is a reviewable summary of a plan: every generated name next to the
// raw name it came from.
type Export struct {
	App          string              `yaml:"app"`
	TypeName     string              `yaml:"type"`
	IntentType   string              `yaml:"intent_type"`
	Intents      []ExportIntent      `yaml:"intents"`
	Declarations []ExportDeclaration `yaml:"declarations"`
	Diagnostics  []string            `yaml:"diagnostics,omitempty"`
}

// ExportIntent is one enum member.
type ExportIntent struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	// Duplicate marks a member whose raw name appeared earlier.
	Duplicate bool `yaml:"duplicate,omitempty"`
}

// ExportDeclaration is one generated type.
type ExportDeclaration struct {
	Name   string        `yaml:"name"`
	Source string        `yaml:"source"`
	Path   string        `yaml:"path,omitempty"`
	Fields []ExportField `yaml:"fields"`
}

// ExportField is one generated field.
type ExportField struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Type   string `yaml:"type"`
	Role   bool   `yaml:"role,omitempty"`
}

// ExportPlan summarizes p. Declarations keep emission order: nested first,
// root last.
func ExportPlan(p *Plan) *Export {
	ex := &Export{
		App:          p.AppName,
		TypeName:     p.TypeName,
		IntentType:   p.IntentType,
		Intents:      make([]ExportIntent, 0, len(p.Intents)),
		Declarations: make([]ExportDeclaration, 0, len(p.Nested)+1),
	}

	for _, in := range p.Intents {
		ex.Intents = append(ex.Intents, ExportIntent{
			Name:      in.Ident,
			Source:    in.Source,
			Duplicate: !in.First,
		})
	}

	for _, d := range p.Declarations() {
		if d == nil {
			continue
		}

		ed := ExportDeclaration{
			Name:   d.Name,
			Source: d.Source,
			Path:   d.Path,
			Fields: make([]ExportField, 0, len(d.Fields)),
		}

		for _, f := range d.Fields {
			ed.Fields = append(ed.Fields, ExportField{
				Name:   f.Ident,
				Source: f.Source,
				Type:   f.Type.String(),
				Role:   f.Role,
			})
		}

		ex.Declarations = append(ex.Declarations, ed)
	}

	for _, d := range p.Diagnostics.All() {
		ex.Diagnostics = append(ex.Diagnostics, d.String())
	}

	return ex
}

// ExportYAML returns the summary of p as YAML.
func ExportYAML(p *Plan) ([]byte, error) {
	return yaml.Marshal(ExportPlan(p))
}
