package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"luisgen/internal/plan"
)

// TypeScript renders a plan as TypeScript interface declarations.
type TypeScript struct {
	// Description is recorded in the header comment.
	Description string
}

// Language returns "ts".
func (t *TypeScript) Language() string { return "ts" }

// Extension returns ".ts".
func (t *TypeScript) Extension() string { return ".ts" }

var tsPrimitives = map[plan.Primitive]string{
	plan.PrimitiveString:   "string",
	plan.PrimitiveNumber:   "number",
	plan.PrimitiveDateTime: "Date",
	plan.PrimitiveBoolean:  "boolean",
}

type tsData struct {
	Description string
	IntentType  string
	Intents     []intentData
	Nested      []tsDecl
	Root        tsDecl
}

type tsDecl struct {
	Name   string
	Fields []tsField
}

type tsField struct {
	Ident string
	Type  string
}

// Render returns the TypeScript artifact for p.
func (t *TypeScript) Render(p *plan.Plan) ([]byte, error) {
	if err := checkPlan(p); err != nil {
		return nil, err
	}

	data := &tsData{
		Description: oneLine(t.Description),
		IntentType:  p.IntentType,
		Intents:     buildIntents(p),
		Root:        tsDeclOf(p.Root),
	}

	for _, d := range p.Nested {
		data.Nested = append(data.Nested, tsDeclOf(d))
	}

	var buf bytes.Buffer
	if err := typescriptTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

func tsDeclOf(d *plan.Declaration) tsDecl {
	out := tsDecl{Name: d.Name}
	for _, f := range d.Fields {
		out.Fields = append(out.Fields, tsField{Ident: f.Ident, Type: tsType(f.Type)})
	}

	return out
}

func tsType(t plan.Type) string {
	if t.Composite {
		return t.Decl.Name
	}

	name := tsPrimitives[t.Primitive]
	if t.Repeated {
		name += "[]"
	}

	return name
}

var typescriptTemplate = template.Must(template.New("typescript").Parse(`// <auto-generated>
// Code generated by {{.Description}}
// Changes to this file may cause incorrect behavior and will be lost if the code is regenerated.
// </auto-generated>

export enum {{.IntentType}} {
{{- range .Intents}}
    {{.Ident}} = {{.Literal}},
{{- end}}
}
{{range .Nested}}
export interface {{.Name}} {
{{- range .Fields}}
    {{.Ident}}?: {{.Type}};
{{- end}}
}
{{end}}
export interface {{.Root.Name}} {
{{- range .Root.Fields}}
    {{.Ident}}?: {{.Type}};
{{- end}}
}
`))
