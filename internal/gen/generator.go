package gen

import (
	"fmt"
	"strings"

	"luisgen/internal/plan"
)

// Emitter renders a plan in one target language.
type Emitter interface {
	// Language returns the short name of the target, e.g. "cs".
	Language() string
	// Extension returns the file extension including the dot, e.g. ".cs".
	Extension() string
	// Render returns the complete artifact for p.
	Render(p *plan.Plan) ([]byte, error)
}

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is the directory where generated files are written.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir: ".",
	}
}

// Generator renders plans with a set of emitters.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration. Unset
// fields take their values from DefaultGeneratorConfig.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.OutputDir == "" {
		config.OutputDir = DefaultGeneratorConfig().OutputDir
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the name of the file, e.g. "Home_Automation.cs".
	Filename string
	// Content is the rendered source.
	Content []byte
}

// Generate renders p with every emitter. Either all files are returned or
// none.
func (g *Generator) Generate(p *plan.Plan, emitters ...Emitter) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(emitters))

	for _, e := range emitters {
		content, err := e.Render(p)
		if err != nil {
			return nil, fmt.Errorf("rendering %s for %s: %w", e.Language(), p.TypeName, err)
		}

		files = append(files, GeneratedFile{
			Filename: Filename(p, e),
			Content:  content,
		})
	}

	return files, nil
}

// Emit renders p with every emitter and writes the files to the configured
// output directory. It returns the written paths.
func (g *Generator) Emit(p *plan.Plan, emitters ...Emitter) ([]string, error) {
	files, err := g.Generate(p, emitters...)
	if err != nil {
		return nil, err
	}

	return g.Write(files)
}

// Write writes already rendered files to the configured output directory.
func (g *Generator) Write(files []GeneratedFile) ([]string, error) {
	return WriteFiles(files, g.config.OutputDir)
}

// Emit renders p with e and writes "<TypeName><ext>" into outputDir,
// replacing any existing file. It returns the written path.
func Emit(e Emitter, p *plan.Plan, outputDir string) (string, error) {
	paths, err := NewGenerator(GeneratorConfig{OutputDir: outputDir}).Emit(p, e)
	if err != nil {
		return "", err
	}

	return paths[0], nil
}

// Filename returns the artifact file name of p for e.
func Filename(p *plan.Plan, e Emitter) string {
	return p.TypeName + e.Extension()
}

// oneLine flattens s so it fits in a single-line comment.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// quoteLiteral returns s as a double-quoted string literal valid in both C#
// and TypeScript.
func quoteLiteral(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for _, r := range s {
		switch {
		case r == '"':
			sb.WriteString(`\"`)
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x20 || r == 0x7f || r == 0x2028 || r == 0x2029:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

// intentData is one enum member ready for a template.
type intentData struct {
	Ident   string
	Literal string
	First   bool
}

func buildIntents(p *plan.Plan) []intentData {
	out := make([]intentData, 0, len(p.Intents))
	for _, in := range p.Intents {
		out = append(out, intentData{
			Ident:   in.Ident,
			Literal: quoteLiteral(in.Source),
			First:   in.First,
		})
	}

	return out
}

// checkPlan rejects plans whose composite fields were never attached to a
// declaration.
func checkPlan(p *plan.Plan) error {
	if p == nil || p.Root == nil {
		return fmt.Errorf("plan has no root declaration")
	}

	for _, d := range p.Declarations() {
		for _, f := range d.Fields {
			if f.Type.Composite && f.Type.Decl == nil {
				return fmt.Errorf("field %s.%s references no declaration", d.Name, f.Ident)
			}
		}
	}

	return nil
}
