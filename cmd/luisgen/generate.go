package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"luisgen/internal/config"
	"luisgen/internal/diagnostic"
	"luisgen/internal/gen"
	"luisgen/internal/plan"
	"luisgen/internal/schema"
)

// target is one requested artifact.
type target struct {
	language string
	typeName string
	// emitter builds the emitter once the type name is resolved.
	emitter func(typeName string) gen.Emitter
}

func runGenerate(cctx *cli.Context) error {
	cfg, err := loadConfig(cctx)
	if err != nil {
		return err
	}

	logger := configLogger(cfg.LogLevel, cctx.App.ErrWriter)

	if err := cfg.Validate(); err != nil {
		return err
	}

	input, err := inputPath(cctx)
	if err != nil {
		return err
	}

	doc, err := loadDocument(input, cctx.App.Reader)
	if err != nil {
		return err
	}

	logger.Debug("loaded export", "input", input, "app", doc.Name,
		"intents", len(doc.Intents), "entities", len(doc.Entities))

	outDir := outputDir(cfg.Output, input)
	g := gen.NewGenerator(gen.GeneratorConfig{OutputDir: outDir})

	var (
		files     []gen.GeneratedFile
		languages []string
	)

	for _, t := range targets(cfg, input, outDir) {
		p, err := plan.Resolve(doc, gen.ResolveOptions(t.typeName))
		if err != nil {
			return fmt.Errorf("resolving %s types: %w", t.language, err)
		}

		logDiagnostics(logger, t.language, p)

		if cctx.Bool("dump-plan") {
			spew.Fdump(cctx.App.ErrWriter, p)
		}

		if cctx.Bool("export-plan") {
			if err := exportPlan(cctx.App.Writer, t.language, p); err != nil {
				return err
			}
		}

		rendered, err := g.Generate(p, t.emitter(p.TypeName))
		if err != nil {
			return err
		}

		files = append(files, rendered...)
		languages = append(languages, t.language)
	}

	// Nothing is written until every target rendered.
	paths, err := g.Write(files)
	if err != nil {
		return err
	}

	for i, path := range paths {
		logger.Info("wrote artifact", "language", languages[i], "path", path)
	}

	return nil
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(cctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	if path := cctx.String("config"); path != "" {
		var err error

		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if cctx.IsSet("cs") {
		cfg.CSharp = cctx.Bool("cs")
	}

	if cctx.IsSet("ts") {
		cfg.TypeScript = cctx.Bool("ts")
	}

	if cctx.IsSet("class") {
		cfg.Class = cctx.String("class")
	}

	if cctx.IsSet("interface") {
		cfg.Interface = cctx.String("interface")
	}

	if cctx.IsSet("out") {
		cfg.Output = cctx.String("out")
	}

	if cctx.IsSet("log-level") {
		cfg.LogLevel = cctx.String("log-level")
	}

	return cfg, nil
}

// inputPath returns the export path, or "-" for standard input.
func inputPath(cctx *cli.Context) (string, error) {
	if cctx.Bool("stdin") {
		if cctx.Args().Present() {
			return "", fmt.Errorf("both --stdin and an input path were given")
		}

		return stdIOPath, nil
	}

	if cctx.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one input path (or --stdin), got %d", cctx.Args().Len())
	}

	return cctx.Args().First(), nil
}

// outputDir defaults to the directory of the input file.
func outputDir(configured, input string) string {
	if configured != "" {
		return configured
	}

	if input == stdIOPath {
		return "."
	}

	return filepath.Dir(input)
}

func targets(cfg *config.Config, input, outDir string) []*target {
	var out []*target

	// The header names standard input by its flag.
	source := input
	if input == stdIOPath {
		source = "--stdin"
	}

	if cfg.CSharp {
		ns, class := cfg.CSharpTarget()
		out = append(out, &target{
			language: "cs",
			typeName: class,
			emitter: func(typeName string) gen.Emitter {
				return &gen.CSharp{
					Namespace:   ns,
					Description: fmt.Sprintf("%s %s -cs %s.%s -o %s", cfg.Tool, source, ns, typeName, outDir),
				}
			},
		})
	}

	if cfg.TypeScript {
		out = append(out, &target{
			language: "ts",
			typeName: cfg.Interface,
			emitter: func(typeName string) gen.Emitter {
				return &gen.TypeScript{
					Description: fmt.Sprintf("%s %s -ts %s -o %s", cfg.Tool, source, typeName, outDir),
				}
			},
		})
	}

	return out
}

func logDiagnostics(logger *slog.Logger, language string, p *plan.Plan) {
	for _, d := range p.Diagnostics.All() {
		attrs := []any{"language", language, "code", d.Code}
		if d.Entity != "" {
			attrs = append(attrs, "entity", d.Entity)
		}

		if d.Path != "" {
			attrs = append(attrs, "path", d.Path)
		}

		if d.Severity == diagnostic.SeverityWarning {
			logger.Warn(d.Message, attrs...)
		} else {
			logger.Debug(d.Message, attrs...)
		}
	}
}

// exportPlan writes the YAML summary of p as one document of a stream.
func exportPlan(w io.Writer, language string, p *plan.Plan) error {
	data, err := plan.ExportYAML(p)
	if err != nil {
		return fmt.Errorf("exporting %s plan: %w", language, err)
	}

	_, err = fmt.Fprintf(w, "---\n# %s\n%s", language, data)

	return err
}

// loadDocument reads the export from input, or from stdin when input is "-".
func loadDocument(input string, stdin io.Reader) (*schema.Document, error) {
	if input != stdIOPath {
		return schema.LoadFile(input)
	}

	doc, err := schema.Load(stdin, schema.FormatJSON)
	if err != nil && !diagnostic.IsSchemaError(err) {
		return nil, diagnostic.NewIOError("read", stdIOPath, err)
	}

	return doc, err
}
