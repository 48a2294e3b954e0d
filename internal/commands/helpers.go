package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/kestrel/config"
	"github.com/simonhull/firebird-suite/kestrel/generator"
	"github.com/simonhull/firebird-suite/kestrel/logger"
	"github.com/simonhull/firebird-suite/kestrel/manifest"
	"github.com/simonhull/firebird-suite/kestrel/output"
	"github.com/simonhull/firebird-suite/kestrel/rclass"
)

// buildFlags are the flags shared by generate and check. Each overrides
// the matching config value only when set on the command line.
type buildFlags struct {
	manifest   string
	out        string
	pkg        string
	class      string
	symbols    string
	nonFinal   bool
	noComments bool
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.manifest, "manifest", "m", "", "Resource manifest (default from config: resources.yml)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output directory for generated sources (default from config: gen)")
	cmd.Flags().StringVarP(&f.pkg, "package", "p", "", "Java package (default: the manifest's package)")
	cmd.Flags().StringVar(&f.class, "class", "", "Name of the generated class (default R)")
	cmd.Flags().StringVar(&f.symbols, "symbols", "", "Also write an R.txt symbol table to this path")
	cmd.Flags().BoolVar(&f.nonFinal, "non-final-ids", false, "Emit non-final constants (library modules)")
	cmd.Flags().BoolVar(&f.noComments, "no-comments", false, "Omit Javadoc comments")
}

// loadConfig reads the config named by --config and applies flag overrides
func loadConfig(cmd *cobra.Command, f *buildFlags) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.Manifest = f.manifest
	}
	if flags.Changed("out") {
		cfg.Output.Dir = f.out
	}
	if flags.Changed("package") {
		cfg.Package = f.pkg
	}
	if flags.Changed("class") {
		cfg.ClassName = f.class
	}
	if flags.Changed("symbols") {
		cfg.Output.Symbols = f.symbols
	}
	if f.nonFinal {
		cfg.Final = false
	}
	if f.noComments {
		cfg.Comments = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Default().Debugw("loaded config",
		logger.FieldConfig, cfg.File,
		logger.FieldManifest, cfg.Manifest,
		logger.FieldPath, cfg.Output.Dir)
	return cfg, nil
}

// buildResult holds the rendered files for one manifest
type buildResult struct {
	table       *manifest.Table
	pkg         string
	javaPath    string
	java        []byte
	symbolsPath string
	symbols     []byte
}

// build loads the manifest named by cfg and renders its R class and,
// when configured, its symbol table
func build(cfg *config.Config) (*buildResult, error) {
	log := logger.Default()

	table, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return nil, err
	}
	log.Debugw("loaded manifest", logger.FieldManifest, cfg.Manifest, logger.FieldCount, table.Len())
	if table.Empty() {
		output.Verbose(fmt.Sprintf("%s declares no resources; %s will be an empty class", cfg.Manifest, cfg.ClassName))
	}

	b := rclass.NewBuilder(cfg.Options(), log)
	pkg := b.Package(table)
	root := b.Build(table)
	java, err := b.RenderClass(root, pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", cfg.Manifest, err)
	}

	res := &buildResult{
		table:    table,
		pkg:      pkg,
		javaPath: javaPath(cfg.Output.Dir, pkg, cfg.ClassName),
		java:     java,
	}
	if cfg.Output.Symbols != "" {
		res.symbolsPath = cfg.Output.Symbols
		res.symbols = rclass.Symbols(root)
	}
	return res, nil
}

// generatedFile is one output of a build
type generatedFile struct {
	path    string
	content []byte
}

// outputs returns the generated files, R.java first
func (r *buildResult) outputs() []generatedFile {
	files := []generatedFile{{r.javaPath, r.java}}
	if r.symbolsPath != "" {
		files = append(files, generatedFile{r.symbolsPath, r.symbols})
	}
	return files
}

// operations returns one write per generated file
func (r *buildResult) operations() []generator.Operation {
	var ops []generator.Operation
	for _, f := range r.outputs() {
		ops = append(ops, &generator.WriteFileOp{Path: f.path, Content: f.content, Mode: 0644})
	}
	return ops
}

// javaPath places the class under dir following the package's directory
// layout, e.g. gen/com/example/app/R.java
func javaPath(dir, pkg, class string) string {
	parts := append([]string{dir}, strings.Split(pkg, ".")...)
	return filepath.Join(append(parts, class+".java")...)
}
