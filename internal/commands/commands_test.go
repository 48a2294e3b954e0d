package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/kestrel"
	"github.com/simonhull/firebird-suite/kestrel/config"
	"github.com/simonhull/firebird-suite/kestrel/logger"
	"github.com/simonhull/firebird-suite/kestrel/manifest"
	"github.com/simonhull/firebird-suite/kestrel/output"
	"github.com/simonhull/firebird-suite/kestrel/rclass"
)

const testManifest = `package: com.example.app
resources:
  string:
    - name: app_name
      id: 0x7f030000
      comment: The application name.
  attr:
    - name: colorPrimary
      id: 0x7f010000
styleables:
  - name: Theme
    attrs: [colorPrimary]
`

// project creates a temp working directory holding resources.yml
func project(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("resources.yml", []byte(testManifest), 0644))
}

// run executes the CLI with args and returns combined output
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := RootCmd()
	root.AddCommand(GenerateCmd(), CheckCmd(), InitCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	t.Cleanup(func() {
		output.SetWriter(nil)
		output.SetVerbose(false)
		logger.SetDefault(nil)
	})

	err := root.Execute()
	return out.String(), err
}

func expectedJava(t *testing.T, opts rclass.Options) []byte {
	t.Helper()
	table, err := manifest.ParseBytes([]byte(testManifest))
	require.NoError(t, err)
	b := rclass.NewBuilder(opts, logger.Nop())
	java, err := b.RenderClass(b.Build(table), b.Package(table))
	require.NoError(t, err)
	return java
}

func TestGenerate_WritesClass(t *testing.T) {
	project(t)

	out, err := run(t, "", "generate")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join("gen", "com", "example", "app", "R.java"))
	require.NoError(t, err)
	assert.Equal(t, string(expectedJava(t, rclass.DefaultOptions())), string(got))
	assert.Contains(t, string(got), "public static final int app_name=0x7f030000;")
	assert.Contains(t, out, "Generated com.example.app.R (2 resources)")
}

func TestGenerate_SecondRunIsUnchanged(t *testing.T) {
	project(t)

	_, err := run(t, "", "generate")
	require.NoError(t, err)

	out, err := run(t, "", "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "(unchanged)")
	assert.Contains(t, out, "Nothing to write")
}

func TestGenerate_DryRun(t *testing.T) {
	project(t)

	out, err := run(t, "", "generate", "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "[DRY RUN]")
	assert.NoDirExists(t, "gen")
}

func TestGenerate_FlagOverrides(t *testing.T) {
	project(t)

	_, err := run(t, "", "generate",
		"--package", "com.example.lib",
		"--class", "Res",
		"--out", "src",
		"--non-final-ids",
		"--no-comments",
		"--symbols", "build/R.txt")
	require.NoError(t, err)

	java, err := os.ReadFile(filepath.Join("src", "com", "example", "lib", "Res.java"))
	require.NoError(t, err)
	assert.Contains(t, string(java), "package com.example.lib;")
	assert.Contains(t, string(java), "public class Res {")
	assert.Contains(t, string(java), "public static int app_name=0x7f030000;")
	assert.NotContains(t, string(java), "/**\n     * The application name.")

	symbols, err := os.ReadFile(filepath.Join("build", "R.txt"))
	require.NoError(t, err)
	assert.Equal(t, "int attr colorPrimary 0x7f010000\n"+
		"int string app_name 0x7f030000\n"+
		"int[] styleable Theme { 0x7f010000 }\n"+
		"int styleable Theme_colorPrimary 0\n", string(symbols))
}

func TestGenerate_ConfigFile(t *testing.T) {
	project(t)
	cfg := config.Default()
	cfg.Output.Dir = "generated"
	cfg.Header = ""
	require.NoError(t, cfg.Save("custom.yml"))

	_, err := run(t, "", "generate", "--config", "custom.yml")
	require.NoError(t, err)

	java, err := os.ReadFile(filepath.Join("generated", "com", "example", "app", "R.java"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(java), "package com.example.app;"))
}

func TestGenerate_ConflictStrategies(t *testing.T) {
	tests := []struct {
		flag      string
		wantStale bool
	}{
		{"--skip", true},
		{"--force", false},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			project(t)
			path := filepath.Join("gen", "com", "example", "app", "R.java")
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
			require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

			_, err := run(t, "", "generate", tt.flag)
			require.NoError(t, err)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStale, string(got) == "stale")
		})
	}
}

func TestGenerate_ConflictingFlags(t *testing.T) {
	project(t)

	_, err := run(t, "", "generate", "--force", "--skip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestGenerate_InvalidManifest(t *testing.T) {
	project(t)
	require.NoError(t, os.WriteFile("bad.yml", []byte(`package: com.example
resources:
  string:
    - name: a
      id: 0x7f030000
    - name: b
      id: 0x7f030000
`), 0644))

	_, err := run(t, "", "generate", "--manifest", "bad.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already assigned")
	assert.NoDirExists(t, "gen")
}

func TestGenerate_EmptyManifestVerbose(t *testing.T) {
	project(t)
	require.NoError(t, os.WriteFile("empty.yml", []byte("package: com.example\n"), 0644))

	out, err := run(t, "", "generate", "-v", "--manifest", "empty.yml")
	require.NoError(t, err)
	assert.Contains(t, out, "empty.yml declares no resources; R will be an empty class")
	assert.Contains(t, out, "Wrote "+filepath.Join("gen", "com", "example", "R.java"))

	java, err := os.ReadFile(filepath.Join("gen", "com", "example", "R.java"))
	require.NoError(t, err)
	assert.Contains(t, string(java), "public class R {\n}")
}

func TestGenerate_InvalidNamesFromFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{"package", []string{"--package", "../evil"}, "package:"},
		{"class", []string{"--class", "../R"}, "class_name:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project(t)

			_, err := run(t, "", append([]string{"generate", "--out", "gen/src"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
			assert.NoDirExists(t, "gen")
			assert.NoFileExists(t, filepath.Join("gen", "R.java"))
		})
	}
}

func TestGenerate_MissingManifest(t *testing.T) {
	project(t)

	_, err := run(t, "", "generate", "--manifest", "nope.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestCheck(t *testing.T) {
	project(t)

	out, err := run(t, "", "check")
	require.ErrorIs(t, err, ErrStale)
	assert.Contains(t, out, "is missing")

	_, err = run(t, "", "generate")
	require.NoError(t, err)

	out, err = run(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "com.example.app.R is up to date")

	require.NoError(t, os.WriteFile("resources.yml",
		[]byte(strings.Replace(testManifest, "0x7f030000", "0x7f030001", 1)), 0644))

	out, err = run(t, "", "check")
	require.ErrorIs(t, err, ErrStale)
	assert.Contains(t, out, "is out of date")
	assert.Contains(t, out, "-    public static final int app_name=0x7f030000;")
	assert.Contains(t, out, "+    public static final int app_name=0x7f030001;")
	assert.Contains(t, out, "kestrel generate")
}

func TestInit(t *testing.T) {
	project(t)

	answers := strings.Join([]string{
		"",      // manifest: keep resources.yml
		"",      // package: keep the manifest's
		"Res",   // class name
		"build", // output dir
		"n",     // final
		"y",     // symbols
	}, "\n") + "\n"

	out, err := run(t, answers, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "(com.example.app)")
	assert.Contains(t, out, "Created kestrel.yml")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "resources.yml", cfg.Manifest)
	assert.Equal(t, "com.example.app", cfg.Package)
	assert.Equal(t, "Res", cfg.ClassName)
	assert.Equal(t, "build", cfg.Output.Dir)
	assert.False(t, cfg.Final)
	assert.Equal(t, filepath.Join("build", "R.txt"), cfg.Output.Symbols)
}

func TestInit_Defaults(t *testing.T) {
	project(t)

	_, err := run(t, "", "init", "--config", "kestrel.yml")
	require.NoError(t, err)

	cfg, err := config.Load("kestrel.yml")
	require.NoError(t, err)
	assert.Equal(t, "gen", cfg.Output.Dir)
	assert.True(t, cfg.Final)
	assert.Empty(t, cfg.Output.Symbols)
}

func TestInit_ExistingConfig(t *testing.T) {
	project(t)
	require.NoError(t, os.WriteFile(config.FileName, []byte("manifest: x.yml\n"), 0644))

	_, err := run(t, "", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(t, "", "init", "--force")
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "Kestrel v"+kestrel.Version+"\n", out)
}

func TestJavaPath(t *testing.T) {
	assert.Equal(t, filepath.Join("gen", "com", "example", "R.java"), javaPath("gen", "com.example", "R"))
	assert.Equal(t, filepath.Join("out", "app", "Res.java"), javaPath("out", "app", "Res"))
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
