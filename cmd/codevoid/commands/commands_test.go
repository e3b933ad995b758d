package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/RendijsSmukulis/codevoid.io/internal/config"
	"github.com/RendijsSmukulis/codevoid.io/internal/errors"
)

func newRoot(t *testing.T, siteYAML string) *CLI {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	if siteYAML != "" {
		require.NoError(t, os.WriteFile(path, []byte(siteYAML), 0o600))
	}
	return &CLI{Config: path}
}

func TestRenderCmd_DefaultsToPelican(t *testing.T) {
	root := newRoot(t, "")
	out := filepath.Join(t.TempDir(), "pelicanconf.py")
	var buf bytes.Buffer

	cmd := &RenderCmd{OutputFlags: OutputFlags{Output: out}}
	require.NoError(t, cmd.Run(&Global{Out: &buf}, root))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), `SITENAME = "Code Void"`)
	require.Contains(t, string(data), `"extra/manifest.json": {"path": "manifest.json"},`)
	require.Equal(t, "Wrote pelican settings to "+out+"\n", buf.String())
}

func TestRenderCmd_InfersFormatFromExtension(t *testing.T) {
	root := newRoot(t, "static:\n  extra_icons: [favicon.ico]\n")
	out := filepath.Join(t.TempDir(), "settings.json")

	cmd := &RenderCmd{OutputFlags: OutputFlags{Output: out}}
	require.NoError(t, cmd.Run(&Global{Out: &bytes.Buffer{}}, root))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "{"))
	require.Contains(t, string(data), `"extra/favicon.ico"`)
}

func TestRenderCmd_ExplicitFormatWins(t *testing.T) {
	root := newRoot(t, "")
	out := filepath.Join(t.TempDir(), "settings.json")

	cmd := &RenderCmd{OutputFlags: OutputFlags{Output: out, Format: "yml"}}
	require.NoError(t, cmd.Run(&Global{Out: &bytes.Buffer{}}, root))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "SITENAME: Code Void\n")
}

func TestRenderCmd_UnknownFormat(t *testing.T) {
	cmd := &RenderCmd{OutputFlags: OutputFlags{Output: filepath.Join(t.TempDir(), "x"), Format: "toml"}}
	err := cmd.Run(&Global{Out: &bytes.Buffer{}}, newRoot(t, ""))
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryValidation))
}

func TestRenderCmd_DuplicateIcons(t *testing.T) {
	root := newRoot(t, "static:\n  extra_icons: [favicon.ico, favicon.ico]\n")
	cmd := &RenderCmd{OutputFlags: OutputFlags{Output: filepath.Join(t.TempDir(), "out.py")}}
	err := cmd.Run(&Global{Out: &bytes.Buffer{}}, root)
	require.Error(t, err)
	require.Equal(t, 7, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestShowCmd_Summary(t *testing.T) {
	root := newRoot(t, "static:\n  extra_icons: [favicon.ico, manifest.json]\n")
	var buf bytes.Buffer
	require.NoError(t, (&ShowCmd{}).Run(&Global{Out: &buf}, root))

	out := buf.String()
	require.Contains(t, out, "Static paths:\n  images\n  extra/favicon.ico\n  extra/manifest.json\n")
	require.Contains(t, out, "extra/favicon.ico")
	require.Contains(t, out, "-> favicon.ico")
	require.Contains(t, out, "-> manifest.json")
}

func TestShowCmd_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&ShowCmd{Format: "json"}).Run(&Global{Out: &buf}, newRoot(t, "")))
	require.Contains(t, buf.String(), `"STATIC_PATHS": [`)
}

func TestValidateCmd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&ValidateCmd{}).Run(&Global{Out: &buf}, newRoot(t, "")))
	require.Contains(t, buf.String(), "warning: site.default_lang:")
	require.Contains(t, buf.String(), "built-in defaults: ok (1 warning(s))")

	err := (&ValidateCmd{Strict: true}).Run(&Global{Out: &bytes.Buffer{}}, newRoot(t, ""))
	require.Error(t, err)

	require.NoError(t, (&ValidateCmd{Strict: true}).Run(&Global{Out: &bytes.Buffer{}}, newRoot(t, "site:\n  default_lang: en\n")))
}

func TestValidateCmd_Invalid(t *testing.T) {
	err := (&ValidateCmd{}).Run(&Global{Out: &bytes.Buffer{}}, newRoot(t, "site:\n  default_pagination: 0\n"))
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryValidation))
}

func TestInitCmd(t *testing.T) {
	root := newRoot(t, "")
	var buf bytes.Buffer
	require.NoError(t, (&InitCmd{}).Run(&Global{Out: &buf}, root))
	require.FileExists(t, root.Config)

	err := (&InitCmd{}).Run(&Global{Out: &buf}, root)
	require.Error(t, err)
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{Out: &buf}, root))

	cfg, err := config.Load(root.Config)
	require.NoError(t, err)
	require.Equal(t, "Code Void", cfg.Site.Name)
}

func TestCLI_Parse(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"-c", "my.yaml", "render", "-o", "out.json", "-f", "json"})
	require.NoError(t, err)
	require.Equal(t, "render", ctx.Command())
	require.Equal(t, "out.json", cli.Render.Output)
	require.Equal(t, "json", cli.Render.Format)
	require.True(t, filepath.IsAbs(cli.Config))
	require.Equal(t, "my.yaml", filepath.Base(cli.Config))
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]config.OutputFormat{
		"pelicanconf.py": config.OutputFormatPelican,
		"out/site.YML":   config.OutputFormatYAML,
		"a.yaml":         config.OutputFormatYAML,
		"b.json":         config.OutputFormatJSON,
	}
	for path, want := range tests {
		got, ok := formatFromPath(path)
		require.True(t, ok, path)
		require.Equal(t, want, got, path)
	}
	_, ok := formatFromPath("settings")
	require.False(t, ok)
}
