package render

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/RendijsSmukulis/codevoid.io/internal/config"
	"github.com/RendijsSmukulis/codevoid.io/internal/errors"
	"github.com/RendijsSmukulis/codevoid.io/internal/site"
)

func buildSettings(t *testing.T, mutate func(*config.Config)) *site.Settings {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	s, err := cfg.Build(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

const wantSmallPelican = `#!/usr/bin/env python
# -*- coding: utf-8 -*- #
# Generated from the site file; edit that instead.

AUTHOR = "Rendijs Smukulis"
SITENAME = "Code Void"
SITEURL = ""

PATH = "content"

TIMEZONE = "Europe/London"

DEFAULT_LANG = "English"

# Feed generation
FEED_ALL_ATOM = None
CATEGORY_FEED_ATOM = None
TRANSLATION_FEED_ATOM = None
AUTHOR_FEED_ATOM = None
AUTHOR_FEED_RSS = None

DISPLAY_PAGES_ON_MENU = True
RELATIVE_URLS = False

# Blogroll
LINKS = ()

# Social widget
SOCIAL = (("My GitHub", "https://github.com/RendijsSmukulis"),)

DEFAULT_PAGINATION = 10

STATIC_PATHS = [
    "images",
    "extra/favicon.ico",
    "extra/manifest.json",
]

EXTRA_PATH_METADATA = {
    "extra/favicon.ico": {"path": "favicon.ico"},
    "extra/manifest.json": {"path": "manifest.json"},
}
`

func TestPelican_Golden(t *testing.T) {
	s := buildSettings(t, func(c *config.Config) {
		c.Static.ExtraIcons = []string{"favicon.ico", "manifest.json"}
	})
	out, err := Bytes(config.OutputFormatPelican, s)
	require.NoError(t, err)
	require.Equal(t, wantSmallPelican, string(out))
}

func TestPelican_DefaultsKeepIconOrder(t *testing.T) {
	out, err := Bytes(config.OutputFormatPelican, buildSettings(t, nil))
	require.NoError(t, err)
	text := string(out)

	last := -1
	for _, name := range site.DefaultExtraIcons() {
		line := `    "extra/` + name + `": {"path": "` + name + `"},`
		idx := strings.Index(text, line)
		require.GreaterOrEqual(t, idx, 0, "missing %s", line)
		require.Greater(t, idx, last, "icon %s out of order", name)
		last = idx
	}
	require.Contains(t, text, "    \"extra/safari-pinned-tab.svg\",\n]")
}

func TestPelican_FeedsLinksAndQuoting(t *testing.T) {
	feed := "feeds/all.atom.xml"
	s := buildSettings(t, func(c *config.Config) {
		c.Feeds.AllAtom = &feed
		c.Site.Name = `Code "Void"`
		c.Site.RelativeURLs = true
		c.Links = []config.Link{
			{Label: "Pelican", URL: "https://getpelican.com/"},
			{Label: "Python.org", URL: "https://www.python.org/"},
		}
	})
	out, err := Bytes(config.OutputFormatPelican, s)
	require.NoError(t, err)
	text := string(out)

	require.Contains(t, text, `FEED_ALL_ATOM = "feeds/all.atom.xml"`+"\n")
	require.Contains(t, text, "CATEGORY_FEED_ATOM = None\n")
	require.Contains(t, text, `SITENAME = "Code \"Void\""`+"\n")
	require.Contains(t, text, "RELATIVE_URLS = True\n")
	require.Contains(t, text, `LINKS = (("Pelican", "https://getpelican.com/"), ("Python.org", "https://www.python.org/"))`+"\n")
}

func TestPyPairs(t *testing.T) {
	require.Equal(t, "()", pyPairs(nil))
	require.Equal(t, `(("a", "b"),)`, pyPairs([]site.Link{{Label: "a", URL: "b"}}))
	require.Equal(t, `(("a", "b"), ("c", "d"))`, pyPairs([]site.Link{{Label: "a", URL: "b"}, {Label: "c", URL: "d"}}))
}

func TestYAML_RoundTrip(t *testing.T) {
	s := buildSettings(t, nil)
	out, err := Bytes(config.OutputFormatYAML, s)
	require.NoError(t, err)

	var got document
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.Equal(t, newDocument(s), got)
	require.Equal(t, s.StaticPaths(), got.StaticPaths)
	require.Len(t, got.ExtraPathMetadata, len(site.DefaultExtraIcons()))
	require.Contains(t, string(out), "FEED_ALL_ATOM: null\n")
}

func TestJSON_RoundTrip(t *testing.T) {
	s := buildSettings(t, func(c *config.Config) {
		c.Static.ExtraIcons = []string{"favicon.ico", "manifest.json"}
	})
	out, err := Bytes(config.OutputFormatJSON, s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	require.Equal(t, []any{"images", "extra/favicon.ico", "extra/manifest.json"}, raw["STATIC_PATHS"])
	require.Equal(t, map[string]any{
		"extra/favicon.ico":   map[string]any{"path": "favicon.ico"},
		"extra/manifest.json": map[string]any{"path": "manifest.json"},
	}, raw["EXTRA_PATH_METADATA"])
	require.Nil(t, raw["AUTHOR_FEED_RSS"])
	require.Equal(t, []any{[]any{"My GitHub", "https://github.com/RendijsSmukulis"}}, raw["SOCIAL"])
}

func TestBytes_Deterministic(t *testing.T) {
	s := buildSettings(t, nil)
	for _, f := range []config.OutputFormat{config.OutputFormatPelican, config.OutputFormatYAML, config.OutputFormatJSON} {
		a, err := Bytes(f, s)
		require.NoError(t, err)
		b, err := Bytes(f, s)
		require.NoError(t, err)
		require.Equal(t, a, b, "format %s", f)
	}
}

func TestFor_UnknownFormat(t *testing.T) {
	_, err := For("toml")
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryValidation))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pelicanconf.py")
	s := buildSettings(t, func(c *config.Config) {
		c.Static.ExtraIcons = []string{"favicon.ico", "manifest.json"}
	})
	require.NoError(t, WriteFile(path, config.OutputFormatPelican, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, wantSmallPelican, string(data))
	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err), "temp file must not remain")
}

func TestWriteFile_UnwritableTarget(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the rename fail.
	target := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o755))

	err := WriteFile(target, config.OutputFormatJSON, buildSettings(t, nil))
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryFileSystem))
}
