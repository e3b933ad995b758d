package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RendijsSmukulis/codevoid.io/internal/errors"
	"github.com/RendijsSmukulis/codevoid.io/internal/logfields"
	"github.com/RendijsSmukulis/codevoid.io/internal/site"
)

// Config is the site file layout. Every key is optional; unset keys keep the
// values from Default.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Feeds   FeedsConfig   `yaml:"feeds"`
	Links   []Link        `yaml:"links"`
	Social  []Link        `yaml:"social"`
	Static  StaticConfig  `yaml:"static"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `yaml:"-"`
}

// SiteConfig holds the scalar site metadata.
type SiteConfig struct {
	Author             string `yaml:"author"`
	Name               string `yaml:"name"`
	URL                string `yaml:"url"` // empty means relative to the site root
	ContentPath        string `yaml:"content_path"`
	Timezone           string `yaml:"timezone"`
	DefaultLang        string `yaml:"default_lang"`
	DefaultPagination  int    `yaml:"default_pagination"`
	DisplayPagesOnMenu bool   `yaml:"display_pages_on_menu"`
	RelativeURLs       bool   `yaml:"relative_urls"`
}

// FeedsConfig holds feed output patterns; null disables a feed.
type FeedsConfig struct {
	AllAtom         *string `yaml:"all_atom"`
	CategoryAtom    *string `yaml:"category_atom"`
	TranslationAtom *string `yaml:"translation_atom"`
	AuthorAtom      *string `yaml:"author_atom"`
	AuthorRSS       *string `yaml:"author_rss"`
}

// Link is a labelled URL for the blogroll or social widget.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// StaticConfig describes the directories copied verbatim into the output.
type StaticConfig struct {
	Base       []string `yaml:"base"`
	ExtraDir   string   `yaml:"extra_dir"`
	ExtraIcons []string `yaml:"extra_icons"`
}

// OutputConfig selects where and how the settings are written.
type OutputConfig struct {
	Path   string       `yaml:"path"`
	Format OutputFormat `yaml:"format"`
}

// Load reads the site file at configPath on top of the defaults. A missing
// file is not an error: the defaults describe the site completely.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	cfg := Default()
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		slog.Debug("Site file not found, using built-in defaults", logfields.Path(configPath))
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigUnreadable(configPath, err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "failed to parse site file").
			WithContext("path", configPath)
	}
	cfg.Source = configPath
	return cfg, nil
}

// Parse expands environment variables in data and decodes it into cfg.
func Parse(data []byte, cfg *Config) error {
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("failed to unmarshal site file: %w", err)
	}
	return nil
}

// Metadata converts the site section into the generator metadata.
func (c *Config) Metadata() site.Metadata {
	return site.Metadata{
		Author:             c.Site.Author,
		SiteName:           c.Site.Name,
		SiteURL:            c.Site.URL,
		ContentPath:        c.Site.ContentPath,
		Timezone:           c.Site.Timezone,
		DefaultLang:        c.Site.DefaultLang,
		DefaultPagination:  c.Site.DefaultPagination,
		DisplayPagesOnMenu: c.Site.DisplayPagesOnMenu,
		RelativeURLs:       c.Site.RelativeURLs,
		Feeds: site.Feeds{
			AllAtom:         c.Feeds.AllAtom,
			CategoryAtom:    c.Feeds.CategoryAtom,
			TranslationAtom: c.Feeds.TranslationAtom,
			AuthorAtom:      c.Feeds.AuthorAtom,
			AuthorRSS:       c.Feeds.AuthorRSS,
		},
		Links:  toSiteLinks(c.Links),
		Social: toSiteLinks(c.Social),
	}
}

// Build validates the configuration and derives the immutable settings.
func (c *Config) Build(logger *slog.Logger) (*site.Settings, error) {
	if err := ValidateConfig(c); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return site.Build(c.Metadata(),
		site.WithStaticBase(c.Static.Base...),
		site.WithExtraDir(c.Static.ExtraDir),
		site.WithExtraIcons(site.ExtraIcons(c.Static.ExtraIcons)),
		site.WithLogger(logger))
}

func toSiteLinks(in []Link) []site.Link {
	out := make([]site.Link, 0, len(in))
	for _, l := range in {
		out = append(out, site.Link{Label: l.Label, URL: l.URL})
	}
	return out
}
