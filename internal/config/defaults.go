package config

import "github.com/RendijsSmukulis/codevoid.io/internal/site"

const (
	DefaultOutputPath = "pelicanconf.py"
	DefaultConfigPath = "site.yaml"
)

// Default returns the Code Void settings. Feeds stay disabled, which is what
// local development wants.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			Author:             "Rendijs Smukulis",
			Name:               "Code Void",
			URL:                "",
			ContentPath:        "content",
			Timezone:           "Europe/London",
			DefaultLang:        "English",
			DefaultPagination:  10,
			DisplayPagesOnMenu: true,
		},
		Links: []Link{},
		Social: []Link{
			{Label: "My GitHub", URL: "https://github.com/RendijsSmukulis"},
		},
		Static: StaticConfig{
			Base:       site.DefaultStaticBase(),
			ExtraDir:   site.DefaultExtraDir,
			ExtraIcons: site.DefaultExtraIcons(),
		},
		Output: OutputConfig{
			Path:   DefaultOutputPath,
			Format: OutputFormatPelican,
		},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}
