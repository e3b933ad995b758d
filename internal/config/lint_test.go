package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func warningFields(ws []Warning) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Field)
	}
	return out
}

func TestLint_Defaults(t *testing.T) {
	ws := Lint(Default())
	// "English" is accepted but flagged with its language code.
	require.Equal(t, []string{"site.default_lang"}, warningFields(ws))
	require.Contains(t, ws[0].Message, `"en"`)
}

func TestLint_CleanConfig(t *testing.T) {
	cfg := Default()
	cfg.Site.DefaultLang = "en"
	cfg.Site.URL = "https://codevoid.io"
	require.Empty(t, Lint(cfg))
}

func TestLint_Findings(t *testing.T) {
	cfg := Default()
	cfg.Site.Timezone = "Mars/Olympus_Mons"
	cfg.Site.DefaultLang = "Klingonese"
	cfg.Site.URL = "codevoid.io/"
	cfg.Site.RelativeURLs = true
	cfg.Social = []Link{{Label: "GitHub", URL: "github.com/RendijsSmukulis"}}

	require.Equal(t, []string{
		"site.timezone",
		"site.default_lang",
		"site.url",
		"site.relative_urls",
		"social[0].url",
	}, warningFields(Lint(cfg)))
}

func TestLint_TrailingSlash(t *testing.T) {
	cfg := Default()
	cfg.Site.DefaultLang = "en"
	cfg.Site.URL = "https://codevoid.io/"
	ws := Lint(cfg)
	require.Len(t, ws, 1)
	require.Equal(t, "site.url", ws[0].Field)
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		in   string
		base string
		ok   bool
	}{
		{"en", "en", true},
		{"en-GB", "en", true},
		{"English", "en", true},
		{"german", "de", true},
		{"", "", false},
		{"Klingonese", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tag, ok := ResolveLanguage(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				base, _ := tag.Base()
				require.Equal(t, tt.base, base.String())
			}
		})
	}
}
