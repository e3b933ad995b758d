package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata" // timezone lint must not depend on the host zoneinfo

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Warning is a non-fatal finding about a value the generator validates itself.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// Lint reports values the generator is likely to reject or misread. It never
// fails; the generator stays the authority on these fields.
func Lint(cfg *Config) []Warning {
	var out []Warning
	s := cfg.Site

	if _, err := time.LoadLocation(s.Timezone); err != nil || s.Timezone == "" {
		out = append(out, Warning{Field: "site.timezone", Message: fmt.Sprintf("%q is not a known IANA zone", s.Timezone)})
	}

	if tag, ok := ResolveLanguage(s.DefaultLang); !ok {
		out = append(out, Warning{Field: "site.default_lang", Message: fmt.Sprintf("%q is not a recognised language", s.DefaultLang)})
	} else if tag.String() != s.DefaultLang {
		out = append(out, Warning{Field: "site.default_lang", Message: fmt.Sprintf("%q resolves to language code %q", s.DefaultLang, tag.String())})
	}

	if s.URL != "" {
		if u, err := url.Parse(s.URL); err != nil || u.Scheme == "" || u.Host == "" {
			out = append(out, Warning{Field: "site.url", Message: fmt.Sprintf("%q is not an absolute URL", s.URL)})
		} else if strings.HasSuffix(s.URL, "/") {
			out = append(out, Warning{Field: "site.url", Message: "trailing slash produces double slashes in generated links"})
		}
	}
	if s.URL != "" && s.RelativeURLs {
		out = append(out, Warning{Field: "site.relative_urls", Message: "relative URLs ignore the configured site URL"})
	}

	for _, group := range []struct {
		name  string
		links []Link
	}{{"links", cfg.Links}, {"social", cfg.Social}} {
		for i, l := range group.links {
			if u, err := url.Parse(l.URL); err != nil || u.Scheme == "" {
				out = append(out, Warning{Field: fmt.Sprintf("%s[%d].url", group.name, i), Message: fmt.Sprintf("%q has no scheme", l.URL)})
			}
		}
	}
	return out
}

// ResolveLanguage accepts a BCP 47 tag ("en-GB") or an English language name
// ("English") and returns the matching tag.
func ResolveLanguage(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Und, false
	}
	if tag, err := language.Parse(raw); err == nil {
		return tag, true
	}
	namer := display.English.Languages()
	for _, tag := range display.Supported.Tags() {
		if strings.EqualFold(namer.Name(tag), raw) {
			return tag, true
		}
	}
	return language.Und, false
}
