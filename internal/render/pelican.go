package render

import (
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/RendijsSmukulis/codevoid.io/internal/site"
)

const pelicanTemplate = `#!/usr/bin/env python
# -*- coding: utf-8 -*- #
# Generated from the site file; edit that instead.

AUTHOR = {{ py .Meta.Author }}
SITENAME = {{ py .Meta.SiteName }}
SITEURL = {{ py .Meta.SiteURL }}

PATH = {{ py .Meta.ContentPath }}

TIMEZONE = {{ py .Meta.Timezone }}

DEFAULT_LANG = {{ py .Meta.DefaultLang }}

# Feed generation
{{- range .Meta.Feeds.Named }}
{{ .Setting }} = {{ pyOptional .Pattern }}
{{- end }}

DISPLAY_PAGES_ON_MENU = {{ pyBool .Meta.DisplayPagesOnMenu }}
RELATIVE_URLS = {{ pyBool .Meta.RelativeURLs }}

# Blogroll
LINKS = {{ pyPairs .Meta.Links }}

# Social widget
SOCIAL = {{ pyPairs .Meta.Social }}

DEFAULT_PAGINATION = {{ .Meta.DefaultPagination }}

STATIC_PATHS = [
{{- range .StaticPaths }}
    {{ py . }},
{{- end }}
]

EXTRA_PATH_METADATA = {
{{- range .Extra }}
    {{ py .Source }}: {"path": {{ py .Metadata.Path }}},
{{- end }}
}
`

var pelicanTmpl = template.Must(template.New("pelicanconf").Funcs(template.FuncMap{
	"py":         pyString,
	"pyOptional": pyOptional,
	"pyBool":     pyBool,
	"pyPairs":    pyPairs,
}).Option("missingkey=error").Parse(pelicanTemplate))

type pelicanData struct {
	Meta        site.Metadata
	StaticPaths []string
	Extra       []site.ExtraPathEntry
}

type pelicanRenderer struct{}

func (pelicanRenderer) Render(w io.Writer, s *site.Settings) error {
	return pelicanTmpl.Execute(w, pelicanData{
		Meta:        s.Metadata(),
		StaticPaths: s.StaticPaths(),
		Extra:       s.ExtraPathEntries(),
	})
}

// pyString quotes s as a Python string literal. Go's double-quoted escapes
// are a subset of Python's.
func pyString(s string) string {
	return strconv.Quote(s)
}

func pyOptional(s *string) string {
	if s == nil {
		return "None"
	}
	return pyString(*s)
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// pyPairs renders links as a tuple of (label, url) tuples.
func pyPairs(links []site.Link) string {
	if len(links) == 0 {
		return "()"
	}
	items := make([]string, len(links))
	for i, l := range links {
		items[i] = "(" + pyString(l.Label) + ", " + pyString(l.URL) + ")"
	}
	if len(items) == 1 {
		return "(" + items[0] + ",)"
	}
	return "(" + strings.Join(items, ", ") + ")"
}
