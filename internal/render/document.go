package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/RendijsSmukulis/codevoid.io/internal/site"
)

// document mirrors the generator's setting names. Field order is the output
// order; map keys are sorted by the encoders.
type document struct {
	Author              string                  `yaml:"AUTHOR" json:"AUTHOR"`
	SiteName            string                  `yaml:"SITENAME" json:"SITENAME"`
	SiteURL             string                  `yaml:"SITEURL" json:"SITEURL"`
	Path                string                  `yaml:"PATH" json:"PATH"`
	Timezone            string                  `yaml:"TIMEZONE" json:"TIMEZONE"`
	DefaultLang         string                  `yaml:"DEFAULT_LANG" json:"DEFAULT_LANG"`
	FeedAllAtom         *string                 `yaml:"FEED_ALL_ATOM" json:"FEED_ALL_ATOM"`
	CategoryFeedAtom    *string                 `yaml:"CATEGORY_FEED_ATOM" json:"CATEGORY_FEED_ATOM"`
	TranslationFeedAtom *string                 `yaml:"TRANSLATION_FEED_ATOM" json:"TRANSLATION_FEED_ATOM"`
	AuthorFeedAtom      *string                 `yaml:"AUTHOR_FEED_ATOM" json:"AUTHOR_FEED_ATOM"`
	AuthorFeedRSS       *string                 `yaml:"AUTHOR_FEED_RSS" json:"AUTHOR_FEED_RSS"`
	DisplayPagesOnMenu  bool                    `yaml:"DISPLAY_PAGES_ON_MENU" json:"DISPLAY_PAGES_ON_MENU"`
	RelativeURLs        bool                    `yaml:"RELATIVE_URLS" json:"RELATIVE_URLS"`
	Links               [][2]string             `yaml:"LINKS" json:"LINKS"`
	Social              [][2]string             `yaml:"SOCIAL" json:"SOCIAL"`
	DefaultPagination   int                     `yaml:"DEFAULT_PAGINATION" json:"DEFAULT_PAGINATION"`
	StaticPaths         []string                `yaml:"STATIC_PATHS" json:"STATIC_PATHS"`
	ExtraPathMetadata   map[string]pathMetadata `yaml:"EXTRA_PATH_METADATA" json:"EXTRA_PATH_METADATA"`
}

type pathMetadata struct {
	Path string `yaml:"path" json:"path"`
}

func newDocument(s *site.Settings) document {
	m := s.Metadata()
	extra := make(map[string]pathMetadata)
	for _, e := range s.ExtraPathEntries() {
		extra[e.Source] = pathMetadata{Path: e.Metadata.Path}
	}
	return document{
		Author:              m.Author,
		SiteName:            m.SiteName,
		SiteURL:             m.SiteURL,
		Path:                m.ContentPath,
		Timezone:            m.Timezone,
		DefaultLang:         m.DefaultLang,
		FeedAllAtom:         m.Feeds.AllAtom,
		CategoryFeedAtom:    m.Feeds.CategoryAtom,
		TranslationFeedAtom: m.Feeds.TranslationAtom,
		AuthorFeedAtom:      m.Feeds.AuthorAtom,
		AuthorFeedRSS:       m.Feeds.AuthorRSS,
		DisplayPagesOnMenu:  m.DisplayPagesOnMenu,
		RelativeURLs:        m.RelativeURLs,
		Links:               pairs(m.Links),
		Social:              pairs(m.Social),
		DefaultPagination:   m.DefaultPagination,
		StaticPaths:         s.StaticPaths(),
		ExtraPathMetadata:   extra,
	}
}

func pairs(links []site.Link) [][2]string {
	out := make([][2]string, 0, len(links))
	for _, l := range links {
		out = append(out, [2]string{l.Label, l.URL})
	}
	return out
}

type yamlRenderer struct{}

func (yamlRenderer) Render(w io.Writer, s *site.Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(s)); err != nil {
		return err
	}
	return enc.Close()
}

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, s *site.Settings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(newDocument(s))
}
