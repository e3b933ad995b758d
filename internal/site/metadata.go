package site

// Link is a labelled URL rendered by the generator in the blogroll or the
// social widget.
type Link struct {
	Label string
	URL   string
}

// Feeds holds the feed output patterns. A nil pattern disables that feed.
type Feeds struct {
	AllAtom         *string
	CategoryAtom    *string
	TranslationAtom *string
	AuthorAtom      *string
	AuthorRSS       *string
}

// Metadata is the flat site description consumed by the generator.
type Metadata struct {
	Author      string
	SiteName    string
	SiteURL     string // empty means links are relative to the site root
	ContentPath string
	Timezone    string
	DefaultLang string

	DefaultPagination  int
	DisplayPagesOnMenu bool
	RelativeURLs       bool

	Feeds  Feeds
	Links  []Link
	Social []Link
}

// Clone returns a deep copy.
func (m Metadata) Clone() Metadata {
	out := m
	out.Feeds = m.Feeds.clone()
	out.Links = cloneLinks(m.Links)
	out.Social = cloneLinks(m.Social)
	return out
}

// Equal reports structural equality.
func (m Metadata) Equal(o Metadata) bool {
	if m.Author != o.Author || m.SiteName != o.SiteName || m.SiteURL != o.SiteURL ||
		m.ContentPath != o.ContentPath || m.Timezone != o.Timezone || m.DefaultLang != o.DefaultLang {
		return false
	}
	if m.DefaultPagination != o.DefaultPagination || m.DisplayPagesOnMenu != o.DisplayPagesOnMenu ||
		m.RelativeURLs != o.RelativeURLs {
		return false
	}
	return m.Feeds.Equal(o.Feeds) && linksEqual(m.Links, o.Links) && linksEqual(m.Social, o.Social)
}

// Named returns the feed patterns keyed by generator setting name, in a
// stable order.
func (f Feeds) Named() []NamedFeed {
	return []NamedFeed{
		{Setting: "FEED_ALL_ATOM", Pattern: f.AllAtom},
		{Setting: "CATEGORY_FEED_ATOM", Pattern: f.CategoryAtom},
		{Setting: "TRANSLATION_FEED_ATOM", Pattern: f.TranslationAtom},
		{Setting: "AUTHOR_FEED_ATOM", Pattern: f.AuthorAtom},
		{Setting: "AUTHOR_FEED_RSS", Pattern: f.AuthorRSS},
	}
}

// NamedFeed pairs a feed setting with its pattern (nil when disabled).
type NamedFeed struct {
	Setting string
	Pattern *string
}

func (f Feeds) Equal(o Feeds) bool {
	a, b := f.Named(), o.Named()
	for i := range a {
		if !strPtrEqual(a[i].Pattern, b[i].Pattern) {
			return false
		}
	}
	return true
}

func (f Feeds) clone() Feeds {
	return Feeds{
		AllAtom:         cloneStrPtr(f.AllAtom),
		CategoryAtom:    cloneStrPtr(f.CategoryAtom),
		TranslationAtom: cloneStrPtr(f.TranslationAtom),
		AuthorAtom:      cloneStrPtr(f.AuthorAtom),
		AuthorRSS:       cloneStrPtr(f.AuthorRSS),
	}
}

func cloneStrPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneLinks(in []Link) []Link {
	if in == nil {
		return nil
	}
	out := make([]Link, len(in))
	copy(out, in)
	return out
}

func linksEqual(a, b []Link) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
