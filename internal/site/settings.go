package site

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/RendijsSmukulis/codevoid.io/internal/errors"
	"github.com/RendijsSmukulis/codevoid.io/internal/logfields"
	"github.com/RendijsSmukulis/codevoid.io/internal/util/sets"
)

// Settings is the immutable record read by the generator.
type Settings struct {
	meta              Metadata
	staticPaths       []string
	extraDir          string
	icons             ExtraIcons
	extraPathMetadata map[string]PathMetadata
}

// Option customises Build.
type Option func(*buildOptions)

type buildOptions struct {
	staticBase []string
	extraDir   string
	icons      ExtraIcons
	logger     *slog.Logger
}

// WithStaticBase replaces the static directories listed ahead of the icons.
func WithStaticBase(dirs ...string) Option {
	return func(o *buildOptions) { o.staticBase = slices.Clone(dirs) }
}

// WithExtraDir sets the source directory of the icons.
func WithExtraDir(dir string) Option {
	return func(o *buildOptions) { o.extraDir = dir }
}

// WithExtraIcons replaces the built-in icon list.
func WithExtraIcons(icons ExtraIcons) Option {
	return func(o *buildOptions) { o.icons = slices.Clone(icons) }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *buildOptions) { o.logger = l }
}

// Build derives the static paths and extra path metadata for meta and returns
// the resulting Settings. It fails on an invalid icon list or when a static
// path would be listed twice.
func Build(meta Metadata, opts ...Option) (*Settings, error) {
	o := buildOptions{
		staticBase: DefaultStaticBase(),
		extraDir:   DefaultExtraDir,
		icons:      DefaultExtraIcons(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	o.extraDir = strings.Trim(o.extraDir, "/")
	if o.extraDir == "" {
		return nil, errors.ValidationFailed("static.extra_dir", "must not be empty")
	}
	if err := o.icons.Validate(); err != nil {
		return nil, err
	}

	static := StaticPaths(o.staticBase, o.extraDir, o.icons)
	if dup, _, found := sets.FirstDuplicate(static); found {
		return nil, errors.ValidationFailed("static.base", "path listed twice: "+dup)
	}

	s := &Settings{
		meta:              meta.Clone(),
		staticPaths:       static,
		extraDir:          o.extraDir,
		icons:             o.icons,
		extraPathMetadata: ExtraPathMetadata(o.extraDir, o.icons),
	}

	o.logger.Info("Derived static paths",
		logfields.Site(meta.SiteName),
		logfields.StaticPaths(static),
		logfields.ExtraPaths(len(s.extraPathMetadata)))
	return s, nil
}

// Metadata returns a copy of the site metadata.
func (s *Settings) Metadata() Metadata { return s.meta.Clone() }

// StaticPaths returns a copy of the static path list.
func (s *Settings) StaticPaths() []string { return slices.Clone(s.staticPaths) }

// ExtraDir returns the normalised icon source directory.
func (s *Settings) ExtraDir() string { return s.extraDir }

// ExtraIcons returns a copy of the icon list in its original order.
func (s *Settings) ExtraIcons() ExtraIcons { return slices.Clone(s.icons) }

// ExtraPathMetadata returns a copy of the destination overrides.
func (s *Settings) ExtraPathMetadata() map[string]PathMetadata {
	return maps.Clone(s.extraPathMetadata)
}

// ExtraPathEntries returns the destination overrides in icon order, which is
// the order writers use.
func (s *Settings) ExtraPathEntries() []ExtraPathEntry {
	return mapEach(s.icons, func(name string) ExtraPathEntry {
		src := SourcePath(s.extraDir, name)
		return ExtraPathEntry{Source: src, Metadata: s.extraPathMetadata[src]}
	})
}

// ExtraPathEntry is one ordered element of the extra path metadata.
type ExtraPathEntry struct {
	Source   string
	Metadata PathMetadata
}

// Equal reports structural equality of two settings records.
func (s *Settings) Equal(o *Settings) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.meta.Equal(o.meta) &&
		s.extraDir == o.extraDir &&
		slices.Equal(s.staticPaths, o.staticPaths) &&
		slices.Equal(s.icons, o.icons) &&
		maps.Equal(s.extraPathMetadata, o.extraPathMetadata)
}
