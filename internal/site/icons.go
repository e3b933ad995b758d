package site

import (
	"github.com/RendijsSmukulis/codevoid.io/internal/errors"
	"github.com/RendijsSmukulis/codevoid.io/internal/util/sets"
)

// DefaultExtraDir is the source directory holding the root-level icons.
const DefaultExtraDir = "extra"

// ExtraIcons is the ordered list of files kept under the extra directory
// that must be served from the site root.
type ExtraIcons []string

// PathMetadata overrides the output location of one static file.
type PathMetadata struct {
	Path string
}

var defaultExtraIcons = ExtraIcons{
	"favicon.ico",
	"android-chrome-192x192.png",
	"android-chrome-256x256.png",
	"apple-touch-icon.png",
	"browserconfig.xml",
	"favicon-16x16.png",
	"favicon-32x32.png",
	"manifest.json",
	"mstile-150x150.png",
	"safari-pinned-tab.svg",
}

// DefaultExtraIcons returns a copy of the built-in icon list.
func DefaultExtraIcons() ExtraIcons {
	return append(ExtraIcons(nil), defaultExtraIcons...)
}

// DefaultStaticBase returns the static directories copied ahead of the icons.
func DefaultStaticBase() []string {
	return []string{"images"}
}

// Validate rejects empty names and duplicates. A duplicate would make two
// icons share one metadata key, so the later one would silently win.
func (icons ExtraIcons) Validate() error {
	for i, name := range icons {
		if name == "" {
			return errors.EmptyIcon(i)
		}
	}
	if dup, _, found := sets.FirstDuplicate(icons); found {
		return errors.DuplicateIcon(dup)
	}
	return nil
}

// Sources returns each icon prefixed with dir, in list order.
func (icons ExtraIcons) Sources(dir string) []string {
	return mapEach(icons, func(name string) string { return SourcePath(dir, name) })
}

// SourcePath joins the extra directory and a file name with a forward slash,
// the separator the generator expects on every platform.
func SourcePath(dir, name string) string {
	return dir + "/" + name
}

// StaticPaths returns base followed by every icon under dir, preserving order.
func StaticPaths(base []string, dir string, icons ExtraIcons) []string {
	out := make([]string, 0, len(base)+len(icons))
	out = append(out, base...)
	return append(out, icons.Sources(dir)...)
}

// ExtraPathMetadata maps each prefixed icon path to its bare file name, so the
// generator writes the icon at the site root.
func ExtraPathMetadata(dir string, icons ExtraIcons) map[string]PathMetadata {
	return indexBy(icons,
		func(name string) string { return SourcePath(dir, name) },
		func(name string) PathMetadata { return PathMetadata{Path: name} })
}

func mapEach[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func indexBy[T any, K comparable, V any](in []T, key func(T) K, val func(T) V) map[K]V {
	out := make(map[K]V, len(in))
	for _, v := range in {
		out[key(v)] = val(v)
	}
	return out
}
