package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath        = "path"
	KeyFormat      = "format"
	KeySite        = "site"
	KeyStaticPaths = "static_paths"
	KeyExtraPaths  = "extra_paths"
	KeyIconCount   = "icons"
	KeyField       = "field"
	KeyWarning     = "warning"
	KeyEvent       = "event"
	KeyBytes       = "bytes"
	KeyError       = "error"
)

// Helpers returning slog.Attr so callers compose fields instead of repeating keys.
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr { return slog.String(KeyFormat, f) }
func Site(name string) slog.Attr { return slog.String(KeySite, name) }
func StaticPaths(paths []string) slog.Attr { return slog.Any(KeyStaticPaths, paths) }
func ExtraPaths(n int) slog.Attr { return slog.Int(KeyExtraPaths, n) }
func IconCount(n int) slog.Attr { return slog.Int(KeyIconCount, n) }
func Field(name string) slog.Attr { return slog.String(KeyField, name) }
func Warning(msg string) slog.Attr { return slog.String(KeyWarning, msg) }
func Event(op string) slog.Attr { return slog.String(KeyEvent, op) }
func Bytes(n int) slog.Attr { return slog.Int(KeyBytes, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
