// Package render serialises site settings into the file the generator reads.
package render

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/RendijsSmukulis/codevoid.io/internal/config"
	"github.com/RendijsSmukulis/codevoid.io/internal/errors"
	"github.com/RendijsSmukulis/codevoid.io/internal/logfields"
	"github.com/RendijsSmukulis/codevoid.io/internal/site"
)

// Renderer writes settings in one output syntax.
type Renderer interface {
	Render(w io.Writer, s *site.Settings) error
}

// For returns the renderer for format.
func For(format config.OutputFormat) (Renderer, error) {
	switch format {
	case config.OutputFormatPelican, "":
		return pelicanRenderer{}, nil
	case config.OutputFormatYAML:
		return yamlRenderer{}, nil
	case config.OutputFormatJSON:
		return jsonRenderer{}, nil
	default:
		return nil, errors.ValidationFailed("output.format", fmt.Sprintf("unsupported format %q", format))
	}
}

// Bytes renders s in format.
func Bytes(format config.OutputFormat, s *site.Settings) ([]byte, error) {
	r, err := For(format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, s); err != nil {
		return nil, errors.RenderFailed(string(format), err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders s and replaces path atomically, so the generator never
// reads a half-written settings file.
func WriteFile(path string, format config.OutputFormat, s *site.Settings) error {
	data, err := Bytes(format, s)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WriteFailed(path, fmt.Errorf("ensure output dir: %w", err))
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.WriteFailed(path, fmt.Errorf("write temp file: %w", err))
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.WriteFailed(path, fmt.Errorf("atomic rename: %w", err))
	}

	slog.Info("Wrote site settings",
		logfields.Path(path),
		logfields.Format(string(format)),
		logfields.Bytes(len(data)))
	return nil
}
