package config

import (
	"github.com/RendijsSmukulis/codevoid.io/internal/foundation/normalization"
)

// OutputFormat selects the settings file syntax.
type OutputFormat string

const (
	OutputFormatPelican OutputFormat = "pelican"
	OutputFormatYAML    OutputFormat = "yaml"
	OutputFormatJSON    OutputFormat = "json"
)

var outputFormatNormalizer = normalization.NewNormalizer("output format", map[string]OutputFormat{
	"pelican": OutputFormatPelican,
	"yaml":    OutputFormatYAML,
	"json":    OutputFormatJSON,
}, map[string]string{
	"py":          "pelican",
	"python":      "pelican",
	"pelicanconf": "pelican",
	"yml":         "yaml",
}, OutputFormatPelican)

// ParseOutputFormat normalises raw, rejecting unknown formats. Empty input
// selects the pelican format.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.Parse(raw)
}

// OutputFormats lists the accepted canonical format names.
func OutputFormats() []string {
	return outputFormatNormalizer.Valid()
}
