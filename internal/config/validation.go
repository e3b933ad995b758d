package config

import (
	"fmt"

	"github.com/RendijsSmukulis/codevoid.io/internal/errors"
	"github.com/RendijsSmukulis/codevoid.io/internal/site"
)

// ValidateConfig checks the configuration structure. Values the generator
// interprets itself (timezone, language, URLs) are left to Lint.
func ValidateConfig(cfg *Config) error {
	v := &configurationValidator{config: cfg}
	return v.validate()
}

type configurationValidator struct {
	config *Config
}

func (cv *configurationValidator) validate() error {
	if err := cv.validateSite(); err != nil {
		return err
	}
	if err := cv.validateLinks("links", cv.config.Links); err != nil {
		return err
	}
	if err := cv.validateLinks("social", cv.config.Social); err != nil {
		return err
	}
	if err := cv.validateStatic(); err != nil {
		return err
	}
	return cv.validateOutput()
}

func (cv *configurationValidator) validateSite() error {
	s := cv.config.Site
	if s.Name == "" {
		return errors.ValidationFailed("site.name", "must not be empty")
	}
	if s.Author == "" {
		return errors.ValidationFailed("site.author", "must not be empty")
	}
	if s.ContentPath == "" {
		return errors.ValidationFailed("site.content_path", "must not be empty")
	}
	if s.DefaultPagination <= 0 {
		return errors.ValidationFailed("site.default_pagination", fmt.Sprintf("must be positive, got %d", s.DefaultPagination))
	}
	return nil
}

func (cv *configurationValidator) validateLinks(field string, links []Link) error {
	for i, l := range links {
		if l.Label == "" {
			return errors.ValidationFailed(fmt.Sprintf("%s[%d].label", field, i), "must not be empty")
		}
		if l.URL == "" {
			return errors.ValidationFailed(fmt.Sprintf("%s[%d].url", field, i), "must not be empty")
		}
	}
	return nil
}

func (cv *configurationValidator) validateStatic() error {
	st := cv.config.Static
	for i, dir := range st.Base {
		if dir == "" {
			return errors.ValidationFailed(fmt.Sprintf("static.base[%d]", i), "must not be empty")
		}
	}
	if len(st.ExtraIcons) == 0 {
		return errors.ValidationFailed("static.extra_icons", "must list at least one file")
	}
	return site.ExtraIcons(st.ExtraIcons).Validate()
}

// validateOutput normalises the output format in place.
func (cv *configurationValidator) validateOutput() error {
	format, err := ParseOutputFormat(string(cv.config.Output.Format))
	if err != nil {
		return errors.ValidationFailed("output.format", err.Error())
	}
	cv.config.Output.Format = format
	if cv.config.Output.Path == "" {
		cv.config.Output.Path = DefaultOutputPath
	}
	return nil
}
