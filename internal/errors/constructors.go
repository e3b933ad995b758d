package errors

// Config errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "site file not found").
		WithContext("path", path)
}

func ConfigUnreadable(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "site file could not be read").
		WithContext("path", path)
}

func ConfigExists(path string) *SiteError {
	return New(CategoryConfig, SeverityError, "site file already exists (use --force to overwrite)").
		WithContext("path", path)
}

// DuplicateIcon reports an icon name that appears more than once in the
// extra icon list. Accepting it would silently collapse two path metadata
// entries into one.
func DuplicateIcon(name string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "duplicate extra icon").
		WithContext("icon", name)
}

func EmptyIcon(index int) *SiteError {
	return New(CategoryConfig, SeverityFatal, "empty extra icon name").
		WithContext("index", index)
}

// Validation errors

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Output errors

func WriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "settings file write failed").
		WithContext("path", path)
}

func RenderFailed(format string, cause error) *SiteError {
	return Wrap(cause, CategoryRender, SeverityFatal, "settings rendering failed").
		WithContext("format", format)
}

// Internal errors

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
