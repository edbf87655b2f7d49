package source

import (
	"path/filepath"
	"strings"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
)

// validateUpload checks all fields and collects all errors.
func validateUpload(u domain.SourceUpload) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(u.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(u.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if strings.TrimSpace(u.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if len(u.Content) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "empty upload"})
	}
	if u.JSONPath != "" && !strings.HasPrefix(u.JSONPath, "$") {
		errs = append(errs, domain.FieldError{Field: "json_path", Message: "must start with $"})
	}
	if u.JSONPath != "" && extension(u) != "json" {
		errs = append(errs, domain.FieldError{Field: "json_path", Message: "only allowed for json sources"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// extension returns the declared extension, falling back to the file name's.
func extension(u domain.SourceUpload) string {
	ext := u.FileExtension
	if ext == "" {
		ext = filepath.Ext(u.FileName)
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
