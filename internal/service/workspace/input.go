package workspace

import (
	"strings"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
)

// CreateWorkspaceInput holds the parameters for creating a workspace.
type CreateWorkspaceInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks all fields and collects all errors.
func (i CreateWorkspaceInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	errs = validateDescription(errs, i.Description)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateWorkspaceInput changes name and/or description. Nil fields are left as is.
type UpdateWorkspaceInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Validate checks all fields and collects all errors.
func (i UpdateWorkspaceInput) Validate() error {
	var errs []domain.FieldError
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Description != nil {
		errs = validateDescription(errs, *i.Description)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddMappingInput holds a mapping name and the upload of its source.
type AddMappingInput struct {
	Name   string
	Source domain.SourceUpload
}

// Validate checks the mapping name. The upload is validated by the source registry.
func (i AddMappingInput) Validate() error {
	if errs := validateName(nil, i.Name); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, description string) []domain.FieldError {
	if len(description) > maxDescriptionLength {
		return append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	return errs
}
