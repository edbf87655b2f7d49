package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrPrefixInUse        = errors.New("prefix in use")
	ErrPrefixAlreadyBound = errors.New("prefix already bound")
	ErrCorrupted          = errors.New("corrupted")
)

// EntityKind names the kind of entity in NotFound and Conflict errors.
type EntityKind string

const (
	KindWorkspace EntityKind = "workspace"
	KindMapping   EntityKind = "mapping"
	KindSnapshot  EntityKind = "snapshot"
	KindSource    EntityKind = "source"
	KindOntology  EntityKind = "ontology"
	KindPrefix    EntityKind = "prefix"
	KindFile      EntityKind = "file"
)

// NotFoundError reports a missing entity by kind and id.
type NotFoundError struct {
	Kind EntityKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound builds a NotFoundError for a uuid-keyed entity.
func NewNotFound(kind EntityKind, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id.String()}
}

// DuplicateConstraintError is returned when a value must be unique within a workspace.
type DuplicateConstraintError struct {
	Field string
	Value string
}

func (e *DuplicateConstraintError) Error() string {
	return fmt.Sprintf("duplicate %s %q", e.Field, e.Value)
}

func (e *DuplicateConstraintError) Unwrap() error { return ErrAlreadyExists }

// PrefixAlreadyBoundError is returned when a prefix is already used by another ontology.
type PrefixAlreadyBoundError struct {
	PrefixID     uuid.UUID
	Prefix       string
	OntologyName string
}

func (e *PrefixAlreadyBoundError) Error() string {
	return fmt.Sprintf("ontology %s already uses prefix %s", e.OntologyName, e.Prefix)
}

func (e *PrefixAlreadyBoundError) Unwrap() error { return ErrPrefixAlreadyBound }

// PrefixInUseError is returned when deleting a prefix an ontology still references.
type PrefixInUseError struct {
	PrefixID     uuid.UUID
	Prefix       string
	OntologyName string
}

func (e *PrefixInUseError) Error() string {
	return fmt.Sprintf("ontology %s uses prefix %s, reassign its prefix before removing", e.OntologyName, e.Prefix)
}

func (e *PrefixInUseError) Unwrap() error { return ErrPrefixInUse }

// SnapshotNotFoundError is returned when a revert targets a snapshot absent from history.
type SnapshotNotFoundError struct {
	MappingID  uuid.UUID
	SnapshotID uuid.UUID
}

func (e *SnapshotNotFoundError) Error() string {
	return fmt.Sprintf("snapshot %s not found in mapping %s", e.SnapshotID, e.MappingID)
}

func (e *SnapshotNotFoundError) Unwrap() error { return ErrNotFound }

// CorruptedError is returned when stored content no longer matches its recorded hash.
type CorruptedError struct {
	ResourceID string
}

func (e *CorruptedError) Error() string {
	return fmt.Sprintf("file %s is corrupted, please delete and re-upload", e.ResourceID)
}

func (e *CorruptedError) Unwrap() error { return ErrCorrupted }

// ConflictError is returned when a save carries a stale version token.
type ConflictError struct {
	Kind    EntityKind
	ID      uuid.UUID
	Version int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s was modified concurrently (expected version %d)", e.Kind, e.ID, e.Version)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
