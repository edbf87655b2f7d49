package domain

import (
	"time"

	"github.com/google/uuid"
)

// FileMetadata describes a blob held by the file service.
type FileMetadata struct {
	ID        string
	Name      string
	Stem      string
	Suffix    string
	Hash      string
	Size      int64
	Location  string
	CreatedAt time.Time
}

// Source is an uploaded data source. Immutable after creation; owned by exactly one Mapping.
type Source struct {
	ID            uuid.UUID
	Name          string
	Description   string
	FileName      string
	FileExtension string
	JSONPath      string
	FileID        string
	Hash          string
	Location      string
	CreatedAt     time.Time
}

// SourceUpload carries the data needed to create a Source.
type SourceUpload struct {
	Name          string
	Description   string
	FileName      string
	FileExtension string
	JSONPath      string
	Content       []byte
}

// Prefix binds a namespace abbreviation to a URI.
type Prefix struct {
	ID        uuid.UUID
	Prefix    string
	URI       string
	CreatedAt time.Time
}

// OntologyInfo is the metadata extracted by the ontology parser.
type OntologyInfo struct {
	Format        string
	TripleCount   int
	ClassCount    int
	PropertyCount int
}

// Ontology is an uploaded schema document bound to exactly one Prefix.
type Ontology struct {
	ID            uuid.UUID
	Name          string
	Description   string
	FileName      string
	FileExtension string
	FileID        string
	Hash          string
	PrefixID      uuid.UUID
	Info          OntologyInfo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OntologyUpload carries the data needed to create an Ontology.
type OntologyUpload struct {
	Name          string
	Description   string
	FileName      string
	FileExtension string
	Content       []byte
}
