// Package rdfparser reads ontology documents and extracts summary metadata.
package rdfparser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/knakk/rdf"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

const (
	rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	owlNS   = "http://www.w3.org/2002/07/owl#"
	rdfsNS  = "http://www.w3.org/2000/01/rdf-schema#"
	rdfNS   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

var classTypes = map[string]bool{
	owlNS + "Class":  true,
	rdfsNS + "Class": true,
}

var propertyTypes = map[string]bool{
	owlNS + "ObjectProperty":     true,
	owlNS + "DatatypeProperty":   true,
	owlNS + "AnnotationProperty": true,
	rdfNS + "Property":           true,
}

// formats maps lower-case file extensions to decoder formats.
var formats = map[string]struct {
	name   string
	format rdf.Format
}{
	"ttl": {"turtle", rdf.Turtle},
	"nt":  {"ntriples", rdf.NTriples},
	"rdf": {"rdfxml", rdf.RDFXML},
	"owl": {"rdfxml", rdf.RDFXML},
	"xml": {"rdfxml", rdf.RDFXML},
}

// Parser decodes Turtle, N-Triples and RDF/XML documents.
type Parser struct{}

// New creates a Parser.
func New() *Parser { return &Parser{} }

// Parse decodes content in the format named by extension and counts triples,
// declared classes and declared properties. Decoder failures are returned as a
// validation error carrying the decoder's message unchanged. A document with
// no triples is rejected.
func (p *Parser) Parse(content []byte, extension string) (domain.OntologyInfo, error) {
	f, ok := formats[strings.ToLower(strings.TrimPrefix(extension, "."))]
	if !ok {
		return domain.OntologyInfo{}, domain.NewValidationError("file_extension",
			fmt.Sprintf("unsupported ontology format %q (want ttl, nt, rdf, owl or xml)", extension))
	}

	if f.format == rdf.RDFXML {
		if err := checkRDFRoot(content); err != nil {
			return domain.OntologyInfo{}, domain.NewValidationError("file", err.Error())
		}
	}

	dec := rdf.NewTripleDecoder(bytes.NewReader(content), f.format)

	info := domain.OntologyInfo{Format: f.name}
	classes := make(map[string]struct{})
	properties := make(map[string]struct{})

	for {
		tr, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.OntologyInfo{}, domain.NewValidationError("file", err.Error())
		}

		info.TripleCount++

		if tr.Pred.String() != rdfType {
			continue
		}
		obj, ok := tr.Obj.(rdf.IRI)
		if !ok {
			continue
		}
		switch {
		case classTypes[obj.String()]:
			classes[tr.Subj.String()] = struct{}{}
		case propertyTypes[obj.String()]:
			properties[tr.Subj.String()] = struct{}{}
		}
	}

	if info.TripleCount == 0 {
		return domain.OntologyInfo{}, domain.NewValidationError("file", "document contains no RDF triples")
	}

	info.ClassCount = len(classes)
	info.PropertyCount = len(properties)
	return info, nil
}

// checkRDFRoot reports whether content is XML whose root element is rdf:RDF.
// The RDF/XML decoder silently accepts plain text and foreign XML.
func checkRDFRoot(content []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return errors.New("not an RDF/XML document: no root element")
		}
		if err != nil {
			return fmt.Errorf("not an RDF/XML document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == rdfNS && t.Name.Local == "RDF" {
				return nil
			}
			return fmt.Errorf("not an RDF/XML document: root element is <%s>, want rdf:RDF", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("not an RDF/XML document: text before root element")
			}
		}
	}
}
