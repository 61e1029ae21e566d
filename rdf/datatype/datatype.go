// Package datatype implements the XSD/RDF datatype registry and the
// per-datatype lexical validation and canonicalization rules.
package datatype

import (
	"errors"
	"fmt"
	"net/url"
)

// Namespace IRIs for the recognized datatype vocabularies.
const (
	NamespaceXSD  = "http://www.w3.org/2001/XMLSchema#"
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
)

// ErrInvalidDatatypeIRI indicates a datatype string that does not parse
// as an absolute IRI.
var ErrInvalidDatatypeIRI = errors.New("datatype: invalid datatype IRI")

// Datatype enumerates the recognized XSD/RDF/RDFS datatypes.
// Any syntactically valid but unrecognized datatype IRI degrades to
// RDFSLiteral, which behaves like a plain literal.
type Datatype uint8

const (
	RDFSLiteral Datatype = iota
	RDFXMLLiteral
	RDFHTML
	RDFJSON
	XSDString
	XSDBoolean
	XSDDecimal
	XSDFloat
	XSDDouble
	XSDInteger
	XSDLong
	XSDInt
	XSDShort
	XSDByte
	XSDUnsignedLong
	XSDUnsignedInt
	XSDUnsignedShort
	XSDUnsignedByte
	XSDNonPositiveInteger
	XSDNegativeInteger
	XSDNonNegativeInteger
	XSDPositiveInteger
	XSDDuration
	XSDDateTime
	XSDDate
	XSDTime
	XSDGYear
	XSDGYearMonth
	XSDGMonth
	XSDGDay
	XSDGMonthDay
	XSDHexBinary
	XSDBase64Binary
	XSDAnyURI
	XSDQName
	XSDLanguage
	XSDNormalizedString
	XSDToken
	XSDNMToken
	XSDName
	XSDNCName
	XSDID
)

// datatypeIRIs maps each known tag to its exact standard IRI.
// These IRIs are a stable public vocabulary.
var datatypeIRIs = map[Datatype]string{
	RDFSLiteral:           NamespaceRDFS + "Literal",
	RDFXMLLiteral:         NamespaceRDF + "XMLLiteral",
	RDFHTML:               NamespaceRDF + "HTML",
	RDFJSON:               NamespaceRDF + "JSON",
	XSDString:             NamespaceXSD + "string",
	XSDBoolean:            NamespaceXSD + "boolean",
	XSDDecimal:            NamespaceXSD + "decimal",
	XSDFloat:              NamespaceXSD + "float",
	XSDDouble:             NamespaceXSD + "double",
	XSDInteger:            NamespaceXSD + "integer",
	XSDLong:               NamespaceXSD + "long",
	XSDInt:                NamespaceXSD + "int",
	XSDShort:              NamespaceXSD + "short",
	XSDByte:               NamespaceXSD + "byte",
	XSDUnsignedLong:       NamespaceXSD + "unsignedLong",
	XSDUnsignedInt:        NamespaceXSD + "unsignedInt",
	XSDUnsignedShort:      NamespaceXSD + "unsignedShort",
	XSDUnsignedByte:       NamespaceXSD + "unsignedByte",
	XSDNonPositiveInteger: NamespaceXSD + "nonPositiveInteger",
	XSDNegativeInteger:    NamespaceXSD + "negativeInteger",
	XSDNonNegativeInteger: NamespaceXSD + "nonNegativeInteger",
	XSDPositiveInteger:    NamespaceXSD + "positiveInteger",
	XSDDuration:           NamespaceXSD + "duration",
	XSDDateTime:           NamespaceXSD + "dateTime",
	XSDDate:               NamespaceXSD + "date",
	XSDTime:               NamespaceXSD + "time",
	XSDGYear:              NamespaceXSD + "gYear",
	XSDGYearMonth:         NamespaceXSD + "gYearMonth",
	XSDGMonth:             NamespaceXSD + "gMonth",
	XSDGDay:               NamespaceXSD + "gDay",
	XSDGMonthDay:          NamespaceXSD + "gMonthDay",
	XSDHexBinary:          NamespaceXSD + "hexBinary",
	XSDBase64Binary:       NamespaceXSD + "base64Binary",
	XSDAnyURI:             NamespaceXSD + "anyURI",
	XSDQName:              NamespaceXSD + "QName",
	XSDLanguage:           NamespaceXSD + "language",
	XSDNormalizedString:   NamespaceXSD + "normalizedString",
	XSDToken:              NamespaceXSD + "token",
	XSDNMToken:            NamespaceXSD + "NMTOKEN",
	XSDName:               NamespaceXSD + "Name",
	XSDNCName:             NamespaceXSD + "NCName",
	XSDID:                 NamespaceXSD + "ID",
}

// iriToDatatype is the inverse of datatypeIRIs, built at init.
var iriToDatatype = func() map[string]Datatype {
	m := make(map[string]Datatype, len(datatypeIRIs))
	for dt, iri := range datatypeIRIs {
		m[iri] = dt
	}
	return m
}()

// StringToDatatype resolves a datatype IRI to its tag.
// The IRI must parse as an absolute IRI; unrecognized absolute IRIs map
// to RDFSLiteral (unknown datatypes degrade to plain-literal treatment).
func StringToDatatype(iri string) (Datatype, error) {
	if iri == "" {
		return RDFSLiteral, fmt.Errorf("%w: empty string", ErrInvalidDatatypeIRI)
	}
	u, err := url.Parse(iri)
	if err != nil || !u.IsAbs() {
		return RDFSLiteral, fmt.Errorf("%w: %q", ErrInvalidDatatypeIRI, iri)
	}
	if dt, ok := iriToDatatype[iri]; ok {
		return dt, nil
	}
	return RDFSLiteral, nil
}

// DatatypeToString returns the exact IRI of a known tag.
// Round-trip identity holds: StringToDatatype(DatatypeToString(t)) == t.
func DatatypeToString(dt Datatype) string {
	if iri, ok := datatypeIRIs[dt]; ok {
		return iri
	}
	return datatypeIRIs[RDFSLiteral]
}

// String returns the datatype IRI.
func (dt Datatype) String() string {
	return DatatypeToString(dt)
}

// All returns every known datatype tag.
func All() []Datatype {
	tags := make([]Datatype, 0, len(datatypeIRIs))
	for dt := range datatypeIRIs {
		tags = append(tags, dt)
	}
	return tags
}

// IsDecimalCompatible reports whether values of the datatype can be
// read as decimal numbers during aggregation.
func IsDecimalCompatible(dt Datatype) bool {
	switch dt {
	case XSDDecimal, XSDFloat, XSDDouble,
		XSDInteger, XSDLong, XSDInt, XSDShort, XSDByte,
		XSDUnsignedLong, XSDUnsignedInt, XSDUnsignedShort, XSDUnsignedByte,
		XSDNonPositiveInteger, XSDNegativeInteger,
		XSDNonNegativeInteger, XSDPositiveInteger:
		return true
	}
	return false
}
