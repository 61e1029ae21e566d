package rdf

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Term is a Resource or Literal value usable in triple positions.
type Term interface {
	// ID returns the stable 64-bit identity of the term.
	ID() Identity

	// String returns the canonical string form of the term.
	// This is the exact input to identity computation.
	String() string

	isTerm()
}

// blankNodePrefix marks blank node identifiers in their canonical form.
const blankNodePrefix = "bnode:"

// Resource is an IRI or a blank node.
type Resource struct {
	value string
	id    Identity
}

// NewResource creates a resource from an absolute IRI.
func NewResource(iri string) (*Resource, error) {
	if iri == "" {
		return nil, fmt.Errorf("%w: resource IRI cannot be empty", ErrModel)
	}
	if strings.HasPrefix(iri, blankNodePrefix) || strings.HasPrefix(iri, "_:") {
		return NewBlankNodeFromID(strings.TrimPrefix(strings.TrimPrefix(iri, blankNodePrefix), "_:")), nil
	}
	u, err := url.Parse(iri)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("%w: resource IRI %q is not an absolute IRI", ErrModel, iri)
	}
	value := u.String()
	return &Resource{value: value, id: ComputeIdentity(value)}, nil
}

// NewBlankNode creates a blank node with a fresh random identifier.
func NewBlankNode() *Resource {
	return NewBlankNodeFromID(uuid.NewString())
}

// NewBlankNodeFromID creates a blank node with the given local identifier.
func NewBlankNodeFromID(id string) *Resource {
	if id == "" {
		id = uuid.NewString()
	}
	value := blankNodePrefix + id
	return &Resource{value: value, id: ComputeIdentity(value)}
}

// MustResource creates a resource from an IRI known to be valid,
// panicking otherwise. Intended for compile-time constant vocabularies.
func MustResource(iri string) *Resource {
	r, err := NewResource(iri)
	if err != nil {
		panic(err)
	}
	return r
}

// ID returns the stable identity of the resource.
func (r *Resource) ID() Identity {
	return r.id
}

// String returns the canonical string form (the IRI, or "bnode:<id>").
func (r *Resource) String() string {
	return r.value
}

// IsBlank reports whether the resource is a blank node.
func (r *Resource) IsBlank() bool {
	return strings.HasPrefix(r.value, blankNodePrefix)
}

// BlankID returns the local identifier of a blank node, or "" for IRIs.
func (r *Resource) BlankID() string {
	if !r.IsBlank() {
		return ""
	}
	return strings.TrimPrefix(r.value, blankNodePrefix)
}

// Equal checks identity equality with another term.
func (r *Resource) Equal(other Term) bool {
	return other != nil && r.id == other.ID()
}

func (*Resource) isTerm() {}
