package rdf

import "fmt"

// Flavor distinguishes triples by the kind of their object.
type Flavor uint8

const (
	// SPO marks a triple whose object is a Resource.
	SPO Flavor = iota

	// SPL marks a triple whose object is a Literal.
	SPL
)

func (f Flavor) String() string {
	switch f {
	case SPO:
		return "SPO"
	case SPL:
		return "SPL"
	default:
		return "unknown"
	}
}

// Triple is an immutable (subject, predicate, object) fact.
// Identity for set operations is structural: two triples are the same
// iff subject, predicate and object identities all match.
type Triple struct {
	subject   *Resource
	predicate *Resource
	object    Term
	flavor    Flavor
	id        Identity
}

// NewTriple creates a triple. Subject and predicate are required, the
// predicate cannot be a blank node, and the object must be a Resource
// or Literal.
func NewTriple(subject, predicate *Resource, object Term) (*Triple, error) {
	if subject == nil {
		return nil, fmt.Errorf("%w: triple subject cannot be nil", ErrModel)
	}
	if predicate == nil {
		return nil, fmt.Errorf("%w: triple predicate cannot be nil", ErrModel)
	}
	if predicate.IsBlank() {
		return nil, fmt.Errorf("%w: triple predicate cannot be a blank node", ErrModel)
	}

	t := &Triple{subject: subject, predicate: predicate, object: object}
	switch object.(type) {
	case *Resource:
		t.flavor = SPO
	case *Literal:
		t.flavor = SPL
	default:
		return nil, fmt.Errorf("%w: triple object must be a resource or literal", ErrModel)
	}
	t.id = ComputeIdentity(t.String())
	return t, nil
}

// Subject returns the triple's subject.
func (t *Triple) Subject() *Resource { return t.subject }

// Predicate returns the triple's predicate.
func (t *Triple) Predicate() *Resource { return t.predicate }

// Object returns the triple's object (*Resource or *Literal).
func (t *Triple) Object() Term { return t.object }

// Flavor reports whether the object is a resource (SPO) or literal (SPL).
func (t *Triple) Flavor() Flavor { return t.flavor }

// ID returns the structural identity of the triple.
func (t *Triple) ID() Identity { return t.id }

// ObjectResource returns the object as a resource for SPO triples.
func (t *Triple) ObjectResource() (*Resource, bool) {
	r, ok := t.object.(*Resource)
	return r, ok
}

// ObjectLiteral returns the object as a literal for SPL triples.
func (t *Triple) ObjectLiteral() (*Literal, bool) {
	l, ok := t.object.(*Literal)
	return l, ok
}

// String returns the canonical string form "subject predicate object".
func (t *Triple) String() string {
	return t.subject.String() + " " + t.predicate.String() + " " + t.object.String()
}

// Equal checks structural equality with another triple.
func (t *Triple) Equal(other *Triple) bool {
	return other != nil && t.id == other.id
}
