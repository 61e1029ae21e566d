// Package graph implements the in-memory triple store: an insertion
// ordered triple set backed by four inverted indices, the pattern
// matcher over them, and the RDF collection codec.
package graph

import (
	"github.com/Magicianred/RDFSharp/rdf"
)

// positionSet is a set of triple positions inside a graph.
type positionSet map[int]struct{}

// TripleIndex maps term identities to the triple positions where the
// term occurs as subject, predicate, resource object or literal object.
//
// Invariant: a position appears in exactly the buckets matching the
// triple's actual subject/predicate/object identities.
type TripleIndex struct {
	subjects   map[rdf.Identity]positionSet
	predicates map[rdf.Identity]positionSet
	resources  map[rdf.Identity]positionSet
	literals   map[rdf.Identity]positionSet
}

// NewTripleIndex creates an empty index.
func NewTripleIndex() *TripleIndex {
	return &TripleIndex{
		subjects:   make(map[rdf.Identity]positionSet),
		predicates: make(map[rdf.Identity]positionSet),
		resources:  make(map[rdf.Identity]positionSet),
		literals:   make(map[rdf.Identity]positionSet),
	}
}

// Add records a triple at the given position in the buckets matching
// its subject, predicate and object.
func (ix *TripleIndex) Add(pos int, t *rdf.Triple) {
	addPosition(ix.subjects, t.Subject().ID(), pos)
	addPosition(ix.predicates, t.Predicate().ID(), pos)
	if t.Flavor() == rdf.SPO {
		addPosition(ix.resources, t.Object().ID(), pos)
	} else {
		addPosition(ix.literals, t.Object().ID(), pos)
	}
}

// Remove purges a triple position from all four bucket families, even
// though it truly occurred in at most three. No bucket may reference a
// removed position.
func (ix *TripleIndex) Remove(pos int, t *rdf.Triple) {
	removePosition(ix.subjects, t.Subject().ID(), pos)
	removePosition(ix.predicates, t.Predicate().ID(), pos)
	removePosition(ix.resources, t.Object().ID(), pos)
	removePosition(ix.literals, t.Object().ID(), pos)
}

// BySubject returns the positions where the identity occurs as subject.
// An absent key yields an empty set, never an error.
func (ix *TripleIndex) BySubject(id rdf.Identity) positionSet {
	return ix.subjects[id]
}

// ByPredicate returns the positions where the identity occurs as predicate.
func (ix *TripleIndex) ByPredicate(id rdf.Identity) positionSet {
	return ix.predicates[id]
}

// ByObjectResource returns the positions where the identity occurs as a
// resource-valued object.
func (ix *TripleIndex) ByObjectResource(id rdf.Identity) positionSet {
	return ix.resources[id]
}

// ByObjectLiteral returns the positions where the identity occurs as a
// literal-valued object.
func (ix *TripleIndex) ByObjectLiteral(id rdf.Identity) positionSet {
	return ix.literals[id]
}

func addPosition(buckets map[rdf.Identity]positionSet, id rdf.Identity, pos int) {
	set, ok := buckets[id]
	if !ok {
		set = make(positionSet)
		buckets[id] = set
	}
	set[pos] = struct{}{}
}

func removePosition(buckets map[rdf.Identity]positionSet, id rdf.Identity, pos int) {
	set, ok := buckets[id]
	if !ok {
		return
	}
	delete(set, pos)
	if len(set) == 0 {
		delete(buckets, id)
	}
}
