package graph

import (
	"fmt"

	"github.com/Magicianred/RDFSharp/rdf"
)

// Graph is an insertion-ordered collection of unique triples plus a
// derived triple index. The index is owned exclusively by the graph and
// is kept consistent on every insert and remove.
//
// Graphs carry no internal locking: concurrent mutation must be
// serialized by the caller. Read-only operations are safe to run
// concurrently with each other as long as no writer is active.
type Graph struct {
	// triples holds insertion order; removed slots become nil
	// tombstones so indexed positions of the remaining triples stay
	// stable.
	triples []*rdf.Triple
	byID    map[rdf.Identity]int
	index   *TripleIndex
	size    int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		byID:  make(map[rdf.Identity]int),
		index: NewTripleIndex(),
	}
}

// AddTriple inserts a triple. Duplicate triples (structural identity)
// are ignored. A nil triple is a precondition violation.
func (g *Graph) AddTriple(t *rdf.Triple) error {
	if t == nil {
		return fmt.Errorf("%w: cannot add a nil triple", rdf.ErrModel)
	}
	if _, exists := g.byID[t.ID()]; exists {
		return nil
	}
	pos := len(g.triples)
	g.triples = append(g.triples, t)
	g.byID[t.ID()] = pos
	g.index.Add(pos, t)
	g.size++
	return nil
}

// RemoveTriple removes a triple if present, purging its position from
// every index bucket.
func (g *Graph) RemoveTriple(t *rdf.Triple) error {
	if t == nil {
		return fmt.Errorf("%w: cannot remove a nil triple", rdf.ErrModel)
	}
	pos, exists := g.byID[t.ID()]
	if !exists {
		return nil
	}
	g.index.Remove(pos, g.triples[pos])
	g.triples[pos] = nil
	delete(g.byID, t.ID())
	g.size--
	return nil
}

// ContainsTriple reports whether the triple is in the graph.
func (g *Graph) ContainsTriple(t *rdf.Triple) bool {
	if t == nil {
		return false
	}
	_, exists := g.byID[t.ID()]
	return exists
}

// Len returns the number of triples.
func (g *Graph) Len() int {
	return g.size
}

// Triples returns the triples in insertion order. The slice is a copy;
// mutating it does not affect the graph.
func (g *Graph) Triples() []*rdf.Triple {
	out := make([]*rdf.Triple, 0, g.size)
	for _, t := range g.triples {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// TripleAt returns the triple at an index position, or nil for a
// removed slot.
func (g *Graph) TripleAt(pos int) *rdf.Triple {
	if pos < 0 || pos >= len(g.triples) {
		return nil
	}
	return g.triples[pos]
}

// Index returns the graph's triple index.
func (g *Graph) Index() *TripleIndex {
	return g.index
}

// Clear removes every triple and resets the index.
func (g *Graph) Clear() {
	g.triples = nil
	g.byID = make(map[rdf.Identity]int)
	g.index = NewTripleIndex()
	g.size = 0
}
