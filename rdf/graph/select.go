package graph

import (
	"fmt"
	"sort"

	"github.com/Magicianred/RDFSharp/rdf"
)

// SelectTriples returns the triples matching every bound term. Each of
// subject, predicate, objectResource and objectLiteral may be nil
// (unbound). Binding both objectResource and objectLiteral in the same
// call is a precondition violation: an object is either a resource or a
// literal, never both.
//
// With no bound terms the full triple set is returned (a copy, not a
// live view). Result order is derived from the index intersection;
// callers must not depend on it.
func SelectTriples(g *Graph, subject, predicate, objectResource *rdf.Resource, objectLiteral *rdf.Literal) ([]*rdf.Triple, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: cannot select triples from a nil graph", rdf.ErrQuery)
	}
	if objectResource != nil && objectLiteral != nil {
		return nil, fmt.Errorf("%w: cannot bind both a resource object and a literal object", rdf.ErrQuery)
	}

	// Candidate sets for the bound terms only; an empty bucket means an
	// empty result.
	var candidates []positionSet
	if subject != nil {
		candidates = append(candidates, g.index.BySubject(subject.ID()))
	}
	if predicate != nil {
		candidates = append(candidates, g.index.ByPredicate(predicate.ID()))
	}
	if objectResource != nil {
		candidates = append(candidates, g.index.ByObjectResource(objectResource.ID()))
	}
	if objectLiteral != nil {
		candidates = append(candidates, g.index.ByObjectLiteral(objectLiteral.ID()))
	}

	if len(candidates) == 0 {
		return g.Triples(), nil
	}

	positions := intersectPositions(candidates)
	results := make([]*rdf.Triple, 0, len(positions))
	for _, pos := range positions {
		if t := g.TripleAt(pos); t != nil {
			results = append(results, t)
		}
	}
	return results, nil
}

// intersectPositions intersects position sets, probing the smallest set
// against the others so the work is bounded by the smallest bucket.
func intersectPositions(sets []positionSet) []int {
	smallest := 0
	for i, set := range sets {
		if len(set) == 0 {
			return nil
		}
		if len(set) < len(sets[smallest]) {
			smallest = i
		}
	}

	var positions []int
	for pos := range sets[smallest] {
		member := true
		for i, set := range sets {
			if i == smallest {
				continue
			}
			if _, ok := set[pos]; !ok {
				member = false
				break
			}
		}
		if member {
			positions = append(positions, pos)
		}
	}
	sort.Ints(positions)
	return positions
}
