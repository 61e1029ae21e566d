package graph

import (
	"fmt"

	"github.com/Magicianred/RDFSharp/rdf"
)

// CollectionFlavor distinguishes collections of resources from
// collections of literals. A collection never mixes the two.
type CollectionFlavor uint8

const (
	// ResourceCollection holds resource items.
	ResourceCollection CollectionFlavor = iota

	// LiteralCollection holds literal items.
	LiteralCollection
)

func (f CollectionFlavor) String() string {
	switch f {
	case ResourceCollection:
		return "resource"
	case LiteralCollection:
		return "literal"
	default:
		return "unknown"
	}
}

// DeserializeCollection reconstructs the ordered items of an RDF list
// rooted at representative, following rdf:first/rdf:rest chains until
// rdf:nil.
//
// Malformed structure is recoverable, never an error: a missing first
// triple, a flavor mismatch, a dangling rest edge or a cycle all
// terminate traversal with whatever prefix was safely collected.
// Traversal is iterative with a visited-identity set, so adversarial
// cyclic input cannot recurse unboundedly.
func DeserializeCollection(g *Graph, representative *rdf.Resource, flavor CollectionFlavor) ([]rdf.Term, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: cannot deserialize a collection from a nil graph", rdf.ErrModel)
	}
	if representative == nil {
		return nil, fmt.Errorf("%w: collection representative cannot be nil", rdf.ErrModel)
	}

	var items []rdf.Term
	visited := make(map[rdf.Identity]struct{})
	node := representative

	for {
		// Cycle guard: a node reached twice ends the list here.
		if _, seen := visited[node.ID()]; seen {
			return items, nil
		}
		visited[node.ID()] = struct{}{}

		firsts, err := SelectTriples(g, node, rdf.First, nil, nil)
		if err != nil || len(firsts) == 0 {
			return items, nil
		}
		first := firsts[0]

		switch flavor {
		case ResourceCollection:
			item, ok := first.ObjectResource()
			if !ok {
				return items, nil
			}
			items = append(items, item)
		case LiteralCollection:
			item, ok := first.ObjectLiteral()
			if !ok {
				return items, nil
			}
			items = append(items, item)
		default:
			return items, nil
		}

		rests, err := SelectTriples(g, node, rdf.Rest, nil, nil)
		if err != nil || len(rests) == 0 {
			return items, nil
		}
		next, ok := rests[0].ObjectResource()
		if !ok || next.ID() == rdf.Nil.ID() {
			return items, nil
		}
		node = next
	}
}

// DetectCollectionFlavor inspects the first triple rooted at
// representative to decide whether the collection holds resources or
// literals. Absence of any first triple defaults to the resource flavor.
func DetectCollectionFlavor(g *Graph, representative *rdf.Resource) CollectionFlavor {
	if g == nil || representative == nil {
		return ResourceCollection
	}
	firsts, err := SelectTriples(g, representative, rdf.First, nil, nil)
	if err != nil || len(firsts) == 0 {
		return ResourceCollection
	}
	if firsts[0].Flavor() == rdf.SPL {
		return LiteralCollection
	}
	return ResourceCollection
}

// ReifyCollection materializes an ordered item sequence as an RDF list
// in the graph: a chain of blank anchor nodes linked by rdf:first and
// rdf:rest, terminated by rdf:nil. Returns the representative node.
//
// An empty sequence reifies to rdf:nil with no triples added. Items
// must all be resources or all literals.
func ReifyCollection(g *Graph, items []rdf.Term) (*rdf.Resource, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: cannot reify a collection into a nil graph", rdf.ErrModel)
	}
	if len(items) == 0 {
		return rdf.Nil, nil
	}

	wantLiteral := false
	if _, ok := items[0].(*rdf.Literal); ok {
		wantLiteral = true
	}

	anchors := make([]*rdf.Resource, len(items))
	for i := range items {
		anchors[i] = rdf.NewBlankNode()
	}

	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: collection item cannot be nil", rdf.ErrModel)
		}
		_, isLiteral := item.(*rdf.Literal)
		if isLiteral != wantLiteral {
			return nil, fmt.Errorf("%w: collection cannot mix resources and literals", rdf.ErrModel)
		}

		firstTriple, err := rdf.NewTriple(anchors[i], rdf.First, item)
		if err != nil {
			return nil, err
		}
		if err := g.AddTriple(firstTriple); err != nil {
			return nil, err
		}

		next := rdf.Nil
		if i < len(items)-1 {
			next = anchors[i+1]
		}
		restTriple, err := rdf.NewTriple(anchors[i], rdf.Rest, next)
		if err != nil {
			return nil, err
		}
		if err := g.AddTriple(restTriple); err != nil {
			return nil, err
		}
	}

	return anchors[0], nil
}
