// Package codec defines the wire-format boundary of the store: the
// Graph-to-bytes and bytes-to-Graph contract, plus the N-Triples
// implementation. Other formats are external collaborators reached
// through the same contract.
package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/Magicianred/RDFSharp/rdf/graph"
)

// Format enumerates the wire formats reachable through the codec
// boundary.
type Format uint8

const (
	NTriples Format = iota
	RDFXML
	TriX
	Turtle
)

func (f Format) String() string {
	switch f {
	case NTriples:
		return "N-Triples"
	case RDFXML:
		return "RDF/XML"
	case TriX:
		return "TriX"
	case Turtle:
		return "Turtle"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat indicates a format with no codec wired in.
var ErrUnsupportedFormat = errors.New("codec: unsupported format")

// Serialize writes a graph to a byte stream in the given format.
func Serialize(f Format, g *graph.Graph, w io.Writer) error {
	switch f {
	case NTriples:
		return serializeNTriples(g, w)
	default:
		return fmt.Errorf("%w: cannot serialize %s", ErrUnsupportedFormat, f)
	}
}

// Deserialize reads a graph from a byte stream in the given format.
// Turtle is write-only at this boundary.
func Deserialize(f Format, r io.Reader) (*graph.Graph, error) {
	switch f {
	case NTriples:
		return deserializeNTriples(r)
	default:
		return nil, fmt.Errorf("%w: cannot deserialize %s", ErrUnsupportedFormat, f)
	}
}
