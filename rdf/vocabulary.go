package rdf

// Core RDF vocabulary namespace.
const NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Fixed vocabulary used by the collection codec. Conforming graphs use
// exactly these terms to materialize RDF lists.
var (
	// First links a list anchor node to its item.
	First = MustResource(NamespaceRDF + "first")

	// Rest links a list anchor node to the next anchor node.
	Rest = MustResource(NamespaceRDF + "rest")

	// Nil is the sentinel terminating every well-formed list.
	Nil = MustResource(NamespaceRDF + "nil")

	// Type is the standard rdf:type predicate.
	Type = MustResource(NamespaceRDF + "type")
)
