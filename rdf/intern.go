package rdf

import (
	"sync"
)

// resourceIntern caches resources by IRI to avoid repeated hashing and
// allocation when the same IRI is built over and over during loads.
// Uses sync.Map for lock-free concurrent reads.
var resourceIntern = &sync.Map{} // map[string]*Resource

// InternResource returns an interned resource for an absolute IRI.
func InternResource(iri string) (*Resource, error) {
	// Fast path: load existing (lock-free)
	if val, ok := resourceIntern.Load(iri); ok {
		return val.(*Resource), nil
	}

	// Slow path: create and store
	r, err := NewResource(iri)
	if err != nil {
		return nil, err
	}
	actual, _ := resourceIntern.LoadOrStore(iri, r)
	return actual.(*Resource), nil
}

// ClearInterns clears the resource intern cache.
// Useful for testing or when memory needs to be reclaimed.
func ClearInterns() {
	resourceIntern = &sync.Map{}
}
