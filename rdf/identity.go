package rdf

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// Identity is the stable 64-bit identity of a term, derived from its
// canonical string form. Identity equality stands in for structural
// equality throughout the store: two terms with equal canonical strings
// always produce equal identities.
//
// The scheme is a fixed interoperation contract: MD5 over the UTF-8
// bytes of the canonical string, truncated to the first 8 bytes and
// read as a signed big-endian 64-bit integer. Truncation makes hash
// collisions possible at very large graph scale; no collision chaining
// is performed.
type Identity int64

// ComputeIdentity computes the identity of a canonical string form.
func ComputeIdentity(s string) Identity {
	sum := md5.Sum([]byte(s))
	return Identity(int64(binary.BigEndian.Uint64(sum[:8])))
}

// ComputeTermIdentity computes the identity of a term.
// A nil term is a precondition violation.
func ComputeTermIdentity(t Term) (Identity, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: cannot hash a nil term", ErrModel)
	}
	return ComputeIdentity(t.String()), nil
}
