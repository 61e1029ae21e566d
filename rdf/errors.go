package rdf

import "errors"

var (
	// ErrModel indicates a violation of a data-model precondition,
	// such as a nil term where one is required.
	ErrModel = errors.New("rdf: model error")

	// ErrQuery indicates a violation of a query precondition.
	ErrQuery = errors.New("rdf: query error")
)
