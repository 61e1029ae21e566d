package rdf

import (
	"fmt"

	"github.com/Magicianred/RDFSharp/rdf/datatype"
)

// Literal is a plain literal (with an optional language tag) or a
// typed literal (with a datatype and a canonical lexical value).
// Literals are immutable once constructed; typed literal values are
// rewritten to canonical form during construction, never afterwards.
type Literal struct {
	value    string
	language string
	datatype datatype.Datatype
	typed    bool
	id       Identity
}

// NewPlainLiteral creates a plain literal without a language tag.
func NewPlainLiteral(value string) *Literal {
	l := &Literal{value: value}
	l.id = ComputeIdentity(l.String())
	return l
}

// NewPlainLiteralWithLanguage creates a plain literal with a language
// tag. An empty tag yields a plain literal; a malformed tag is a
// precondition violation.
func NewPlainLiteralWithLanguage(value, language string) (*Literal, error) {
	if language == "" {
		return NewPlainLiteral(value), nil
	}
	if _, ok := datatype.ValidateAndCanonicalize(datatype.XSDLanguage, language); !ok {
		return nil, fmt.Errorf("%w: malformed language tag %q", ErrModel, language)
	}
	l := &Literal{value: value, language: language}
	l.id = ComputeIdentity(l.String())
	return l, nil
}

// NewTypedLiteral creates a typed literal, validating the value against
// the datatype and rewriting it to canonical lexical form.
func NewTypedLiteral(value string, dt datatype.Datatype) (*Literal, error) {
	canonical, ok := datatype.ValidateAndCanonicalize(dt, value)
	if !ok {
		return nil, fmt.Errorf("%w: value %q is not valid for datatype <%s>", ErrModel, value, datatype.DatatypeToString(dt))
	}
	l := &Literal{value: canonical, datatype: dt, typed: true}
	l.id = ComputeIdentity(l.String())
	return l, nil
}

// ID returns the stable identity of the literal.
func (l *Literal) ID() Identity {
	return l.id
}

// String returns the canonical string form:
//
//	"value"               plain
//	"value"@lang          plain with language tag
//	"value"^^<datatype>   typed
func (l *Literal) String() string {
	if l.typed {
		return fmt.Sprintf("%q^^<%s>", l.value, datatype.DatatypeToString(l.datatype))
	}
	if l.language != "" {
		return fmt.Sprintf("%q@%s", l.value, l.language)
	}
	return fmt.Sprintf("%q", l.value)
}

// Value returns the lexical value.
func (l *Literal) Value() string {
	return l.value
}

// Language returns the language tag, or "" for typed and untagged literals.
func (l *Literal) Language() string {
	return l.language
}

// IsTyped reports whether the literal carries a datatype.
func (l *Literal) IsTyped() bool {
	return l.typed
}

// Datatype returns the datatype tag of a typed literal.
// Plain literals report RDFSLiteral.
func (l *Literal) Datatype() datatype.Datatype {
	if !l.typed {
		return datatype.RDFSLiteral
	}
	return l.datatype
}

// Equal checks identity equality with another term.
func (l *Literal) Equal(other Term) bool {
	return other != nil && l.id == other.ID()
}

func (*Literal) isTerm() {}
