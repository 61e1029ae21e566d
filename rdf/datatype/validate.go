package datatype

import (
	"encoding/base64"
	"encoding/xml"
	"io"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Lexical grammars shared across datatypes.
var (
	languagePattern  = regexp.MustCompile(`^[a-zA-Z]{1,8}(-[a-zA-Z0-9]{1,8})*$`)
	hexBinaryPattern = regexp.MustCompile(`^([0-9a-fA-F]{2})*$`)
	ncNamePattern    = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_.\-]*$`)
	namePattern      = regexp.MustCompile(`^[\p{L}_:][\p{L}\p{N}_.\-:]*$`)
	nmTokenPattern   = regexp.MustCompile(`^[\p{L}\p{N}_.\-:]+$`)
	decimalPattern   = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	integerPattern   = regexp.MustCompile(`^[+-]?\d+$`)
	durationPattern  = regexp.MustCompile(`^-?P(\d+Y)?(\d+M)?(\d+D)?(T(\d+H)?(\d+M)?(\d+(\.\d+)?S)?)?$`)
)

// dateTimeFormat is the ordered list of accepted lexical layouts for a
// date/time datatype plus the single canonical layout its value is
// rewritten to. Layouts with a trailing offset come first; fractional
// seconds are accepted by the parser on any layout and stripped by the
// canonical rewrite.
type dateTimeFormat struct {
	layouts   []string
	canonical string
}

var dateTimeFormats = map[Datatype]dateTimeFormat{
	XSDDateTime: {
		layouts:   []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05"},
		canonical: "2006-01-02T15:04:05",
	},
	XSDDate: {
		layouts:   []string{"2006-01-02Z07:00", "2006-01-02"},
		canonical: "2006-01-02",
	},
	XSDTime: {
		layouts:   []string{"15:04:05Z07:00", "15:04:05"},
		canonical: "15:04:05",
	},
	XSDGYear: {
		layouts:   []string{"2006Z07:00", "2006"},
		canonical: "2006",
	},
	XSDGYearMonth: {
		layouts:   []string{"2006-01Z07:00", "2006-01"},
		canonical: "2006-01",
	},
	XSDGMonth: {
		layouts:   []string{"--01Z07:00", "--01"},
		canonical: "--01",
	},
	XSDGDay: {
		layouts:   []string{"---02Z07:00", "---02"},
		canonical: "---02",
	},
	XSDGMonthDay: {
		layouts:   []string{"--01-02Z07:00", "--01-02"},
		canonical: "--01-02",
	},
}

// ValidateAndCanonicalize checks a lexical value against its datatype
// and returns the canonical lexical form on success.
//
// Failure is always reported as ok == false, never as an error: bulk
// graph processing continues past individual malformed literals.
// Canonicalization is idempotent: feeding a canonical value back in
// succeeds and returns it unchanged.
func ValidateAndCanonicalize(dt Datatype, value string) (canonical string, ok bool) {
	switch dt {

	// String-like datatypes carry any lexical value unchanged.
	case RDFSLiteral, XSDString, RDFHTML:
		return value, true

	case RDFXMLLiteral:
		if !isWellFormedXML(value) {
			return value, false
		}
		return value, true

	case RDFJSON:
		// Shallow structural check: bracket/brace delimited.
		trimmed := strings.TrimSpace(value)
		if len(trimmed) < 2 {
			return value, false
		}
		delimited := (trimmed[0] == '{' && trimmed[len(trimmed)-1] == '}') ||
			(trimmed[0] == '[' && trimmed[len(trimmed)-1] == ']')
		if !delimited {
			return value, false
		}
		return value, true

	case XSDAnyURI:
		u, err := url.Parse(value)
		if err != nil || !u.IsAbs() {
			return value, false
		}
		return u.String(), true

	case XSDName:
		return value, namePattern.MatchString(value)

	case XSDNCName, XSDID:
		return value, ncNamePattern.MatchString(value)

	case XSDQName:
		parts := strings.Split(value, ":")
		switch len(parts) {
		case 1:
			return value, ncNamePattern.MatchString(parts[0])
		case 2:
			return value, ncNamePattern.MatchString(parts[0]) && ncNamePattern.MatchString(parts[1])
		default:
			return value, false
		}

	case XSDNMToken:
		return value, nmTokenPattern.MatchString(value)

	case XSDToken:
		if strings.ContainsAny(value, "\t\n\r") {
			return value, false
		}
		if strings.HasPrefix(value, " ") || strings.HasSuffix(value, " ") {
			return value, false
		}
		return value, !strings.Contains(value, "  ")

	case XSDNormalizedString:
		return value, !strings.ContainsAny(value, "\t\n\r")

	case XSDLanguage:
		return value, languagePattern.MatchString(value)

	case XSDBase64Binary:
		if _, err := base64.StdEncoding.DecodeString(value); err != nil {
			return value, false
		}
		return value, true

	case XSDHexBinary:
		return value, hexBinaryPattern.MatchString(value)

	case XSDBoolean:
		// Case-sensitive; the numeric forms canonicalize.
		switch value {
		case "true", "false":
			return value, true
		case "1":
			return "true", true
		case "0":
			return "false", true
		default:
			return value, false
		}

	case XSDDateTime, XSDDate, XSDTime,
		XSDGYear, XSDGYearMonth, XSDGMonth, XSDGDay, XSDGMonthDay:
		return canonicalizeDateTime(dt, value)

	case XSDDuration:
		return value, isValidDuration(value)

	case XSDDecimal:
		return canonicalizeDecimal(value)

	case XSDDouble:
		return canonicalizeFloat(value, 64)

	case XSDFloat:
		return canonicalizeFloat(value, 32)

	case XSDInteger, XSDLong:
		return canonicalizeInt(value, 64)
	case XSDInt:
		return canonicalizeInt(value, 32)
	case XSDShort:
		return canonicalizeInt(value, 16)
	case XSDByte:
		return canonicalizeInt(value, 8)

	case XSDUnsignedLong:
		return canonicalizeUint(value, 64)
	case XSDUnsignedInt:
		return canonicalizeUint(value, 32)
	case XSDUnsignedShort:
		return canonicalizeUint(value, 16)
	case XSDUnsignedByte:
		return canonicalizeUint(value, 8)

	case XSDNonPositiveInteger:
		return canonicalizeRangedInteger(value, func(sign int) bool { return sign <= 0 })
	case XSDNegativeInteger:
		return canonicalizeRangedInteger(value, func(sign int) bool { return sign < 0 })
	case XSDNonNegativeInteger:
		return canonicalizeRangedInteger(value, func(sign int) bool { return sign >= 0 })
	case XSDPositiveInteger:
		return canonicalizeRangedInteger(value, func(sign int) bool { return sign > 0 })
	}

	return value, false
}

// isWellFormedXML reports whether the value parses as well-formed XML.
func isWellFormedXML(value string) bool {
	dec := xml.NewDecoder(strings.NewReader(value))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return true
		}
		if err != nil {
			return false
		}
	}
}

// canonicalizeDateTime tries the accepted layouts in order and rewrites
// the value to the canonical layout with the offset stripped.
func canonicalizeDateTime(dt Datatype, value string) (string, bool) {
	format, ok := dateTimeFormats[dt]
	if !ok {
		return value, false
	}
	for _, layout := range format.layouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return t.UTC().Format(format.canonical), true
	}
	return value, false
}

// isValidDuration checks the ISO-8601 duration grammar.
// The designator-only forms "P" and "P...T" carry no components and are
// rejected separately since the pattern cannot express that.
func isValidDuration(value string) bool {
	if !durationPattern.MatchString(value) {
		return false
	}
	if !strings.ContainsAny(value, "0123456789") {
		return false
	}
	return !strings.HasSuffix(value, "T")
}

// canonicalizeDecimal rewrites a decimal to its reduced form with
// trailing zeros and redundant signs removed.
func canonicalizeDecimal(value string) (string, bool) {
	if !decimalPattern.MatchString(value) {
		return value, false
	}
	d, _, err := apd.NewFromString(value)
	if err != nil {
		return value, false
	}
	var reduced apd.Decimal
	reduced.Reduce(d)
	return reduced.Text('f'), true
}

// canonicalizeFloat parses a floating-point value and rewrites it to
// the shortest round-tripping representation.
func canonicalizeFloat(value string, bits int) (string, bool) {
	f, err := strconv.ParseFloat(value, bits)
	if err != nil {
		return value, false
	}
	switch {
	case math.IsInf(f, 1):
		return "INF", true
	case math.IsInf(f, -1):
		return "-INF", true
	case math.IsNaN(f):
		return "NaN", true
	}
	return strconv.FormatFloat(f, 'G', -1, bits), true
}

func canonicalizeInt(value string, bits int) (string, bool) {
	i, err := strconv.ParseInt(value, 10, bits)
	if err != nil {
		return value, false
	}
	return strconv.FormatInt(i, 10), true
}

func canonicalizeUint(value string, bits int) (string, bool) {
	u, err := strconv.ParseUint(value, 10, bits)
	if err != nil {
		return value, false
	}
	return strconv.FormatUint(u, 10), true
}

// canonicalizeRangedInteger parses an arbitrary-precision integer and
// enforces the datatype's sign range. A numerically well-formed value
// outside the range is invalid.
func canonicalizeRangedInteger(value string, inRange func(sign int) bool) (string, bool) {
	if !integerPattern.MatchString(value) {
		return value, false
	}
	d, _, err := apd.NewFromString(value)
	if err != nil {
		return value, false
	}
	if !inRange(d.Sign()) {
		return value, false
	}
	return d.Text('f'), true
}
