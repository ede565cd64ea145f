// Package header implements the zero-copy header-value parsing engine for
// RFC 3261-style messages.
//
// [Parse] takes a byte buffer positioned at the start of a header name and
// produces one [Header] record per comma-separated value occurrence. Every
// produced structure (names, values, tags, parameters, raw spans) is a
// borrowed view into the caller's buffer; the buffer must stay alive at
// least as long as any record derived from it. Parsing is pure and
// re-entrant: independent calls over different buffers may run concurrently
// without locking.
package header

//go:generate go tool errtrace -w .

import (
	"bytes"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// Errors returned by [Parse]. Each failure aborts the whole header-group
// parse: there is no partial-result recovery and no skipping of malformed
// occurrences. All errors are distinguishable with errors.Is.
const (
	// ErrHeaderName: no token characters before the colon, or the colon
	// separator is missing or malformed.
	ErrHeaderName errorutil.Error = "bad header name"
	// ErrHeaderValue: the selected value grammar rejected its input.
	ErrHeaderValue errorutil.Error = "bad header value"
	// ErrValueTerminator: the byte after a value is not a comma, semicolon,
	// space or line terminator.
	ErrValueTerminator errorutil.Error = "bad value terminator"
	// ErrEmptyInput: the input ran out after a value without reaching a
	// line terminator.
	ErrEmptyInput errorutil.Error = "header input is empty"
	// ErrParams: the generic-parameter grammar failed on a semicolon
	// segment.
	ErrParams errorutil.Error = "bad header parameters"
)

// Name is a borrowed view of a header name as it appeared in the input.
type Name []byte

// String returns a copy of the name bytes.
func (n Name) String() string { return string(n) }

// Equal compares two names case-insensitively.
func (n Name) Equal(other Name) bool { return bytes.EqualFold(n, other) }

// EqualString compares the name with a string case-insensitively.
func (n Name) EqualString(s string) bool { return bytes.EqualFold(n, []byte(s)) }

// ToCanonic returns the canonical form of the name.
func (n Name) ToCanonic() string { return CanonicName(n) }

// Header is one occurrence of a named header.
// It borrows the buffer passed to [Parse] for its entire lifetime and is
// never mutated after construction.
type Header struct {
	// Name is the header name as written; all occurrences of one group
	// share the same name view.
	Name Name
	// Value is the parsed value occurrence.
	Value Value
	// Params is the generic-parameter list following the value,
	// nil if no semicolon segment was present.
	Params Params
	// RawValueParam is the exact byte span covering the value and its
	// parameters as written, before any normalization.
	RawValueParam []byte
}

// Parse parses one header group: a header name followed by one or more
// comma-separated value occurrences, ending at a CRLF recognized by the
// surrounding message-level parser (the terminator itself is not consumed).
//
// It returns the RFC classification of the name, the ordered records, one
// per occurrence, and the remaining input positioned at the terminator.
// Unknown names never fail: they classify as RFCUnknown and fall back to
// the permissive extension grammar.
func Parse(s []byte) (kind RFCHeader, hdrs []Header, rest []byte, err error) {
	name, rest, err := takeName(s)
	if err != nil {
		return RFCUnknown, nil, nil, errtrace.Wrap(err)
	}
	kind, parse := findParser(name)

	inp := rest
	for {
		val, params, rest, err := takeValue(inp, parse)
		if err != nil {
			return RFCUnknown, nil, nil, errtrace.Wrap(err)
		}
		hdrs = append(hdrs, Header{
			Name:          Name(name),
			Value:         val,
			Params:        params,
			RawValueParam: inp[:len(inp)-len(rest)],
		})
		if len(rest) == 0 {
			return RFCUnknown, nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrEmptyInput))
		}
		if rest[0] == ',' {
			inp, err = grammar.SWSByte(rest, ',')
			if err != nil {
				return RFCUnknown, nil, nil, errtrace.Wrap(err)
			}
			continue
		}
		inp = rest
		break
	}
	return kind, hdrs, inp, nil
}

// takeName consumes the longest run of token characters and the following
// colon, with optional whitespace around the colon.
func takeName(s []byte) (name, rest []byte, err error) {
	name, rest = grammar.TakeWhile(s, grammar.IsTokenChar)
	if len(name) == 0 {
		return nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrHeaderName, "no token characters"))
	}
	// token characters are ASCII, but the check mirrors the value path
	if !utf8.Valid(name) {
		return nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrHeaderName, "%q", name))
	}
	rest, err = grammar.SWSByte(rest, ':')
	if err != nil {
		return nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrHeaderName, err))
	}
	return name, rest, nil
}

// takeValue extracts one value occurrence plus its optional parameters.
// On return the remaining input starts with a comma, a semicolon-consumed
// parameter list already attached, or the CRLF terminator.
func takeValue(s []byte, parse valueParser) (Value, Params, []byte, error) {
	if grammar.IsCRLF(s) {
		// header with empty value
		return emptyValue(), nil, s, nil
	}

	val, rest, err := parse(s)
	if err != nil {
		return Value{}, nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrHeaderValue, err))
	}

	rest = grammar.SkipSP(rest)
	if len(rest) == 0 {
		return Value{}, nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrValueTerminator, "input exhausted"))
	}
	if rest[0] != ',' && rest[0] != ';' && !grammar.IsCRLF(rest) {
		return Value{}, nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrValueTerminator, "%q", rest[0]))
	}

	if rest[0] == ';' {
		params, rest, err := parseParams(rest)
		if err != nil {
			return Value{}, nil, nil, errtrace.Wrap(errorutil.NewWrapperError(ErrParams, err))
		}
		return val, params, rest, nil
	}
	return val, nil, rest, nil
}
