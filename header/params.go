package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Param is a single generic ";name[=value]" header parameter.
// Both spans borrow the caller's buffer; Value is nil for a flag parameter.
type Param struct {
	Name  []byte
	Value []byte
}

// Params is an ordered generic-parameter list attached to a header value.
// Parameter names are compared case-insensitively.
type Params []Param

// Get returns the value of the first parameter with the given name.
func (ps Params) Get(name string) (val []byte, ok bool) {
	for i := range ps {
		if util.EqFoldASCII(ps[i].Name, name) {
			return ps[i].Value, true
		}
	}
	return nil, false
}

// Has reports whether a parameter with the given name is present.
func (ps Params) Has(name string) bool {
	_, ok := ps.Get(name)
	return ok
}

func isParamValueChar(c byte) bool {
	return grammar.IsTokenChar(c) || c == '[' || c == ']' || c == ':'
}

// parseParams parses a run of ";name[=value]" segments starting at a
// semicolon. It stops before the first byte that cannot begin another
// parameter, leaving any whitespace before that byte unconsumed so the
// caller's separator accounting stays exact.
func parseParams(s []byte) (ps Params, rest []byte, err error) {
	rest = s
	for {
		inp, err := grammar.SWSByte(rest, ';')
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}

		name, inp, err := grammar.TakeWhile1(inp, grammar.IsTokenChar, grammar.ErrExpectedToken)
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		p := Param{Name: name}

		if eq := grammar.SkipLWS(inp); len(eq) > 0 && eq[0] == '=' {
			inp = grammar.SkipLWS(eq[1:])
			if len(inp) > 0 && inp[0] == '"' {
				var content []byte
				content, inp, err = grammar.TakeQuoted(inp)
				if err != nil {
					return nil, nil, errtrace.Wrap(err)
				}
				p.Value = content
			} else {
				p.Value, inp, err = grammar.TakeWhile1(inp, isParamValueChar, grammar.ErrExpectedToken)
				if err != nil {
					return nil, nil, errtrace.Wrap(err)
				}
			}
		}
		ps = append(ps, p)
		rest = inp

		// peek for another parameter without consuming trailing whitespace
		if next := grammar.SkipLWS(rest); len(next) > 0 && next[0] == ';' {
			continue
		}
		return ps, rest, nil
	}
}
