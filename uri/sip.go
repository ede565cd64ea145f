// Package uri implements zero-copy parsing of SIP and SIPS URIs.
//
// All parsed fields are borrowed sub-slices of the caller's buffer.
// The buffer must outlive every view derived from it.
package uri

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Errors returned by [Parse].
const (
	ErrInvalidScheme errorutil.Error = "invalid URI scheme"
	ErrInvalidHost   errorutil.Error = "invalid URI host"
	ErrInvalidPort   errorutil.Error = "invalid URI port"
)

// SIP is a borrowed view of a SIP or SIPS URI.
// All byte-slice fields alias the buffer passed to [Parse];
// absent components are nil.
type SIP struct {
	// User and Password are the userinfo components before '@'.
	User     []byte
	Password []byte
	// Host is the hostname, IPv4 address, or IPv6 literal without brackets.
	Host []byte
	// Port is the decimal port string after ':', if any.
	Port []byte
	// Params is the raw parameter span after the first ';', without the
	// leading ';' itself. Use [SIP.Param] to look up individual parameters.
	Params []byte
	// Headers is the raw headers span after '?', if any.
	Headers []byte
	// Secured is true for the "sips" scheme.
	Secured bool
}

// Scheme returns the URI scheme.
func (u *SIP) Scheme() string {
	if u != nil && u.Secured {
		return "sips"
	}
	return "sip"
}

// Param looks up a URI parameter by name, case-insensitively.
// The returned value is nil for a flag parameter present without a value.
func (u *SIP) Param(name string) (val []byte, ok bool) {
	if u == nil {
		return nil, false
	}
	s := u.Params
	for len(s) > 0 {
		var kv []byte
		kv, s = splitByte(s, ';')
		k, v := splitByte(kv, '=')
		if util.EqFoldASCII(k, name) {
			return v, true
		}
	}
	return nil, false
}

func splitByte(s []byte, c byte) (head, tail []byte) {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return s[:i], s[i+1:]
		}
	}
	return s, nil
}

// Parse parses the whole of s as a SIP or SIPS URI and returns a borrowed
// view into s. The caller keeps ownership of s and must keep it alive for
// the lifetime of the returned value.
func Parse(s []byte) (*SIP, error) {
	var u SIP
	scheme, rest := grammar.TakeWhile(s, grammar.IsAlphanum)
	switch {
	case util.EqFoldASCII(scheme, "sip"):
	case util.EqFoldASCII(scheme, "sips"):
		u.Secured = true
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, "%q", scheme))
	}
	rest, err := grammar.TakeByte(rest, ':')
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, err))
	}

	if i := indexByte(rest, '@'); i >= 0 {
		u.User, u.Password = splitByte(rest[:i], ':')
		rest = rest[i+1:]
	}

	rest, err = u.parseHostPort(rest)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if len(rest) > 0 && rest[0] == ';' {
		rest = rest[1:]
		if i := indexByte(rest, '?'); i >= 0 {
			u.Params, rest = rest[:i], rest[i:]
		} else {
			u.Params, rest = rest, nil
		}
	}
	if len(rest) > 0 && rest[0] == '?' {
		u.Headers, rest = rest[1:], nil
	}
	if len(rest) > 0 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "trailing bytes %q", rest))
	}
	return &u, nil
}

func (u *SIP) parseHostPort(s []byte) (rest []byte, err error) {
	if len(s) > 0 && s[0] == '[' {
		// IPv6 literal, host view excludes the brackets
		for i := 1; i < len(s); i++ {
			if s[i] == ']' {
				u.Host, rest = s[1:i], s[i+1:]
				return u.parsePort(rest)
			}
		}
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "unclosed IPv6 literal"))
	}

	u.Host, rest = grammar.TakeWhile(s, func(c byte) bool {
		return grammar.IsAlphanum(c) || c == '-' || c == '.'
	})
	if len(u.Host) == 0 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, "empty host"))
	}
	return errtrace.Wrap2(u.parsePort(rest))
}

func (u *SIP) parsePort(s []byte) (rest []byte, err error) {
	if len(s) == 0 || s[0] != ':' {
		return s, nil
	}
	u.Port, rest, err = grammar.TakeWhile1(s[1:], grammar.IsDigit, grammar.ErrExpectedDigit)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, err))
	}
	return rest, nil
}

func indexByte(s []byte, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// String renders the URI back from its views.
func (u *SIP) String() string {
	if u == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(u.Scheme())
	sb.WriteByte(':')
	if len(u.User) > 0 {
		sb.Write(u.User)
		if len(u.Password) > 0 {
			sb.WriteByte(':')
			sb.Write(u.Password)
		}
		sb.WriteByte('@')
	}
	if indexByte(u.Host, ':') >= 0 {
		sb.WriteByte('[')
		sb.Write(u.Host)
		sb.WriteByte(']')
	} else {
		sb.Write(u.Host)
	}
	if len(u.Port) > 0 {
		sb.WriteByte(':')
		sb.Write(u.Port)
	}
	if len(u.Params) > 0 {
		sb.WriteByte(';')
		sb.Write(u.Params)
	}
	if len(u.Headers) > 0 {
		sb.WriteByte('?')
		sb.Write(u.Headers)
	}
	return sb.String()
}
