// Package sipmsg provides zero-copy parsing primitives for RFC 3261-style
// SIP messages.
//
// The [github.com/ghettovoice/sipmsg/header] package implements the
// header-value parsing engine: header name recognition, per-header value
// grammars with typed sub-field tags, comma-separated repetition and
// generic parameters, all as borrowed views into the caller's buffer.
// The [github.com/ghettovoice/sipmsg/uri] package parses SIP and SIPS URIs
// into the same kind of borrowed views.
package sipmsg
