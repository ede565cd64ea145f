package header

import (
	"net/textproto"

	"github.com/ghettovoice/sipmsg/internal/constraints"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// RFCHeader classifies a header name as one of the RFC 3261 standard
// headers. The zero value RFCUnknown marks an unrecognized extension header.
type RFCHeader uint8

const (
	RFCUnknown RFCHeader = iota
	RFCAccept
	RFCAcceptEncoding
	RFCAcceptLanguage
	RFCAlertInfo
	RFCAllow
	RFCAuthenticationInfo
	RFCAuthorization
	RFCCallID
	RFCCallInfo
	RFCContact
	RFCContentDisposition
	RFCContentEncoding
	RFCContentLanguage
	RFCContentLength
	RFCContentType
	RFCCSeq
	RFCDate
	RFCErrorInfo
	RFCExpires
	RFCFrom
	RFCInReplyTo
	RFCMaxForwards
	RFCMIMEVersion
	RFCMinExpires
	RFCOrganization
	RFCPriority
	RFCProxyAuthenticate
	RFCProxyAuthorization
	RFCProxyRequire
	RFCRecordRoute
	RFCReplyTo
	RFCRequire
	RFCRetryAfter
	RFCRoute
	RFCServer
	RFCSubject
	RFCSupported
	RFCTimestamp
	RFCTo
	RFCUnsupported
	RFCUserAgent
	RFCVia
	RFCWarning
	RFCWWWAuthenticate
)

var rfcHeaderNames = [...]string{
	RFCUnknown:            "",
	RFCAccept:             "Accept",
	RFCAcceptEncoding:     "Accept-Encoding",
	RFCAcceptLanguage:     "Accept-Language",
	RFCAlertInfo:          "Alert-Info",
	RFCAllow:              "Allow",
	RFCAuthenticationInfo: "Authentication-Info",
	RFCAuthorization:      "Authorization",
	RFCCallID:             "Call-ID",
	RFCCallInfo:           "Call-Info",
	RFCContact:            "Contact",
	RFCContentDisposition: "Content-Disposition",
	RFCContentEncoding:    "Content-Encoding",
	RFCContentLanguage:    "Content-Language",
	RFCContentLength:      "Content-Length",
	RFCContentType:        "Content-Type",
	RFCCSeq:               "CSeq",
	RFCDate:               "Date",
	RFCErrorInfo:          "Error-Info",
	RFCExpires:            "Expires",
	RFCFrom:               "From",
	RFCInReplyTo:          "In-Reply-To",
	RFCMaxForwards:        "Max-Forwards",
	RFCMIMEVersion:        "MIME-Version",
	RFCMinExpires:         "Min-Expires",
	RFCOrganization:       "Organization",
	RFCPriority:           "Priority",
	RFCProxyAuthenticate:  "Proxy-Authenticate",
	RFCProxyAuthorization: "Proxy-Authorization",
	RFCProxyRequire:       "Proxy-Require",
	RFCRecordRoute:        "Record-Route",
	RFCReplyTo:            "Reply-To",
	RFCRequire:            "Require",
	RFCRetryAfter:         "Retry-After",
	RFCRoute:              "Route",
	RFCServer:             "Server",
	RFCSubject:            "Subject",
	RFCSupported:          "Supported",
	RFCTimestamp:          "Timestamp",
	RFCTo:                 "To",
	RFCUnsupported:        "Unsupported",
	RFCUserAgent:          "User-Agent",
	RFCVia:                "Via",
	RFCWarning:            "Warning",
	RFCWWWAuthenticate:    "WWW-Authenticate",
}

// String returns the canonical header name, or "" for RFCUnknown.
func (h RFCHeader) String() string {
	if int(h) < len(rfcHeaderNames) {
		return rfcHeaderNames[h]
	}
	return ""
}

// valueParser is the uniform value-grammar signature: consume a prefix of s
// and return the parsed value plus the remaining input.
type valueParser func(s []byte) (Value, []byte, error)

type registryEntry struct {
	kind  RFCHeader
	parse valueParser
}

// registry is the closed dispatch table from a lowercase header name
// (full or compact form) to its RFC classification and value grammar.
var registry = map[string]registryEntry{
	"accept":              {RFCAccept, parseTokenValue},
	"accept-encoding":     {RFCAcceptEncoding, parseTokenValue},
	"accept-language":     {RFCAcceptLanguage, parseTokenValue},
	"alert-info":          {RFCAlertInfo, parseCallInfoValue},
	"allow":               {RFCAllow, parseTokenValue},
	"authentication-info": {RFCAuthenticationInfo, parseAuthenticationInfoValue},
	"authorization":       {RFCAuthorization, parseDigestCredentialsValue},
	"call-id":             {RFCCallID, parseCallIDValue},
	"i":                   {RFCCallID, parseCallIDValue},
	"call-info":           {RFCCallInfo, parseCallInfoValue},
	"contact":             {RFCContact, parseNameAddrValue},
	"m":                   {RFCContact, parseNameAddrValue},
	"content-disposition": {RFCContentDisposition, parseTokenValue},
	"content-encoding":    {RFCContentEncoding, parseTokenValue},
	"e":                   {RFCContentEncoding, parseTokenValue},
	"content-language":    {RFCContentLanguage, parseTokenValue},
	"content-length":      {RFCContentLength, parseDigitValue},
	"l":                   {RFCContentLength, parseDigitValue},
	"content-type":        {RFCContentType, parseTokenValue},
	"c":                   {RFCContentType, parseTokenValue},
	"cseq":                {RFCCSeq, parseCSeqValue},
	"date":                {RFCDate, parseDateValue},
	"error-info":          {RFCErrorInfo, parseCallInfoValue},
	"expires":             {RFCExpires, parseDigitValue},
	"from":                {RFCFrom, parseNameAddrValue},
	"f":                   {RFCFrom, parseNameAddrValue},
	"in-reply-to":         {RFCInReplyTo, parseCallIDValue},
	"max-forwards":        {RFCMaxForwards, parseDigitValue},
	"mime-version":        {RFCMIMEVersion, parseVersionValue},
	"min-expires":         {RFCMinExpires, parseDigitValue},
	"organization":        {RFCOrganization, parseTextValue},
	"priority":            {RFCPriority, parseTokenValue},
	"proxy-authenticate":  {RFCProxyAuthenticate, parseDigestCredentialsValue},
	"proxy-authorization": {RFCProxyAuthorization, parseDigestCredentialsValue},
	"proxy-require":       {RFCProxyRequire, parseTokenValue},
	"record-route":        {RFCRecordRoute, parseNameAddrValue},
	"reply-to":            {RFCReplyTo, parseNameAddrValue},
	"require":             {RFCRequire, parseTokenValue},
	"retry-after":         {RFCRetryAfter, parseRetryAfterValue},
	"route":               {RFCRoute, parseNameAddrValue},
	"server":              {RFCServer, parseUserAgentValue},
	"subject":             {RFCSubject, parseTextValue},
	"s":                   {RFCSubject, parseTextValue},
	"supported":           {RFCSupported, parseTokenValue},
	"k":                   {RFCSupported, parseTokenValue},
	"timestamp":           {RFCTimestamp, parseTimestampValue},
	"to":                  {RFCTo, parseNameAddrValue},
	"t":                   {RFCTo, parseNameAddrValue},
	"unsupported":         {RFCUnsupported, parseTokenValue},
	"user-agent":          {RFCUserAgent, parseUserAgentValue},
	"via":                 {RFCVia, parseViaValue},
	"v":                   {RFCVia, parseViaValue},
	"warning":             {RFCWarning, parseWarningValue},
	"www-authenticate":    {RFCWWWAuthenticate, parseDigestCredentialsValue},
}

// findParser resolves the value grammar for a header name,
// case-insensitively. Unknown names deliberately fall back to the
// permissive extension grammar with no RFC classification; this keeps the
// parser forward-compatible with headers it does not know.
func findParser(name []byte) (RFCHeader, valueParser) {
	if e, ok := registry[util.LCaseBytes(name)]; ok {
		return e.kind, e.parse
	}
	return RFCUnknown, parseExtensionValue
}

var compactNames = map[string]string{
	"c": "Content-Type",
	"e": "Content-Encoding",
	"f": "From",
	"i": "Call-ID",
	"k": "Supported",
	"l": "Content-Length",
	"m": "Contact",
	"s": "Subject",
	"t": "To",
	"v": "Via",
}

// CanonicName converts a header name to its canonical form: the first
// letter and any letter following a hyphen upper-cased, the rest lowered,
// and compact forms expanded ("v" converts to "Via").
func CanonicName[T constraints.Byteseq](name T) string {
	n := util.TrimSP(string(name))
	if full, ok := compactNames[util.LCase(n)]; ok {
		return full
	}

	n = textproto.CanonicalMIMEHeaderKey(n)
	switch n {
	case "Call-Id":
		return "Call-ID"
	case "Cseq":
		return "CSeq"
	case "Mime-Version":
		return "MIME-Version"
	case "Www-Authenticate":
		return "WWW-Authenticate"
	}
	return n
}
