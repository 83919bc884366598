package httpmsg

import (
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/tony-montemuro/httpmsg/internal/lws"
)

const (
	fieldConnection       = "Connection"
	fieldContentLength    = "Content-Length"
	fieldTransferEncoding = "Transfer-Encoding"

	tokenChunked   = "chunked"
	tokenClose     = "close"
	tokenKeepAlive = "keep-alive"
	tokenUpgrade   = "upgrade"
)

// Tokens splits a field value into its comma-separated tokens, trimming
// linear whitespace around each one.
func Tokens(s string) []string {
	tokens := []string{}

	for part := range strings.SplitSeq(s, ",") {
		tokens = append(tokens, lws.Trim(part))
	}

	return tokens
}

// containsToken reports whether any value of the named field contains
// token in its comma-separated list, compared case-insensitively.
func containsToken(f *Fields, name, token string) bool {
	return httpguts.HeaderValuesContainsToken(f.Values(name), token)
}

// lastToken returns the final token of the final value of the named
// field. Transfer-Encoding lists codings in application order, so the
// last token is the outermost coding.
func lastToken(f *Fields, name string) string {
	values := f.Values(name)
	if len(values) == 0 {
		return ""
	}

	tokens := Tokens(values[len(values)-1])
	return tokens[len(tokens)-1]
}

func chunked(f *Fields) bool {
	if !f.Has(fieldTransferEncoding) {
		return false
	}
	return strings.EqualFold(lastToken(f, fieldTransferEncoding), tokenChunked)
}

func keepAlive(version int, f *Fields) bool {
	if version >= 11 {
		return !containsToken(f, fieldConnection, tokenClose)
	}
	return containsToken(f, fieldConnection, tokenKeepAlive)
}
