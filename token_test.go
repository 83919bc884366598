package httpmsg

import (
	"testing"

	"github.com/tony-montemuro/httpmsg/internal/assert"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{
			name:     "Single token",
			value:    "chunked",
			expected: []string{"chunked"},
		},
		{
			name:     "Standard token list",
			value:    "foo, bar, baz",
			expected: []string{"foo", "bar", "baz"},
		},
		{
			name:     "Token list with folded LWS",
			value:    "\r\n\tfoo , \r\n \r\n\tbar, \tbaz",
			expected: []string{"foo", "bar", "baz"},
		},
		{
			name:     "LWS within tokens is preserved",
			value:    "fo \r\n\t o,  \tb\t ar",
			expected: []string{"fo \r\n\t o", "b\t ar"},
		},
		{
			name:     "Empty value",
			value:    "",
			expected: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.SliceEqual(t, Tokens(tt.value), tt.expected)
		})
	}
}

func TestRequest_Chunked(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected bool
	}{
		{
			name:     "No Transfer-Encoding field",
			values:   nil,
			expected: false,
		},
		{
			name:     "Plain chunked",
			values:   []string{"chunked"},
			expected: true,
		},
		{
			name:     "Chunked applied last",
			values:   []string{"gzip, chunked"},
			expected: true,
		},
		{
			name:     "Chunked not applied last",
			values:   []string{"chunked, gzip"},
			expected: false,
		},
		{
			name:     "Case-insensitive",
			values:   []string{"Chunked"},
			expected: true,
		},
		{
			name:     "Surrounding whitespace",
			values:   []string{"gzip,  chunked\t"},
			expected: true,
		},
		{
			name:     "Repeated field, chunked ends the last value",
			values:   []string{"gzip", "chunked"},
			expected: true,
		},
		{
			name:     "Repeated field, chunked only in the first value",
			values:   []string{"chunked", "gzip"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Request
			for _, v := range tt.values {
				m.Add("Transfer-Encoding", v)
			}

			assert.Equal(t, m.Chunked(), tt.expected)
		})
	}
}

func TestKeepAlive(t *testing.T) {
	tests := []struct {
		name       string
		version    int
		connection string
		expected   bool
	}{
		{
			name:     "HTTP/1.1 defaults to keep-alive",
			version:  11,
			expected: true,
		},
		{
			name:       "HTTP/1.1 with close",
			version:    11,
			connection: "close",
			expected:   false,
		},
		{
			name:       "HTTP/1.1 with close among other tokens",
			version:    11,
			connection: "upgrade, close",
			expected:   false,
		},
		{
			name:       "HTTP/1.1 with keep-alive stays default",
			version:    11,
			connection: "keep-alive",
			expected:   true,
		},
		{
			name:     "HTTP/1.0 defaults to close",
			version:  10,
			expected: false,
		},
		{
			name:       "HTTP/1.0 with keep-alive",
			version:    10,
			connection: "keep-alive",
			expected:   true,
		},
		{
			name:       "HTTP/1.0 with Keep-Alive in mixed case",
			version:    10,
			connection: "Keep-Alive",
			expected:   true,
		},
		{
			name:       "HTTP/1.0 with close",
			version:    10,
			connection: "close",
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req RequestHeader
			req.Version = tt.version

			var res ResponseHeader
			res.Version = tt.version

			if tt.connection != "" {
				req.Set("Connection", tt.connection)
				res.Set("Connection", tt.connection)
			}

			assert.Equal(t, req.KeepAlive(), tt.expected)
			assert.Equal(t, res.KeepAlive(), tt.expected)
		})
	}
}

func TestUpgrade(t *testing.T) {
	tests := []struct {
		name       string
		version    int
		connection string
		expected   bool
	}{
		{
			name:     "No Connection field",
			version:  11,
			expected: false,
		},
		{
			name:       "Upgrade token",
			version:    11,
			connection: "upgrade",
			expected:   true,
		},
		{
			name:       "Upgrade among other tokens",
			version:    11,
			connection: "keep-alive, Upgrade",
			expected:   true,
		},
		{
			name:       "Independent of version",
			version:    10,
			connection: "upgrade",
			expected:   true,
		},
		{
			name:       "Unrelated tokens",
			version:    11,
			connection: "close",
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h RequestHeader
			h.Version = tt.version

			if tt.connection != "" {
				h.Set("Connection", tt.connection)
			}

			assert.Equal(t, h.Upgrade(), tt.expected)
		})
	}
}
