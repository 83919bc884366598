package httpmsg

import "strings"

// ConnectionOption states a connection intent for Prepare.
type ConnectionOption int

const (
	// ConnectionClose requests that the connection not persist after
	// this message.
	ConnectionClose ConnectionOption = iota + 1
	// ConnectionKeepAlive requests that the connection persist after
	// this message.
	ConnectionKeepAlive
	// ConnectionUpgrade requests a protocol upgrade. Requires HTTP/1.1.
	ConnectionUpgrade
)

// Prepare adjusts the Connection, Content-Length and Transfer-Encoding
// fields so the message is legal to put on the wire, based on the body
// and the requested connection intents. A message can be prepared once;
// a second call fails with ErrAlreadyPrepared. On any error the message
// is left unmodified.
func (m *Request) Prepare(opts ...ConnectionOption) error {
	n, sized := m.Size()
	return prepare(m.Version, &m.Fields, n, sized, &m.prepared, opts)
}

func (m *Response) Prepare(opts ...ConnectionOption) error {
	n, sized := m.Size()
	return prepare(m.Version, &m.Fields, n, sized, &m.prepared, opts)
}

func prepare(version int, f *Fields, size uint64, sized bool, prepared *bool, opts []ConnectionOption) error {
	if *prepared {
		return ErrAlreadyPrepared
	}

	var requestClose, requestKeepAlive, requestUpgrade bool
	for _, opt := range opts {
		switch opt {
		case ConnectionClose:
			requestClose = true
		case ConnectionKeepAlive:
			requestKeepAlive = true
		case ConnectionUpgrade:
			requestUpgrade = true
		default:
			return InvalidArgumentError{message: "unrecognized connection option"}
		}
	}

	// All validation happens before any field is written, so a failed
	// call leaves the message byte-identical.
	if requestClose && requestKeepAlive {
		return InvalidArgumentError{message: "close and keep-alive are contradictory"}
	}
	if requestUpgrade && version < 11 {
		return InvalidArgumentError{message: "upgrade requires HTTP/1.1"}
	}
	if !sized && version < 11 {
		return InvalidArgumentError{message: "chunked framing requires HTTP/1.1"}
	}

	if sized {
		setContentLength(f, size)
		f.Del(fieldTransferEncoding)
	} else {
		f.Del(fieldContentLength)
		f.Set(fieldTransferEncoding, tokenChunked)
	}

	// Write Connection only when the intent differs from the protocol
	// default for this version.
	var tokens []string
	if requestClose && version >= 11 {
		tokens = append(tokens, tokenClose)
	}
	if requestKeepAlive && version < 11 {
		tokens = append(tokens, tokenKeepAlive)
	}
	if requestUpgrade {
		tokens = append(tokens, tokenUpgrade)
	}

	if len(tokens) > 0 {
		f.Set(fieldConnection, strings.Join(tokens, ", "))
	}

	*prepared = true
	return nil
}
