package httpmsg

import "fmt"

const crlf = "\r\n"

// Marshal serializes the request into wire format: request line, fields
// in insertion order, then the body bytes when the body stores them.
// Streaming bodies marshal header-only; framing their payload is the
// outer serializer's job.
func (m *Request) Marshal() ([]byte, error) {
	method := m.MethodString()
	if method == "" {
		return nil, InvalidArgumentError{message: "request method not set"}
	}

	var marshaled []byte
	marshaled = fmt.Appendf(marshaled, "%s %s HTTP/%d.%d%s", method, m.target, m.Version/10, m.Version%10, crlf)

	marshaled, err := m.Fields.appendWire(marshaled)
	if err != nil {
		return nil, err
	}

	marshaled = append(marshaled, crlf...)
	return append(marshaled, bodyBytes(m.Body)...), nil
}

// Marshal serializes the response into wire format. The status line uses
// the custom reason-phrase if one is set, otherwise the standard text for
// the result code.
func (m *Response) Marshal() ([]byte, error) {
	var marshaled []byte
	marshaled = fmt.Appendf(marshaled, "HTTP/%d.%d %d %s%s", m.Version/10, m.Version%10, m.result, m.Reason(), crlf)

	marshaled, err := m.Fields.appendWire(marshaled)
	if err != nil {
		return nil, err
	}

	marshaled = append(marshaled, crlf...)
	return append(marshaled, bodyBytes(m.Body)...), nil
}

func bodyBytes(b Body) []byte {
	switch b := b.(type) {
	case StringBody:
		return []byte(b)
	case BytesBody:
		return b
	}
	return nil
}
