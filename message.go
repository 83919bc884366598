package httpmsg

import "strconv"

// Request is a complete request message: header plus body.
type Request struct {
	RequestHeader
	Body Body

	prepared bool
}

// Response is a complete response message: header plus body.
type Response struct {
	ResponseHeader
	Body Body

	prepared bool
}

// Size reports the serialized size of the body in octets when it can be
// known ahead of time. A nil body counts as zero octets; a body without
// the SizedBody capability reports ok == false, the expected outcome for
// streaming bodies. The Content-Length field is never inspected.
func (m *Request) Size() (n uint64, ok bool) {
	return bodySize(m.Body)
}

func (m *Response) Size() (n uint64, ok bool) {
	return bodySize(m.Body)
}

func bodySize(b Body) (uint64, bool) {
	switch b := b.(type) {
	case nil:
		return 0, true
	case SizedBody:
		return b.Size(), true
	}
	return 0, false
}

// SetContentLength unconditionally overwrites the Content-Length field
// with the decimal text of n. No other field is touched; in particular a
// conflicting chunked Transfer-Encoding is left in place for Prepare to
// resolve.
func (m *Request) SetContentLength(n uint64) {
	setContentLength(&m.Fields, n)
}

func (m *Response) SetContentLength(n uint64) {
	setContentLength(&m.Fields, n)
}

func setContentLength(f *Fields, n uint64) {
	f.Set(fieldContentLength, strconv.FormatUint(n, 10))
}

// Chunked reports whether Transfer-Encoding is present with "chunked" as
// its last token.
func (m *Request) Chunked() bool {
	return chunked(&m.Fields)
}

func (m *Response) Chunked() bool {
	return chunked(&m.Fields)
}

// Swap exchanges the contents of two messages without copying field
// lists.
func (m *Request) Swap(o *Request) {
	m.RequestHeader.Swap(&o.RequestHeader)
	m.Body, o.Body = o.Body, m.Body
	m.prepared, o.prepared = o.prepared, m.prepared
}

func (m *Response) Swap(o *Response) {
	m.ResponseHeader.Swap(&o.ResponseHeader)
	m.Body, o.Body = o.Body, m.Body
	m.prepared, o.prepared = o.prepared, m.prepared
}
