package httpmsg

import "io"

// Body describes how a message payload is stored. Any value may serve as
// a body; implementing SizedBody is what lets the framing algorithms know
// the payload size ahead of time.
type Body any

// SizedBody is implemented by bodies whose serialized size in octets is
// known before serialization. Bodies without it (streaming bodies) are
// framed with chunked transfer-encoding by Prepare.
type SizedBody interface {
	Size() uint64
}

// EmptyBody is a body with no payload.
type EmptyBody struct{}

func (EmptyBody) Size() uint64 {
	return 0
}

// StringBody stores the payload as a string.
type StringBody string

func (b StringBody) Size() uint64 {
	return uint64(len(b))
}

// BytesBody stores the payload as a byte slice.
type BytesBody []byte

func (b BytesBody) Size() uint64 {
	return uint64(len(b))
}

// ReaderBody streams the payload from an io.Reader. Its size is unknown
// ahead of time.
type ReaderBody struct {
	R io.Reader
}
