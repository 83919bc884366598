package httpmsg

// Status is a known response status code. The zero value is StatusUnknown.
type Status int

const (
	StatusUnknown Status = 0

	StatusContinue           Status = 100
	StatusSwitchingProtocols Status = 101

	StatusOK             Status = 200
	StatusCreated        Status = 201
	StatusAccepted       Status = 202
	StatusNoContent      Status = 204
	StatusPartialContent Status = 206

	StatusMultipleChoices   Status = 300
	StatusMovedPermanently  Status = 301
	StatusFound             Status = 302
	StatusSeeOther          Status = 303
	StatusNotModified       Status = 304
	StatusTemporaryRedirect Status = 307
	StatusPermanentRedirect Status = 308

	StatusBadRequest           Status = 400
	StatusUnauthorized         Status = 401
	StatusForbidden            Status = 403
	StatusNotFound             Status = 404
	StatusMethodNotAllowed     Status = 405
	StatusRequestTimeout       Status = 408
	StatusConflict             Status = 409
	StatusGone                 Status = 410
	StatusLengthRequired       Status = 411
	StatusPayloadTooLarge      Status = 413
	StatusURITooLong           Status = 414
	StatusUnsupportedMediaType Status = 415
	StatusExpectationFailed    Status = 417
	StatusUpgradeRequired      Status = 426
	StatusTooManyRequests      Status = 429

	StatusInternalServerError Status = 500
	StatusNotImplemented      Status = 501
	StatusBadGateway          Status = 502
	StatusServiceUnavailable  Status = 503
	StatusGatewayTimeout      Status = 504
	StatusVersionNotSupported Status = 505
	StatusNetworkAuthRequired Status = 511
)

// IntToStatus maps a raw status code to the known-status table, returning
// StatusUnknown for codes outside it.
func IntToStatus(code int) Status {
	s := Status(code)
	if s.Reason() == "" {
		return StatusUnknown
	}
	return s
}

// Reason returns the standard reason-phrase for s, or "" if s is not a
// known status.
func (s Status) Reason() string {
	switch s {
	case StatusContinue:
		return "Continue"
	case StatusSwitchingProtocols:
		return "Switching Protocols"
	case StatusOK:
		return "OK"
	case StatusCreated:
		return "Created"
	case StatusAccepted:
		return "Accepted"
	case StatusNoContent:
		return "No Content"
	case StatusPartialContent:
		return "Partial Content"
	case StatusMultipleChoices:
		return "Multiple Choices"
	case StatusMovedPermanently:
		return "Moved Permanently"
	case StatusFound:
		return "Found"
	case StatusSeeOther:
		return "See Other"
	case StatusNotModified:
		return "Not Modified"
	case StatusTemporaryRedirect:
		return "Temporary Redirect"
	case StatusPermanentRedirect:
		return "Permanent Redirect"
	case StatusBadRequest:
		return "Bad Request"
	case StatusUnauthorized:
		return "Unauthorized"
	case StatusForbidden:
		return "Forbidden"
	case StatusNotFound:
		return "Not Found"
	case StatusMethodNotAllowed:
		return "Method Not Allowed"
	case StatusRequestTimeout:
		return "Request Timeout"
	case StatusConflict:
		return "Conflict"
	case StatusGone:
		return "Gone"
	case StatusLengthRequired:
		return "Length Required"
	case StatusPayloadTooLarge:
		return "Payload Too Large"
	case StatusURITooLong:
		return "URI Too Long"
	case StatusUnsupportedMediaType:
		return "Unsupported Media Type"
	case StatusExpectationFailed:
		return "Expectation Failed"
	case StatusUpgradeRequired:
		return "Upgrade Required"
	case StatusTooManyRequests:
		return "Too Many Requests"
	case StatusInternalServerError:
		return "Internal Server Error"
	case StatusNotImplemented:
		return "Not Implemented"
	case StatusBadGateway:
		return "Bad Gateway"
	case StatusServiceUnavailable:
		return "Service Unavailable"
	case StatusGatewayTimeout:
		return "Gateway Timeout"
	case StatusVersionNotSupported:
		return "HTTP Version Not Supported"
	case StatusNetworkAuthRequired:
		return "Network Authentication Required"
	}
	return ""
}
