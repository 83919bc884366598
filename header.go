package httpmsg

// RequestHeader holds the request start-line data and the fields of a
// request. The Version field encodes the HTTP major and minor version as
// major*10+minor, so 11 means HTTP/1.1; the value is not range-checked.
type RequestHeader struct {
	Fields
	Version int

	method       Verb
	methodString string
	target       string
}

// Method returns the stored verb, or VerbUnknown if the method was set
// from text that matched no known verb. MethodString recovers the exact
// text in that case.
func (h *RequestHeader) Method() Verb {
	return h.method
}

// SetMethod records a known verb. Passing VerbUnknown is an error; use
// SetMethodString to store nonstandard method text.
func (h *RequestHeader) SetMethod(v Verb) error {
	if v == VerbUnknown {
		return InvalidArgumentError{message: "method cannot be the unknown verb"}
	}

	h.method = v
	h.methodString = ""
	return nil
}

// MethodString returns the canonical text of the stored verb, or the raw
// stored text when the method did not match a known verb.
func (h *RequestHeader) MethodString() string {
	if h.method != VerbUnknown {
		return h.method.String()
	}
	return h.methodString
}

// SetMethodString stores the verb matching s when there is one (exact,
// case-sensitive), otherwise it keeps s verbatim and Method reports
// VerbUnknown.
func (h *RequestHeader) SetMethodString(s string) {
	h.method = ParseVerb(s)

	if h.method == VerbUnknown {
		h.methodString = s
	} else {
		h.methodString = ""
	}
}

func (h *RequestHeader) Target() string {
	return h.target
}

func (h *RequestHeader) SetTarget(s string) {
	h.target = s
}

// KeepAlive reports whether the header indicates a persistent connection.
// HTTP/1.1 defaults to keep-alive unless Connection contains "close";
// HTTP/1.0 defaults to close unless Connection contains "keep-alive".
func (h *RequestHeader) KeepAlive() bool {
	return keepAlive(h.Version, &h.Fields)
}

// Upgrade reports whether Connection contains the "upgrade" token.
func (h *RequestHeader) Upgrade() bool {
	return containsToken(&h.Fields, fieldConnection, tokenUpgrade)
}

// Swap exchanges the contents of two headers without copying field lists.
func (h *RequestHeader) Swap(o *RequestHeader) {
	h.Fields.Swap(&o.Fields)
	h.Version, o.Version = o.Version, h.Version
	h.method, o.method = o.method, h.method
	h.methodString, o.methodString = o.methodString, h.methodString
	h.target, o.target = o.target, h.target
}

// ResponseHeader holds the status-line data and the fields of a response.
// Version follows the same major*10+minor encoding as RequestHeader.
type ResponseHeader struct {
	Fields
	Version int

	result int
	reason string
}

// Result maps the stored status code to the known-status table, returning
// StatusUnknown for nonstandard codes. ResultInt recovers the raw code.
func (h *ResponseHeader) Result() Status {
	return IntToStatus(h.result)
}

func (h *ResponseHeader) SetResult(s Status) {
	h.result = int(s)
}

// SetResultInt stores the exact code, standard or not.
func (h *ResponseHeader) SetResultInt(code int) {
	h.result = code
}

// ResultInt returns the raw stored status code, even when it is not in
// the known-status table.
func (h *ResponseHeader) ResultInt() int {
	return h.result
}

// Reason returns the custom reason-phrase if one was set, otherwise the
// standard reason text for the current result code.
func (h *ResponseHeader) Reason() string {
	if h.reason != "" {
		return h.reason
	}
	return Status(h.result).Reason()
}

// SetReason stores a custom reason-phrase. An empty string clears the
// override so the standard text for the result code is used again.
func (h *ResponseHeader) SetReason(s string) {
	h.reason = s
}

func (h *ResponseHeader) KeepAlive() bool {
	return keepAlive(h.Version, &h.Fields)
}

func (h *ResponseHeader) Upgrade() bool {
	return containsToken(&h.Fields, fieldConnection, tokenUpgrade)
}

func (h *ResponseHeader) Swap(o *ResponseHeader) {
	h.Fields.Swap(&o.Fields)
	h.Version, o.Version = o.Version, h.Version
	h.result, o.result = o.result, h.result
	h.reason, o.reason = o.reason, h.reason
}
