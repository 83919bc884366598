package httpmsg

// Verb is a recognized request method. The zero value is VerbUnknown.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbConnect
	VerbDelete
	VerbGet
	VerbHead
	VerbOptions
	VerbPatch
	VerbPost
	VerbPut
	VerbTrace
)

// ParseVerb matches s against the known method table. The comparison is
// exact and case-sensitive; anything else maps to VerbUnknown.
func ParseVerb(s string) Verb {
	switch s {
	case "CONNECT":
		return VerbConnect
	case "DELETE":
		return VerbDelete
	case "GET":
		return VerbGet
	case "HEAD":
		return VerbHead
	case "OPTIONS":
		return VerbOptions
	case "PATCH":
		return VerbPatch
	case "POST":
		return VerbPost
	case "PUT":
		return VerbPut
	case "TRACE":
		return VerbTrace
	}
	return VerbUnknown
}

func (v Verb) String() string {
	switch v {
	case VerbConnect:
		return "CONNECT"
	case VerbDelete:
		return "DELETE"
	case VerbGet:
		return "GET"
	case VerbHead:
		return "HEAD"
	case VerbOptions:
		return "OPTIONS"
	case VerbPatch:
		return "PATCH"
	case VerbPost:
		return "POST"
	case VerbPut:
		return "PUT"
	case VerbTrace:
		return "TRACE"
	}
	return ""
}
