package httpmsg

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Field is a single name/value pair.
type Field struct {
	Name  string
	Value string
}

// Fields is an ordered collection of fields. Name comparison is
// case-insensitive; insertion order is preserved for serialization. The
// zero value is an empty collection ready for use.
type Fields struct {
	list []Field
}

// Set replaces every value of name with the single given value. The field
// keeps the list position of its first occurrence; a new name is appended.
func (f *Fields) Set(name, value string) {
	pos := -1
	kept := f.list[:0]

	for _, fl := range f.list {
		if strings.EqualFold(fl.Name, name) {
			if pos == -1 {
				pos = len(kept)
				kept = append(kept, Field{Name: name, Value: value})
			}
			continue
		}
		kept = append(kept, fl)
	}

	if pos == -1 {
		kept = append(kept, Field{Name: name, Value: value})
	}

	f.list = kept
}

// Add appends a value for name, keeping any existing values.
func (f *Fields) Add(name, value string) {
	f.list = append(f.list, Field{Name: name, Value: value})
}

// Del removes every value of name.
func (f *Fields) Del(name string) {
	kept := f.list[:0]

	for _, fl := range f.list {
		if !strings.EqualFold(fl.Name, name) {
			kept = append(kept, fl)
		}
	}

	f.list = kept
}

func (f *Fields) Has(name string) bool {
	for _, fl := range f.list {
		if strings.EqualFold(fl.Name, name) {
			return true
		}
	}
	return false
}

// Get returns the first value of name, or "" if the field is absent.
func (f *Fields) Get(name string) string {
	for _, fl := range f.list {
		if strings.EqualFold(fl.Name, name) {
			return fl.Value
		}
	}
	return ""
}

// Values returns every value of name in insertion order.
func (f *Fields) Values(name string) []string {
	var values []string

	for _, fl := range f.list {
		if strings.EqualFold(fl.Name, name) {
			values = append(values, fl.Value)
		}
	}

	return values
}

func (f *Fields) Len() int {
	return len(f.list)
}

// All iterates the fields in insertion order.
func (f *Fields) All() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, fl := range f.list {
			if !yield(fl) {
				return
			}
		}
	}
}

func (f *Fields) Clone() Fields {
	list := make([]Field, len(f.list))
	copy(list, f.list)
	return Fields{list: list}
}

// Swap exchanges the contents of two collections without copying entries.
func (f *Fields) Swap(o *Fields) {
	f.list, o.list = o.list, f.list
}

// WriteTo writes the fields in wire format, one "Name: value" line per
// entry in insertion order. Names and values are checked against the
// field grammar before anything is written.
func (f *Fields) WriteTo(w io.Writer) (int64, error) {
	wire, err := f.appendWire(nil)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(wire)
	return int64(n), err
}

func (f *Fields) appendWire(dst []byte) ([]byte, error) {
	for _, fl := range f.list {
		if !httpguts.ValidHeaderFieldName(fl.Name) {
			return nil, InvalidArgumentError{message: fmt.Sprintf("invalid field name %q", fl.Name)}
		}
		if !httpguts.ValidHeaderFieldValue(fl.Value) {
			return nil, InvalidArgumentError{message: fmt.Sprintf("invalid value for field %q", fl.Name)}
		}

		dst = fmt.Appendf(dst, "%s: %s%s", fl.Name, fl.Value, crlf)
	}

	return dst, nil
}
