package marshaler

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/wippyai/attrconv/errors"
)

// TagName is the struct tag read for field metadata.
const TagName = "dynamo"

// Hint selects an alternate wire representation for a field.
type Hint uint8

const (
	HintDefault Hint = iota
	// HintOrdinal writes an integer-backed enumeration as its numeric value.
	HintOrdinal
	// HintChar writes a rune as a one-character string.
	HintChar
)

var hintNames = [...]string{
	HintDefault: "default",
	HintOrdinal: "ordinal",
	HintChar:    "char",
}

func (h Hint) String() string {
	if int(h) < len(hintNames) {
		return hintNames[h]
	}
	return "unknown"
}

// ParseHint returns the hint named s, ignoring case.
func ParseHint(s string) (Hint, bool) {
	for i, name := range hintNames {
		if strings.EqualFold(s, name) {
			return Hint(i), true
		}
	}
	return HintDefault, false
}

// Field is the normalized description of one value being converted.
//
// For struct members every attribute is populated from the compiled
// descriptor. For sequence elements, map values and top-level values only
// Type and Value are set. Value is never set during decoding.
type Field struct {
	Value    reflect.Value
	Type     reflect.Type
	Name     string
	Alias    string
	Index    []int
	Hint     Hint
	Optional bool
	Ignore   bool
}

// Key returns the wire key of the field: its alias when set, else its name.
func (f Field) Key() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// FieldSpec overrides the metadata of the struct field called Name.
// Zero-valued attributes keep what the struct tag declared.
type FieldSpec struct {
	Name   string
	Alias  string
	Hint   Hint
	Ignore bool
}

// FieldDescriber is implemented by struct types that describe their fields
// in code rather than with struct tags.
type FieldDescriber interface {
	DescribeFields() []FieldSpec
}

var fieldDescriberType = reflect.TypeOf((*FieldDescriber)(nil)).Elem()

// parseTag reads `dynamo:"alias,opt,..."` into f.
func parseTag(f *Field, tag string, path []string) error {
	if tag == "-" {
		f.Ignore = true
		return nil
	}
	parts := strings.Split(tag, ",")
	f.Alias = parts[0]
	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)
		switch {
		case opt == "":
		case strings.EqualFold(opt, "ignore"):
			f.Ignore = true
		default:
			h, ok := ParseHint(opt)
			if !ok {
				return errors.InvalidInput(errors.PhaseCompile, path, "unknown "+TagName+" tag option "+strconv.Quote(opt))
			}
			f.Hint = h
		}
	}
	return nil
}
