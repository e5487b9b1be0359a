package shape

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
)

// Enum is implemented by named types with a closed set of members.
// EnumValues lists every member in declaration order; String names a member.
type Enum interface {
	fmt.Stringer
	EnumValues() []Enum
}

var (
	enumType    = reflect.TypeOf((*Enum)(nil)).Elem()
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// Classify returns the structural shape of t.
func Classify(t reflect.Type) Shape {
	switch {
	case t == nil:
		return ShapeUnsupported
	case IsNumericSequence(t):
		return ShapeNumberSet
	case IsTextSequence(t):
		return ShapeStringSet
	case IsSequence(t):
		return ShapeList
	case IsMap(t):
		return ShapeMap
	case IsObject(t):
		return ShapeObject
	case IsScalar(t):
		return ShapeScalar
	default:
		return ShapeUnsupported
	}
}

// IsEnum reports whether t implements Enum.
func IsEnum(t reflect.Type) bool {
	return t != nil && t.Implements(enumType)
}

// IsDecimal reports whether t is the arbitrary-precision decimal type.
func IsDecimal(t reflect.Type) bool {
	return t == decimalType
}

// IsNumeric reports whether t is a number-set element type.
// 8-bit integers are excluded and encode as lists.
func IsNumeric(t reflect.Type) bool {
	if IsDecimal(t) {
		return true
	}
	if IsEnum(t) {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsNumericSequence reports whether t is a slice or array of numeric elements.
func IsNumericSequence(t reflect.Type) bool {
	return IsSequence(t) && IsNumeric(t.Elem())
}

// IsTextSequence reports whether t is a slice or array of text elements.
func IsTextSequence(t reflect.Type) bool {
	if !IsSequence(t) {
		return false
	}
	elem := t.Elem()
	return elem.Kind() == reflect.String && !IsEnum(elem)
}

// IsSequence reports whether t is a slice or array.
func IsSequence(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// IsMap reports whether t is a map with a key convertible to text.
func IsMap(t reflect.Type) bool {
	return t.Kind() == reflect.Map && IsKey(t.Key())
}

// IsKey reports whether values of t can be rendered to and parsed from map key text.
func IsKey(t reflect.Type) bool {
	if IsEnum(t) {
		return true
	}
	switch t.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// IsObject reports whether t is a composite type with named members.
func IsObject(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && !IsDecimal(t)
}

// IsScalar reports whether t has a bool, string, integer, or float kind.
func IsScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
