package numtext

import (
	"errors"
	"math"
	"reflect"
	"strconv"
)

// ErrNonFinite is returned when formatting NaN or an infinity.
var ErrNonFinite = errors.New("non-finite float has no decimal representation")

func IsInteger(k reflect.Kind) bool {
	return IsSigned(k) || IsUnsigned(k)
}

func IsSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func IsUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func IsFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// IsNumber reports whether k is an integer or float kind.
func IsNumber(k reflect.Kind) bool {
	return IsInteger(k) || IsFloat(k)
}

// Format renders an integer or float value. The value's kind decides the
// representation; named types are formatted by their underlying kind.
func Format(v reflect.Value) (string, error) {
	k := v.Kind()
	switch {
	case IsSigned(k):
		return strconv.FormatInt(v.Int(), 10), nil
	case IsUnsigned(k):
		return strconv.FormatUint(v.Uint(), 10), nil
	case IsFloat(k):
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", ErrNonFinite
		}
		return strconv.FormatFloat(f, 'g', -1, v.Type().Bits()), nil
	default:
		return "", &reflect.ValueError{Method: "numtext.Format", Kind: k}
	}
}

// Parse converts text into a new value of type t, which must have an
// integer or float kind. Out-of-range text fails with strconv.ErrRange.
func Parse(text string, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	k := t.Kind()
	switch {
	case IsSigned(k):
		n, err := strconv.ParseInt(text, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(n)
	case IsUnsigned(k):
		n, err := strconv.ParseUint(text, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetUint(n)
	case IsFloat(k):
		f, err := strconv.ParseFloat(text, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetFloat(f)
	default:
		return reflect.Value{}, &reflect.ValueError{Method: "numtext.Parse", Kind: k}
	}
	return out, nil
}

// Int64 reads the integer value of v as int64, reporting whether v is an
// integer kind that fits.
func Int64(v reflect.Value) (int64, bool) {
	k := v.Kind()
	switch {
	case IsSigned(k):
		return v.Int(), true
	case IsUnsigned(k):
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}
