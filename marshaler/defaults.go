package marshaler

import (
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wippyai/attrconv/attribute"
	"github.com/wippyai/attrconv/errors"
	"github.com/wippyai/attrconv/marshaler/internal/numtext"
)

// DefaultTimeLayout writes UTC timestamps with millisecond precision.
const DefaultTimeLayout = "2006-01-02T15:04:05.000Z"

func primaryConversions() []Conversion {
	scalars := []reflect.Type{
		reflect.TypeFor[string](),
		reflect.TypeFor[bool](),
		reflect.TypeFor[int](),
		reflect.TypeFor[int8](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[int32](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[uint8](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[uint64](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
	}
	conversions := make([]Conversion, 0, len(scalars)+1)
	for _, t := range scalars {
		conversions = append(conversions, Conversion{Type: t, Encode: encodeScalar, Decode: decodeScalar})
	}
	return append(conversions, Conversion{
		Type:   reflect.TypeFor[decimal.Decimal](),
		Encode: encodeDecimal,
		Decode: decodeDecimal,
	})
}

func customConversions(layout string) []Conversion {
	return []Conversion{
		{
			Type: reflect.TypeFor[time.Time](),
			Encode: func(f Field) (attribute.Value, error) {
				t := f.Value.Interface().(time.Time)
				return attribute.String(t.UTC().Format(layout)), nil
			},
			Decode: func(v attribute.Value, f Field) (any, error) {
				s, ok := v.S()
				if !ok {
					return nil, mismatch(f.Type, v)
				}
				t, err := time.Parse(layout, s)
				if err != nil {
					var rfcErr error
					if t, rfcErr = time.Parse(time.RFC3339, s); rfcErr != nil {
						return nil, err
					}
				}
				return t.UTC(), nil
			},
		},
		{
			Type: reflect.TypeFor[uuid.UUID](),
			Encode: func(f Field) (attribute.Value, error) {
				return attribute.String(f.Value.Interface().(uuid.UUID).String()), nil
			},
			Decode: func(v attribute.Value, f Field) (any, error) {
				s, ok := v.S()
				if !ok {
					return nil, mismatch(f.Type, v)
				}
				return uuid.Parse(s)
			},
		},
	}
}

// encodeScalar writes booleans, strings and numbers by kind, so named
// scalar types share it with the built-ins.
func encodeScalar(f Field) (attribute.Value, error) {
	v := f.Value
	switch k := v.Kind(); {
	case k == reflect.Bool:
		return attribute.Bool(v.Bool()), nil
	case k == reflect.String:
		return attribute.String(v.String()), nil
	case k == reflect.Int32 && f.Hint == HintChar:
		return attribute.String(string(rune(v.Int()))), nil
	case numtext.IsNumber(k):
		text, err := numtext.Format(v)
		if err != nil {
			return attribute.Value{}, err
		}
		return attribute.Number(text), nil
	default:
		return attribute.Value{}, errors.UnsupportedType(errors.PhaseEncode, nil, v.Type().String())
	}
}

func decodeScalar(v attribute.Value, f Field) (any, error) {
	t := f.Type
	switch k := t.Kind(); {
	case k == reflect.Bool:
		b, ok := v.BOOL()
		if !ok {
			return nil, mismatch(t, v)
		}
		return reflect.ValueOf(b).Convert(t).Interface(), nil
	case k == reflect.String:
		s, ok := v.S()
		if !ok {
			return nil, mismatch(t, v)
		}
		return reflect.ValueOf(s).Convert(t).Interface(), nil
	case k == reflect.Int32 && f.Hint == HintChar:
		s, ok := v.S()
		if !ok {
			return nil, mismatch(t, v)
		}
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
			return nil, errors.InvalidData(errors.PhaseDecode, nil, "expected exactly one character, got "+strconv.Quote(s))
		}
		return reflect.ValueOf(r).Convert(t).Interface(), nil
	case numtext.IsNumber(k):
		text, ok := v.N()
		if !ok {
			return nil, mismatch(t, v)
		}
		out, err := numtext.Parse(text, t)
		if err != nil {
			return nil, err
		}
		return out.Interface(), nil
	default:
		return nil, errors.UnsupportedType(errors.PhaseDecode, nil, t.String())
	}
}

func encodeDecimal(f Field) (attribute.Value, error) {
	return attribute.Number(f.Value.Interface().(decimal.Decimal).String()), nil
}

func decodeDecimal(v attribute.Value, f Field) (any, error) {
	text, ok := v.N()
	if !ok {
		return nil, mismatch(f.Type, v)
	}
	return decimal.NewFromString(text)
}

// mismatch reports a wire variant that cannot hold a value of t.
func mismatch(t reflect.Type, v attribute.Value) error {
	return errors.TypeMismatch(errors.PhaseDecode, nil, t.String(), v.Kind().String())
}
