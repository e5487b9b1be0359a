package marshaler

import (
	"reflect"
	"strconv"

	"github.com/wippyai/attrconv/attribute"
	"github.com/wippyai/attrconv/errors"
	"github.com/wippyai/attrconv/marshaler/internal/numtext"
	"github.com/wippyai/attrconv/marshaler/internal/shape"
)

// Enum is implemented by enumeration types. EnumValues lists every member
// in declaration order and String names a member. Both methods must have
// value receivers.
type Enum = shape.Enum

func enumRule() Rule {
	return Rule{
		Name:   "enum",
		Match:  shape.IsEnum,
		Encode: encodeEnum,
		Decode: decodeEnum,
	}
}

// encodeEnum writes the member name, or its integer value under
// HintOrdinal.
func encodeEnum(f Field) (attribute.Value, error) {
	if f.Hint != HintOrdinal {
		return attribute.String(f.Value.Interface().(Enum).String()), nil
	}
	if !numtext.IsInteger(f.Value.Kind()) {
		return attribute.Value{}, errors.New(errors.PhaseEncode, errors.KindInvalidEnum).
			GoType(f.Type.String()).
			Detail("ordinal encoding needs an integer-backed enumeration").
			Build()
	}
	text, err := numtext.Format(f.Value)
	if err != nil {
		return attribute.Value{}, err
	}
	return attribute.Number(text), nil
}

// decodeEnum reads a member by name from S. From N it matches the
// member's integer value under HintOrdinal and otherwise indexes the
// declared member list.
func decodeEnum(v attribute.Value, f Field) (any, error) {
	members := reflect.Zero(f.Type).Interface().(Enum).EnumValues()

	if name, ok := v.S(); ok {
		for _, m := range members {
			if m.String() == name {
				return m, nil
			}
		}
		return nil, errors.InvalidEnum(errors.PhaseDecode, nil, name, f.Type.String())
	}

	text, ok := v.N()
	if !ok {
		return nil, mismatch(f.Type, v)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, err
	}

	if f.Hint == HintOrdinal {
		for _, m := range members {
			if iv, ok := numtext.Int64(reflect.ValueOf(m)); ok && iv == n {
				return m, nil
			}
		}
		return nil, errors.InvalidEnum(errors.PhaseDecode, nil, n, f.Type.String())
	}

	if n < 0 || n >= int64(len(members)) {
		return nil, errors.InvalidEnum(errors.PhaseDecode, nil, n, f.Type.String())
	}
	return members[n], nil
}
