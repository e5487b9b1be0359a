package attribute

import (
	"github.com/wippyai/attrconv/errors"
)

// envelope is the single-key object shared by the JSON and CBOR encodings.
// Pointers distinguish an absent tag from an empty payload.
type envelope struct {
	S    *string           `json:"S,omitempty" cbor:"S,omitempty"`
	N    *string           `json:"N,omitempty" cbor:"N,omitempty"`
	BOOL *bool             `json:"BOOL,omitempty" cbor:"BOOL,omitempty"`
	SS   *[]string         `json:"SS,omitempty" cbor:"SS,omitempty"`
	NS   *[]string         `json:"NS,omitempty" cbor:"NS,omitempty"`
	L    *[]Value          `json:"L,omitempty" cbor:"L,omitempty"`
	M    *map[string]Value `json:"M,omitempty" cbor:"M,omitempty"`
}

func toEnvelope(v Value) (envelope, error) {
	var e envelope
	switch v.kind {
	case KindString:
		e.S = &v.s
	case KindNumber:
		e.N = &v.s
	case KindBool:
		e.BOOL = &v.b
	case KindStringSet:
		e.SS = &v.set
	case KindNumberSet:
		e.NS = &v.set
	case KindList:
		e.L = &v.l
	case KindMap:
		e.M = &v.m
	default:
		return e, errors.InvalidData(errors.PhaseCodec, nil, "cannot encode a value with no variant")
	}
	return e, nil
}

func (e envelope) value() (Value, error) {
	var (
		v     Value
		count int
	)
	if e.S != nil {
		v, count = String(*e.S), count+1
	}
	if e.N != nil {
		v, count = Number(*e.N), count+1
	}
	if e.BOOL != nil {
		v, count = Bool(*e.BOOL), count+1
	}
	if e.SS != nil {
		v, count = StringSet(*e.SS...), count+1
	}
	if e.NS != nil {
		v, count = NumberSet(*e.NS...), count+1
	}
	if e.L != nil {
		v, count = List(*e.L...), count+1
	}
	if e.M != nil {
		v, count = Map(*e.M), count+1
	}

	switch count {
	case 1:
		return v, nil
	case 0:
		return Value{}, errors.InvalidData(errors.PhaseCodec, nil, "attribute value has no type tag")
	default:
		return Value{}, errors.InvalidData(errors.PhaseCodec, nil, "attribute value has more than one type tag")
	}
}
