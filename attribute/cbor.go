package attribute

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/wippyai/attrconv/errors"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborDec, err = cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// MarshalCBOR encodes v as a single-key CBOR map.
func (v Value) MarshalCBOR() ([]byte, error) {
	e, err := toEnvelope(v)
	if err != nil {
		return nil, err
	}
	return cborEnc.Marshal(e)
}

// UnmarshalCBOR decodes a single-key CBOR map.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var e envelope
	if err := cborDec.Unmarshal(data, &e); err != nil {
		return errors.Wrap(errors.PhaseCodec, errors.KindInvalidData, err, "decode CBOR attribute value")
	}
	decoded, err := e.value()
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalItemCBOR encodes an item as a deterministic CBOR map.
func MarshalItemCBOR(item Item) ([]byte, error) {
	if item == nil {
		item = Item{}
	}
	return cborEnc.Marshal(item)
}

// UnmarshalItemCBOR decodes a CBOR map into an item.
func UnmarshalItemCBOR(data []byte) (Item, error) {
	var item Item
	if err := cborDec.Unmarshal(data, &item); err != nil {
		return nil, errors.Wrap(errors.PhaseCodec, errors.KindInvalidData, err, "decode CBOR item")
	}
	if item == nil {
		return nil, errors.InvalidData(errors.PhaseCodec, nil, "CBOR item is null")
	}
	return item, nil
}
