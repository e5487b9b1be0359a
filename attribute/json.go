package attribute

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/wippyai/attrconv/errors"
)

var json = jsoniter.Config{
	EscapeHTML:            true,
	SortMapKeys:           true,
	DisallowUnknownFields: true,
}.Froze()

// MarshalJSON encodes v as a DynamoDB JSON attribute value.
func (v Value) MarshalJSON() ([]byte, error) {
	e, err := toEnvelope(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(e)
}

// UnmarshalJSON decodes a DynamoDB JSON attribute value.
func (v *Value) UnmarshalJSON(data []byte) error {
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return errors.Wrap(errors.PhaseCodec, errors.KindInvalidData, err, "decode JSON attribute value")
	}
	decoded, err := e.value()
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalItemJSON encodes an item as a DynamoDB JSON object.
func MarshalItemJSON(item Item) ([]byte, error) {
	if item == nil {
		item = Item{}
	}
	return json.Marshal(item)
}

// MarshalItemJSONIndent is MarshalItemJSON with indentation.
func MarshalItemJSONIndent(item Item, indent string) ([]byte, error) {
	if item == nil {
		item = Item{}
	}
	return json.MarshalIndent(item, "", indent)
}

// UnmarshalItemJSON decodes a DynamoDB JSON object into an item.
func UnmarshalItemJSON(data []byte) (Item, error) {
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, errors.Wrap(errors.PhaseCodec, errors.KindInvalidData, err, "decode JSON item")
	}
	if item == nil {
		return nil, errors.InvalidData(errors.PhaseCodec, nil, "JSON item is null")
	}
	return item, nil
}
