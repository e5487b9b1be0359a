package attrconv

import (
	"reflect"
	"strconv"
	"sync"

	"github.com/wippyai/attrconv/attribute"
	"github.com/wippyai/attrconv/errors"
	"github.com/wippyai/attrconv/marshaler"
)

// Converter marshals items, lists and maps with its own registry.
type Converter struct {
	m *marshaler.Marshaler
}

var (
	defaultConverter *Converter
	defaultOnce      sync.Once
)

// New returns a converter. Options are passed to the underlying marshaler.
func New(opts ...marshaler.Option) *Converter {
	return &Converter{m: marshaler.New(opts...)}
}

// Default returns the process-wide converter used by the package-level
// functions.
func Default() *Converter {
	defaultOnce.Do(func() {
		defaultConverter = New()
	})
	return defaultConverter
}

// Marshaler returns the underlying marshaler.
func (c *Converter) Marshaler() *marshaler.Marshaler {
	return c.m
}

// AddConversion registers a custom conversion for exactly type t.
func (c *Converter) AddConversion(t reflect.Type, enc marshaler.EncodeFunc, dec marshaler.DecodeFunc) {
	c.m.Registry().AddConversion(t, enc, dec)
}

// AddRule appends a predicate rule.
func (c *Converter) AddRule(rule marshaler.Rule) {
	c.m.Registry().AddRule(rule)
}

// MarshalItem converts a struct or map to an item. A nil v yields a nil
// item.
func (c *Converter) MarshalItem(v any) (attribute.Item, error) {
	return c.MarshalItemPrefixed(v, "")
}

// MarshalItemPrefixed is MarshalItem with prefix prepended to every
// top-level key.
func (c *Converter) MarshalItemPrefixed(v any, prefix string) (attribute.Item, error) {
	if isNil(v) {
		return nil, nil
	}
	return c.m.SerializeItem(v, prefix)
}

// MarshalList converts each element of a slice or array.
func (c *Converter) MarshalList(v any) ([]attribute.Value, error) {
	if isNil(v) {
		return nil, nil
	}
	if k := indirect(reflect.ValueOf(v)).Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidInput).
			GoType(reflect.TypeOf(v).String()).
			Detail("expected a slice or array").
			Build()
	}
	out, err := c.m.Serialize(v, "")
	if err != nil {
		return nil, err
	}
	if l, ok := out.L(); ok {
		return l, nil
	}

	// Number and string sets: element-wise.
	rv := indirect(reflect.ValueOf(v))
	list := make([]attribute.Value, rv.Len())
	for i := range list {
		ev, err := c.m.Serialize(rv.Index(i).Interface(), "")
		if err != nil {
			return nil, err
		}
		list[i] = ev
	}
	return list, nil
}

// MarshalMap converts a map to an item.
func (c *Converter) MarshalMap(v any) (attribute.Item, error) {
	if isNil(v) {
		return nil, nil
	}
	if indirect(reflect.ValueOf(v)).Kind() != reflect.Map {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidInput).
			GoType(reflect.TypeOf(v).String()).
			Detail("expected a map").
			Build()
	}
	return c.m.SerializeItem(v, "")
}

// Unmarshal decodes item into target, which must be a non-nil pointer.
func (c *Converter) Unmarshal(item attribute.Item, target any) error {
	return c.m.DeserializeItem(item, target)
}

// UnmarshalItemWith decodes item as a T using c. A nil item yields nil.
func UnmarshalItemWith[T any](c *Converter, item attribute.Item) (*T, error) {
	if item == nil {
		return nil, nil
	}
	out := new(T)
	if err := c.m.DeserializeItem(item, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalItemsWith decodes each item as a T using c. Nil items are
// skipped.
func UnmarshalItemsWith[T any](c *Converter, items []attribute.Item) ([]*T, error) {
	if items == nil {
		return nil, nil
	}
	out := make([]*T, 0, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		v, err := UnmarshalItemWith[T](c, item)
		if err != nil {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path("[" + strconv.Itoa(i) + "]").
				Cause(err).
				Detail("item %d", i).
				Build()
		}
		out = append(out, v)
	}
	return out, nil
}

// MarshalItem converts v with the default converter.
func MarshalItem(v any) (attribute.Item, error) {
	return Default().MarshalItem(v)
}

// MarshalItemPrefixed converts v with the default converter, prefixing
// top-level keys.
func MarshalItemPrefixed(v any, prefix string) (attribute.Item, error) {
	return Default().MarshalItemPrefixed(v, prefix)
}

// MarshalList converts a slice or array with the default converter.
func MarshalList(v any) ([]attribute.Value, error) {
	return Default().MarshalList(v)
}

// MarshalMap converts a map with the default converter.
func MarshalMap(v any) (attribute.Item, error) {
	return Default().MarshalMap(v)
}

// UnmarshalItem decodes item as a T with the default converter.
func UnmarshalItem[T any](item attribute.Item) (*T, error) {
	return UnmarshalItemWith[T](Default(), item)
}

// UnmarshalItems decodes items as Ts with the default converter.
func UnmarshalItems[T any](items []attribute.Item) ([]*T, error) {
	return UnmarshalItemsWith[T](Default(), items)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
