package marshaler

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/attrconv/attribute"
	"github.com/wippyai/attrconv/errors"
)

// Marshaler converts Go values to attribute values and back.
// It holds no per-call state and is safe for concurrent use.
type Marshaler struct {
	registry *Registry
	compiler *Compiler
	logger   *zap.Logger
	maxDepth int
}

// New returns a Marshaler. Without WithRegistry it owns a fresh registry.
func New(opts ...Option) *Marshaler {
	m := &Marshaler{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = Logger()
	}
	if m.registry == nil {
		m.registry = NewRegistry(WithRegistryLogger(m.logger))
	}
	if m.compiler == nil {
		m.compiler = NewCompiler()
	}
	return m
}

// Registry returns the registry conversions are resolved from.
func (m *Marshaler) Registry() *Registry {
	return m.registry
}

// Serialize converts v to an attribute value. When v is a struct or a
// map, keyPrefix is prepended to each of its top-level keys; nested
// members keep their own keys.
func (m *Marshaler) Serialize(v any, keyPrefix string) (attribute.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return attribute.Value{}, errors.InvalidInput(errors.PhaseEncode, nil, "cannot serialize nil")
	}
	st := getState()
	defer putState(st)
	out, err := m.encode(st, Field{Type: rv.Type(), Value: rv}, nil, keyPrefix)
	if err != nil {
		m.logger.Debug("serialize failed", zap.Stringer("type", rv.Type()), zap.Error(err))
		return attribute.Value{}, err
	}
	return out, nil
}

// SerializeItem converts v to a top-level item. v must serialize to a map.
func (m *Marshaler) SerializeItem(v any, keyPrefix string) (attribute.Item, error) {
	out, err := m.Serialize(v, keyPrefix)
	if err != nil {
		return nil, err
	}
	item, ok := out.M()
	if !ok {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidInput).
			GoType(reflect.TypeOf(v).String()).
			WireType(out.Kind().String()).
			Detail("value does not serialize to a map").
			Build()
	}
	return item, nil
}

// Deserialize decodes v into the value target points to. target is only
// written when decoding succeeds.
func (m *Marshaler) Deserialize(v attribute.Value, target any) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return errors.Construction(nil, "nil", "target must be a non-nil pointer")
	}
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Construction(nil, rv.Type().String(), "target must be a non-nil pointer")
	}

	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return errors.Construction(nil, elem.Type().String(), "type has no zero-argument construction")
	}

	out, err := m.decode(v, Field{Type: elem.Type()}, nil, 0)
	if err != nil {
		m.logger.Debug("deserialize failed", zap.Stringer("type", elem.Type()), zap.Error(err))
		return err
	}
	elem.Set(out)
	return nil
}

// DeserializeItem decodes a top-level item into target.
func (m *Marshaler) DeserializeItem(item attribute.Item, target any) error {
	return m.Deserialize(attribute.Map(item), target)
}

// Decode returns v decoded as a T.
func Decode[T any](m *Marshaler, v attribute.Value) (T, error) {
	var out T
	if err := m.Deserialize(v, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
