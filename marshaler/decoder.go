package marshaler

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/wippyai/attrconv/attribute"
	"github.com/wippyai/attrconv/errors"
	"github.com/wippyai/attrconv/marshaler/internal/numtext"
	"github.com/wippyai/attrconv/marshaler/internal/shape"
)

// decode builds a value of f.Type from v. depth counts the lists, maps and
// objects enclosing v; pointers and leaves do not add to it.
func (m *Marshaler) decode(v attribute.Value, f Field, path []string, depth int) (reflect.Value, error) {
	t := f.Type
	if t.Kind() == reflect.Ptr {
		return m.decodePointer(v, f, path, depth)
	}

	dec, err := m.registry.decoderFor(t, path)
	if err != nil {
		return reflect.Value{}, err
	}
	if dec != nil {
		out, err := dec(v, f)
		if err != nil {
			return reflect.Value{}, leafError(errors.PhaseDecode, path, t, v.Kind().String(), err)
		}
		return convertResult(out, t, v, path)
	}

	sh := shape.Classify(t)
	if sh.IsCollection() {
		depth++
		if depth > m.maxDepth {
			return reflect.Value{}, errors.DepthExceeded(errors.PhaseDecode, path, t.String(), m.maxDepth)
		}
	}

	switch sh {
	case shape.ShapeNumberSet:
		return m.decodeNumberSet(v, t, path)
	case shape.ShapeStringSet:
		ss, ok := v.SS()
		if !ok {
			return reflect.Value{}, mismatchAt(path, t, v)
		}
		out, err := newSequence(t, len(ss), path)
		if err != nil {
			return reflect.Value{}, err
		}
		for i, s := range ss {
			out.Index(i).Set(reflect.ValueOf(s).Convert(t.Elem()))
		}
		return out, nil
	case shape.ShapeList:
		return m.decodeList(v, t, path, depth)
	case shape.ShapeMap:
		return m.decodeMap(v, t, path, depth)
	case shape.ShapeObject:
		return m.decodeStruct(v, t, path, depth)
	case shape.ShapeScalar:
		out, err := decodeScalar(v, f)
		if err != nil {
			return reflect.Value{}, leafError(errors.PhaseDecode, path, t, v.Kind().String(), err)
		}
		return convertResult(out, t, v, path)
	default:
		return reflect.Value{}, errors.UnsupportedType(errors.PhaseDecode, path, t.String())
	}
}

// decodePointer decodes the value behind a chain of pointers and
// allocates each level. A chain longer than the depth limit can only come
// from a self-referential pointer type.
func (m *Marshaler) decodePointer(v attribute.Value, f Field, path []string, depth int) (reflect.Value, error) {
	var chain []reflect.Type
	base := f.Type
	for base.Kind() == reflect.Ptr {
		if len(chain) == m.maxDepth {
			return reflect.Value{}, errors.DepthExceeded(errors.PhaseDecode, path, f.Type.String(), m.maxDepth)
		}
		chain = append(chain, base)
		base = base.Elem()
	}

	inner := f
	inner.Type = base
	out, err := m.decode(v, inner, path, depth)
	if err != nil {
		return reflect.Value{}, err
	}
	for i := len(chain) - 1; i >= 0; i-- {
		p := reflect.New(chain[i].Elem())
		p.Elem().Set(out)
		out = p.Convert(chain[i])
	}
	return out, nil
}

func (m *Marshaler) decodeNumberSet(v attribute.Value, t reflect.Type, path []string) (reflect.Value, error) {
	ns, ok := v.NS()
	if !ok {
		return reflect.Value{}, mismatchAt(path, t, v)
	}
	out, err := newSequence(t, len(ns), path)
	if err != nil {
		return reflect.Value{}, err
	}
	et := t.Elem()
	for i, text := range ns {
		if shape.IsDecimal(et) {
			d, err := decimal.NewFromString(text)
			if err != nil {
				return reflect.Value{}, leafError(errors.PhaseDecode, indexPath(path, i), et, v.Kind().String(), err)
			}
			out.Index(i).Set(reflect.ValueOf(d))
			continue
		}
		n, err := numtext.Parse(text, et)
		if err != nil {
			return reflect.Value{}, leafError(errors.PhaseDecode, indexPath(path, i), et, v.Kind().String(), err)
		}
		out.Index(i).Set(n)
	}
	return out, nil
}

func (m *Marshaler) decodeList(v attribute.Value, t reflect.Type, path []string, depth int) (reflect.Value, error) {
	l, ok := v.L()
	if !ok {
		return reflect.Value{}, mismatchAt(path, t, v)
	}
	out, err := newSequence(t, len(l), path)
	if err != nil {
		return reflect.Value{}, err
	}
	for i, ev := range l {
		elem, err := m.decode(ev, Field{Type: t.Elem()}, indexPath(path, i), depth)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(elem)
	}
	return out, nil
}

func (m *Marshaler) decodeMap(v attribute.Value, t reflect.Type, path []string, depth int) (reflect.Value, error) {
	entries, ok := v.M()
	if !ok {
		return reflect.Value{}, mismatchAt(path, t, v)
	}
	out := reflect.MakeMapWithSize(t, len(entries))
	keys := lo.Keys(entries)
	slices.Sort(keys)
	for _, k := range keys {
		entryPath := appendPath(path, k)
		kv, err := parseKey(k, t.Key())
		if err != nil {
			return reflect.Value{}, leafError(errors.PhaseDecode, entryPath, t.Key(), attribute.KindString.String(), err)
		}
		ev, err := m.decode(entries[k], Field{Type: t.Elem()}, entryPath, depth)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetMapIndex(kv, ev)
	}
	return out, nil
}

func (m *Marshaler) decodeStruct(v attribute.Value, t reflect.Type, path []string, depth int) (reflect.Value, error) {
	entries, ok := v.M()
	if !ok {
		return reflect.Value{}, mismatchAt(path, t, v)
	}
	ct, err := m.compiler.Compile(t)
	if err != nil {
		return reflect.Value{}, err
	}

	out := reflect.New(t).Elem()
	for _, field := range ct.Fields {
		if field.Ignore {
			continue
		}
		wv, ok := entries[field.Key()]
		if !ok || wv.IsZero() {
			continue
		}
		fv, err := m.decode(wv, field, appendPath(path, field.Name), depth)
		if err != nil {
			return reflect.Value{}, err
		}
		if field.Optional {
			p := reflect.New(field.Type)
			p.Elem().Set(fv)
			fv = p
		}
		out.FieldByIndex(field.Index).Set(fv)
	}
	return out, nil
}

// newSequence allocates a slice of n elements, or a zeroed array whose
// length must equal n.
func newSequence(t reflect.Type, n int, path []string) (reflect.Value, error) {
	if t.Kind() == reflect.Array {
		if t.Len() != n {
			return reflect.Value{}, errors.LeafConversion(errors.PhaseDecode, path, t.String(), "",
				errors.InvalidData(errors.PhaseDecode, path, fmt.Sprintf("array of length %d cannot hold %d elements", t.Len(), n)))
		}
		return reflect.New(t).Elem(), nil
	}
	return reflect.MakeSlice(t, n, n), nil
}

// parseKey converts map key text to the declared key type.
func parseKey(text string, t reflect.Type) (reflect.Value, error) {
	if shape.IsEnum(t) {
		members := reflect.Zero(t).Interface().(Enum).EnumValues()
		for _, m := range members {
			if m.String() == text {
				return reflect.ValueOf(m).Convert(t), nil
			}
		}
		return reflect.Value{}, errors.InvalidEnum(errors.PhaseDecode, nil, text, t.String())
	}
	if t.Kind() == reflect.String {
		return reflect.ValueOf(text).Convert(t), nil
	}
	return numtext.Parse(text, t)
}

// convertResult fits a decode function result to t.
func convertResult(out any, t reflect.Type, v attribute.Value, path []string) (reflect.Value, error) {
	rv := reflect.ValueOf(out)
	switch {
	case !rv.IsValid():
		return reflect.Zero(t), nil
	case rv.Type().AssignableTo(t):
		nv := reflect.New(t).Elem()
		nv.Set(rv)
		return nv, nil
	case rv.Type().ConvertibleTo(t):
		return rv.Convert(t), nil
	default:
		return reflect.Value{}, leafError(errors.PhaseDecode, path, t, v.Kind().String(),
			errors.TypeMismatch(errors.PhaseDecode, nil, t.String(), rv.Type().String()))
	}
}

func mismatchAt(path []string, t reflect.Type, v attribute.Value) error {
	return leafError(errors.PhaseDecode, path, t, v.Kind().String(), mismatch(t, v))
}
