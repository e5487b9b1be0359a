package marshaler

import (
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wippyai/attrconv/attribute"
	"github.com/wippyai/attrconv/errors"
	"github.com/wippyai/attrconv/marshaler/internal/numtext"
	"github.com/wippyai/attrconv/marshaler/internal/shape"
)

// encodeState tracks the references on the current traversal stack and
// the number of enclosing lists, maps and objects.
type encodeState struct {
	visited map[visitKey]struct{}
	depth   int
	peak    int
}

type visitKey struct {
	typ reflect.Type
	ptr uintptr
}

// enter marks a pointer, map or slice as being encoded. A reference that
// is already on the stack is a cycle.
func (st *encodeState) enter(v reflect.Value, path []string) (visitKey, bool, error) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Map:
	case reflect.Slice:
		if v.Len() == 0 {
			return visitKey{}, false, nil
		}
	default:
		return visitKey{}, false, nil
	}
	key := visitKey{typ: v.Type(), ptr: v.Pointer()}
	if _, seen := st.visited[key]; seen {
		return key, false, errors.Cycle(path, v.Type().String(), "value refers to itself")
	}
	st.visited[key] = struct{}{}
	st.peak = max(st.peak, len(st.visited))
	return key, true, nil
}

func (st *encodeState) leave(key visitKey, entered bool) {
	if entered {
		delete(st.visited, key)
	}
}

func (m *Marshaler) encode(st *encodeState, f Field, path []string, prefix string) (attribute.Value, error) {
	v := f.Value
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return attribute.Value{}, errors.InvalidInput(errors.PhaseEncode, path, "nil value")
		}
		if v.Kind() == reflect.Ptr {
			key, entered, err := st.enter(v, path)
			if err != nil {
				return attribute.Value{}, err
			}
			defer st.leave(key, entered)
		}
		v = v.Elem()
	}
	f.Value = v
	f.Type = v.Type()

	enc, err := m.registry.encoderFor(f, path)
	if err != nil {
		return attribute.Value{}, err
	}
	if enc != nil {
		out, err := enc(f)
		if err != nil {
			return attribute.Value{}, leafError(errors.PhaseEncode, path, f.Type, "", err)
		}
		return out, nil
	}

	sh := shape.Classify(f.Type)
	if sh.IsCollection() {
		st.depth++
		defer func() { st.depth-- }()
		if st.depth > m.maxDepth {
			return attribute.Value{}, errors.DepthExceeded(errors.PhaseEncode, path, f.Type.String(), m.maxDepth)
		}
	}

	switch sh {
	case shape.ShapeNumberSet:
		return m.encodeNumberSet(v, path)
	case shape.ShapeStringSet:
		ss := make([]string, v.Len())
		for i := range ss {
			ss[i] = v.Index(i).String()
		}
		return attribute.StringSet(ss...), nil
	case shape.ShapeList:
		return m.encodeList(st, v, path)
	case shape.ShapeMap:
		return m.encodeMap(st, v, path, prefix)
	case shape.ShapeObject:
		return m.encodeStruct(st, v, path, prefix)
	case shape.ShapeScalar:
		out, err := encodeScalar(f)
		if err != nil {
			return attribute.Value{}, leafError(errors.PhaseEncode, path, f.Type, "", err)
		}
		return out, nil
	default:
		return attribute.Value{}, errors.UnsupportedType(errors.PhaseEncode, path, f.Type.String())
	}
}

func (m *Marshaler) encodeNumberSet(v reflect.Value, path []string) (attribute.Value, error) {
	ns := make([]string, v.Len())
	for i := range ns {
		elem := v.Index(i)
		if shape.IsDecimal(elem.Type()) {
			ns[i] = elem.Interface().(decimal.Decimal).String()
			continue
		}
		text, err := numtext.Format(elem)
		if err != nil {
			return attribute.Value{}, leafError(errors.PhaseEncode, indexPath(path, i), elem.Type(), attribute.KindNumberSet.String(), err)
		}
		ns[i] = text
	}
	return attribute.NumberSet(ns...), nil
}

func (m *Marshaler) encodeList(st *encodeState, v reflect.Value, path []string) (attribute.Value, error) {
	key, entered, err := st.enter(v, path)
	if err != nil {
		return attribute.Value{}, err
	}
	defer st.leave(key, entered)

	out := make([]attribute.Value, v.Len())
	for i := range out {
		elem := v.Index(i)
		elemPath := indexPath(path, i)
		if isNil(elem) {
			return attribute.Value{}, errors.InvalidInput(errors.PhaseEncode, elemPath, "nil sequence element")
		}
		ev, err := m.encode(st, Field{Type: elem.Type(), Value: elem}, elemPath, "")
		if err != nil {
			return attribute.Value{}, err
		}
		out[i] = ev
	}
	return attribute.List(out...), nil
}

func (m *Marshaler) encodeMap(st *encodeState, v reflect.Value, path []string, prefix string) (attribute.Value, error) {
	key, entered, err := st.enter(v, path)
	if err != nil {
		return attribute.Value{}, err
	}
	defer st.leave(key, entered)

	type entry struct {
		value reflect.Value
		key   string
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		if isNil(iter.Value()) {
			continue
		}
		k, err := keyText(iter.Key())
		if err != nil {
			return attribute.Value{}, leafError(errors.PhaseEncode, path, v.Type().Key(), "", err)
		}
		entries = append(entries, entry{key: k, value: iter.Value()})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	out := make(map[string]attribute.Value, len(entries))
	for _, e := range entries {
		ev, err := m.encode(st, Field{Type: e.value.Type(), Value: e.value}, appendPath(path, e.key), "")
		if err != nil {
			return attribute.Value{}, err
		}
		out[prefix+e.key] = ev
	}
	return attribute.Map(out), nil
}

func (m *Marshaler) encodeStruct(st *encodeState, v reflect.Value, path []string, prefix string) (attribute.Value, error) {
	ct, err := m.compiler.Compile(v.Type())
	if err != nil {
		return attribute.Value{}, err
	}

	out := make(map[string]attribute.Value, len(ct.Fields))
	for _, field := range ct.Fields {
		if field.Ignore {
			continue
		}
		fv := v.FieldByIndex(field.Index)
		if isNil(fv) {
			continue
		}
		f := field
		f.Value = fv
		ev, err := m.encode(st, f, appendPath(path, field.Name), "")
		if err != nil {
			return attribute.Value{}, err
		}
		out[prefix+field.Key()] = ev
	}
	return attribute.Map(out), nil
}

// keyText renders a map key: enumerations by name, strings verbatim and
// integers in decimal.
func keyText(k reflect.Value) (string, error) {
	if shape.IsEnum(k.Type()) {
		return k.Interface().(Enum).String(), nil
	}
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	return numtext.Format(k)
}

// isNil reports whether v is absent: a nil reference, or an interface or
// pointer leading to one.
func isNil(v reflect.Value) bool {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

func appendPath(path []string, elem string) []string {
	return append(append([]string{}, path...), elem)
}

func indexPath(path []string, i int) []string {
	return appendPath(path, "["+strconv.Itoa(i)+"]")
}

// leafError attaches the path to a failed conversion.
func leafError(phase errors.Phase, path []string, t reflect.Type, wireType string, cause error) error {
	return errors.LeafConversion(phase, path, t.String(), wireType, cause)
}
