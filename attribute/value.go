package attribute

import (
	"slices"
)

// Kind identifies the active variant of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
	KindStringSet
	KindNumberSet
	KindList
	KindMap
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindString:    "S",
	KindNumber:    "N",
	KindBool:      "BOOL",
	KindStringSet: "SS",
	KindNumberSet: "NS",
	KindList:      "L",
	KindMap:       "M",
}

// String returns the wire tag of the kind ("S", "N", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Item is a top-level document: attribute name to value.
type Item = map[string]Value

// Value is a tagged union with exactly one populated variant.
type Value struct {
	m    map[string]Value
	l    []Value
	set  []string
	s    string
	kind Kind
	b    bool
}

// String returns a String value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Number returns a Number value holding decimal text.
func Number(text string) Value {
	return Value{kind: KindNumber, s: text}
}

// Bool returns a Boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// StringSet returns a String set value. The slice is copied.
func StringSet(ss ...string) Value {
	return Value{kind: KindStringSet, set: slices.Clone(nonNil(ss))}
}

// NumberSet returns a Number set value of decimal texts. The slice is copied.
func NumberSet(ns ...string) Value {
	return Value{kind: KindNumberSet, set: slices.Clone(nonNil(ns))}
}

// List returns a List value.
func List(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: KindList, l: vs}
}

// Map returns a Map value.
func Map(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KindMap, m: m}
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

// Kind returns the active variant.
func (v Value) Kind() Kind {
	return v.kind
}

// IsZero reports whether no variant is populated.
func (v Value) IsZero() bool {
	return v.kind == KindInvalid
}

// S returns the String payload.
func (v Value) S() (string, bool) {
	return v.s, v.kind == KindString
}

// N returns the Number payload.
func (v Value) N() (string, bool) {
	return v.s, v.kind == KindNumber
}

// BOOL returns the Boolean payload.
func (v Value) BOOL() (bool, bool) {
	return v.b, v.kind == KindBool
}

// SS returns the String set payload. Callers must not modify it.
func (v Value) SS() ([]string, bool) {
	if v.kind != KindStringSet {
		return nil, false
	}
	return v.set, true
}

// NS returns the Number set payload. Callers must not modify it.
func (v Value) NS() ([]string, bool) {
	if v.kind != KindNumberSet {
		return nil, false
	}
	return v.set, true
}

// L returns the List payload. Callers must not modify it.
func (v Value) L() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.l, true
}

// M returns the Map payload. Callers must not modify it.
func (v Value) M() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

// Equal reports deep equality. Sets compare without regard to order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInvalid:
		return true
	case KindString, KindNumber:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	case KindStringSet, KindNumberSet:
		if len(v.set) != len(o.set) {
			return false
		}
		a, b := slices.Clone(v.set), slices.Clone(o.set)
		slices.Sort(a)
		slices.Sort(b)
		return slices.Equal(a, b)
	case KindList:
		return slices.EqualFunc(v.l, o.l, Value.Equal)
	case KindMap:
		return ItemsEqual(v.m, o.m)
	}
	return false
}

// ItemsEqual reports whether two items hold equal values under equal keys.
func ItemsEqual(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}
