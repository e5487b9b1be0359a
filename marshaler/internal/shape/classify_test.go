package shape

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type color int

func (c color) String() string     { return [...]string{"Red", "Green"}[c] }
func (c color) EnumValues() []Enum { return []Enum{color(0), color(1)} }

type label string

func (l label) String() string     { return string(l) }
func (l label) EnumValues() []Enum { return []Enum{label("a")} }

type userID string

type point struct{ X, Y int }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want Shape
	}{
		{"int slice", reflect.TypeOf([]int{}), ShapeNumberSet},
		{"int16 slice", reflect.TypeOf([]int16{}), ShapeNumberSet},
		{"uint64 array", reflect.TypeOf([3]uint64{}), ShapeNumberSet},
		{"float32 slice", reflect.TypeOf([]float32{}), ShapeNumberSet},
		{"decimal slice", reflect.TypeOf([]decimal.Decimal{}), ShapeNumberSet},
		{"byte slice", reflect.TypeOf([]byte{}), ShapeList},
		{"int8 slice", reflect.TypeOf([]int8{}), ShapeList},
		{"string slice", reflect.TypeOf([]string{}), ShapeStringSet},
		{"named string slice", reflect.TypeOf([]userID{}), ShapeStringSet},
		{"enum slice", reflect.TypeOf([]color{}), ShapeList},
		{"string enum slice", reflect.TypeOf([]label{}), ShapeList},
		{"struct slice", reflect.TypeOf([]point{}), ShapeList},
		{"any slice", reflect.TypeOf([]any{}), ShapeList},
		{"bool slice", reflect.TypeOf([]bool{}), ShapeList},
		{"string map", reflect.TypeOf(map[string]int{}), ShapeMap},
		{"int key map", reflect.TypeOf(map[int64]string{}), ShapeMap},
		{"enum key map", reflect.TypeOf(map[color]string{}), ShapeMap},
		{"struct key map", reflect.TypeOf(map[point]string{}), ShapeUnsupported},
		{"float key map", reflect.TypeOf(map[float64]string{}), ShapeUnsupported},
		{"struct", reflect.TypeOf(point{}), ShapeObject},
		{"time", reflect.TypeOf(time.Time{}), ShapeObject},
		{"decimal", reflect.TypeOf(decimal.Decimal{}), ShapeUnsupported},
		{"named string", reflect.TypeOf(userID("")), ShapeScalar},
		{"int", reflect.TypeOf(0), ShapeScalar},
		{"chan", reflect.TypeOf(make(chan int)), ShapeUnsupported},
		{"func", reflect.TypeOf(func() {}), ShapeUnsupported},
		{"nil", nil, ShapeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.typ); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestNumericSequenceIsAlsoSequence(t *testing.T) {
	typ := reflect.TypeOf([]int32{})
	if !IsNumericSequence(typ) {
		t.Fatal("[]int32 should be a numeric sequence")
	}
	if !IsSequence(typ) {
		t.Error("[]int32 should also satisfy IsSequence")
	}
	if IsTextSequence(typ) {
		t.Error("[]int32 is not a text sequence")
	}
}

func TestMapIsNotSequence(t *testing.T) {
	typ := reflect.TypeOf(map[string][]string{})
	if IsSequence(typ) {
		t.Error("maps must never classify as sequences")
	}
	if !IsMap(typ) {
		t.Error("map[string][]string should be a map")
	}
}

func TestIsEnum(t *testing.T) {
	if !IsEnum(reflect.TypeOf(color(0))) {
		t.Error("color should be an enum")
	}
	if !IsEnum(reflect.TypeOf(label(""))) {
		t.Error("label should be an enum")
	}
	if IsEnum(reflect.TypeOf(0)) {
		t.Error("int should not be an enum")
	}
	if IsEnum(nil) {
		t.Error("nil should not be an enum")
	}
}

func TestShapeString(t *testing.T) {
	tests := []struct {
		s    Shape
		want string
	}{
		{ShapeUnsupported, "unsupported"},
		{ShapeNumberSet, "number-set"},
		{ShapeStringSet, "string-set"},
		{ShapeList, "list"},
		{ShapeMap, "map"},
		{ShapeObject, "object"},
		{ShapeScalar, "scalar"},
		{Shape(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Shape(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestShapeIsCollection(t *testing.T) {
	for _, s := range []Shape{ShapeList, ShapeMap, ShapeObject} {
		if !s.IsCollection() {
			t.Errorf("%v should be a collection", s)
		}
	}
	for _, s := range []Shape{ShapeNumberSet, ShapeStringSet, ShapeScalar, ShapeUnsupported} {
		if s.IsCollection() {
			t.Errorf("%v should not be a collection", s)
		}
	}
}
