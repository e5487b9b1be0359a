package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_SingleVariant(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"string", String("a"), KindString},
		{"number", Number("1.5"), KindNumber},
		{"bool", Bool(true), KindBool},
		{"string set", StringSet("a", "b"), KindStringSet},
		{"number set", NumberSet("1", "2"), KindNumberSet},
		{"list", List(String("x")), KindList},
		{"map", Map(map[string]Value{"k": Bool(false)}), KindMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
			assert.False(t, tt.v.IsZero())

			_, isS := tt.v.S()
			_, isN := tt.v.N()
			_, isB := tt.v.BOOL()
			_, isSS := tt.v.SS()
			_, isNS := tt.v.NS()
			_, isL := tt.v.L()
			_, isM := tt.v.M()

			active := 0
			for _, ok := range []bool{isS, isN, isB, isSS, isNS, isL, isM} {
				if ok {
					active++
				}
			}
			assert.Equal(t, 1, active, "exactly one accessor must report ok")
		})
	}
}

func TestValue_Zero(t *testing.T) {
	var v Value
	assert.True(t, v.IsZero())
	assert.Equal(t, KindInvalid, v.Kind())
	assert.Equal(t, "invalid", v.Kind().String())
}

func TestValue_SetsAreCopied(t *testing.T) {
	src := []string{"a", "b"}
	v := StringSet(src...)
	src[0] = "mutated"

	ss, ok := v.SS()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, ss)
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, StringSet("a", "b").Equal(StringSet("b", "a")))
	assert.True(t, NumberSet("1", "2").Equal(NumberSet("2", "1")))
	assert.False(t, StringSet("a").Equal(NumberSet("a")))
	assert.False(t, List(String("a"), String("b")).Equal(List(String("b"), String("a"))))
	assert.True(t, Map(map[string]Value{"a": Number("1")}).Equal(Map(map[string]Value{"a": Number("1")})))
	assert.False(t, Map(map[string]Value{"a": Number("1")}).Equal(Map(map[string]Value{"b": Number("1")})))
	assert.False(t, String("1").Equal(Number("1")))
}

func TestFormat(t *testing.T) {
	v := Map(map[string]Value{
		"tags":  StringSet("a"),
		"id":    String("x"),
		"score": Number("42"),
		"list":  List(Bool(true)),
	})

	want := "M {\n" +
		"  id: S \"x\"\n" +
		"  list: L [\n" +
		"    BOOL true\n" +
		"  ]\n" +
		"  score: N 42\n" +
		"  tags: SS [\"a\"]\n" +
		"}"
	assert.Equal(t, want, Format(v))
	assert.Equal(t, "M {}", FormatItem(nil))
}
