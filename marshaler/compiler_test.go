package marshaler

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/attrconv/attribute"
	"github.com/wippyai/attrconv/errors"
)

type described struct {
	Name   string
	Secret string
	Level  priority
	hidden int
}

func (described) DescribeFields() []FieldSpec {
	return []FieldSpec{
		{Name: "Name", Alias: "n"},
		{Name: "Secret", Ignore: true},
		{Name: "Level", Hint: HintOrdinal},
	}
}

type pointerDescribed struct {
	Value int
}

func (*pointerDescribed) DescribeFields() []FieldSpec {
	return []FieldSpec{{Name: "Value", Alias: "v"}}
}

func TestCompiler_Tags(t *testing.T) {
	c := NewCompiler()

	ct, err := c.Compile(reflect.TypeFor[customer]())
	require.NoError(t, err)

	byName := make(map[string]Field)
	for _, f := range ct.Fields {
		byName[f.Name] = f
	}

	assert.Equal(t, "Name", byName["Name"].Key())
	assert.Equal(t, "grade", byName["Grade"].Key())
	assert.Equal(t, HintChar, byName["Grade"].Hint)
	assert.Equal(t, HintOrdinal, byName["Rank"].Hint)
	assert.Equal(t, "Rank", byName["Rank"].Key())
	assert.True(t, byName["Password"].Ignore)
	assert.True(t, byName["Cache"].Ignore)
	assert.Equal(t, "cache", byName["Cache"].Key())

	work := byName["Work"]
	assert.True(t, work.Optional)
	assert.Equal(t, reflect.TypeFor[address](), work.Type)
}

func TestCompiler_SkipsUnexported(t *testing.T) {
	ct, err := NewCompiler().Compile(reflect.TypeFor[described]())
	require.NoError(t, err)
	for _, f := range ct.Fields {
		assert.NotEqual(t, "hidden", f.Name)
	}
}

func TestCompiler_Cache(t *testing.T) {
	c := NewCompiler()

	first, err := c.Compile(reflect.TypeFor[address]())
	require.NoError(t, err)
	second, err := c.Compile(reflect.TypeFor[*address]())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCompiler_FieldDescriber(t *testing.T) {
	m := New()

	item, err := m.SerializeItem(described{Name: "x", Secret: "s", Level: high}, "")
	require.NoError(t, err)
	assert.Equal(t, 2, len(item))
	assert.True(t, attribute.String("x").Equal(item["n"]))
	assert.True(t, attribute.Number("20").Equal(item["Level"]))

	var out described
	require.NoError(t, m.DeserializeItem(attribute.Item{
		"n":      attribute.String("y"),
		"Secret": attribute.String("leak"),
		"Level":  attribute.Number("10"),
	}, &out))
	assert.Equal(t, described{Name: "y", Level: low}, out)

	pitem, err := m.SerializeItem(pointerDescribed{Value: 1}, "")
	require.NoError(t, err)
	assert.Contains(t, pitem, "v")
}

func TestCompiler_Errors(t *testing.T) {
	type unknownOption struct {
		A int `dynamo:"a,sideways"`
	}
	type charOnString struct {
		A string `dynamo:",char"`
	}
	type ordinalOnPlainInt struct {
		A int `dynamo:",ordinal"`
	}
	type ordinalOnStringEnum struct {
		A label `dynamo:",ordinal"`
	}
	type duplicateKey struct {
		A int `dynamo:"k"`
		B int `dynamo:"k"`
	}

	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{"unknown option", reflect.TypeFor[unknownOption]()},
		{"char on string", reflect.TypeFor[charOnString]()},
		{"ordinal on plain int", reflect.TypeFor[ordinalOnPlainInt]()},
		{"ordinal on string enum", reflect.TypeFor[ordinalOnStringEnum]()},
		{"duplicate key", reflect.TypeFor[duplicateKey]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompiler().Compile(tt.typ)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidInput)
		})
	}

	_, err := NewCompiler().Compile(reflect.TypeFor[int]())
	assert.ErrorIs(t, err, errors.ErrUnsupportedType)
}

func TestCompiler_DuplicateKeyAllowedWhenIgnored(t *testing.T) {
	type shadowed struct {
		A int `dynamo:"k"`
		B int `dynamo:"k,ignore"`
	}
	_, err := NewCompiler().Compile(reflect.TypeFor[shadowed]())
	assert.NoError(t, err)
}

func TestParseHint(t *testing.T) {
	for in, want := range map[string]Hint{
		"ordinal": HintOrdinal,
		"ORDINAL": HintOrdinal,
		"Char":    HintChar,
		"default": HintDefault,
	} {
		got, ok := ParseHint(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseHint("hash")
	assert.False(t, ok)
	assert.Equal(t, "ordinal", HintOrdinal.String())
	assert.Equal(t, "unknown", Hint(99).String())
}
