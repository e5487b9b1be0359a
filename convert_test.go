package attrconv

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/attrconv/attribute"
	"github.com/wippyai/attrconv/errors"
	"github.com/wippyai/attrconv/marshaler"
)

type profile struct {
	ID    uuid.UUID `dynamo:"id"`
	Score int32     `dynamo:"score"`
	Tags  []string  `dynamo:"tags"`
}

type currency string

func TestMarshalItem_RoundTrip(t *testing.T) {
	in := profile{ID: uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6"), Score: 42, Tags: []string{"a", "b"}}

	item, err := MarshalItem(in)
	require.NoError(t, err)
	assert.True(t, attribute.Number("42").Equal(item["score"]))

	out, err := UnmarshalItem[profile](item)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, *out)
}

func TestNilPassThrough(t *testing.T) {
	var nilProfile *profile
	var nilMap map[string]int
	var nilSlice []int

	item, err := MarshalItem(nil)
	assert.NoError(t, err)
	assert.Nil(t, item)

	item, err = MarshalItem(nilProfile)
	assert.NoError(t, err)
	assert.Nil(t, item)

	item, err = MarshalMap(nilMap)
	assert.NoError(t, err)
	assert.Nil(t, item)

	list, err := MarshalList(nilSlice)
	assert.NoError(t, err)
	assert.Nil(t, list)

	out, err := UnmarshalItem[profile](nil)
	assert.NoError(t, err)
	assert.Nil(t, out)

	outs, err := UnmarshalItems[profile](nil)
	assert.NoError(t, err)
	assert.Nil(t, outs)
}

func TestMarshalItemPrefixed(t *testing.T) {
	item, err := MarshalItemPrefixed(profile{Score: 1}, "gsi_")
	require.NoError(t, err)
	assert.Contains(t, item, "gsi_score")
	assert.Contains(t, item, "gsi_id")
}

func TestMarshalList(t *testing.T) {
	list, err := MarshalList([]profile{{Score: 1}, {Score: 2}})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, attribute.KindMap, list[0].Kind())

	nums, err := MarshalList([]int{5, 6})
	require.NoError(t, err)
	require.Len(t, nums, 2)
	assert.True(t, attribute.Number("6").Equal(nums[1]))

	_, err = MarshalList(map[string]int{})
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestMarshalMap(t *testing.T) {
	item, err := MarshalMap(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.True(t, attribute.Number("1").Equal(item["a"]))

	_, err = MarshalMap(profile{})
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestUnmarshalItems_SkipsNil(t *testing.T) {
	items := []attribute.Item{
		{"score": attribute.Number("1")},
		nil,
		{"score": attribute.Number("3")},
	}

	out, err := UnmarshalItems[profile](items)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int32(1), out[0].Score)
	assert.Equal(t, int32(3), out[1].Score)
}

func TestUnmarshalItems_ReportsIndex(t *testing.T) {
	items := []attribute.Item{
		{"score": attribute.Number("1")},
		{"score": attribute.String("x")},
	}

	_, err := UnmarshalItems[profile](items)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrLeafConversion)
	assert.Contains(t, err.Error(), "[1]")
}

func TestConverter_OwnRegistry(t *testing.T) {
	c := New()
	c.AddConversion(reflect.TypeFor[currency](),
		func(f marshaler.Field) (attribute.Value, error) {
			return attribute.String(strings.ToUpper(f.Value.String())), nil
		},
		func(v attribute.Value, _ marshaler.Field) (any, error) {
			s, _ := v.S()
			return currency(strings.ToLower(s)), nil
		})

	type price struct{ Currency currency }

	item, err := c.MarshalItem(price{Currency: "eur"})
	require.NoError(t, err)
	assert.True(t, attribute.String("EUR").Equal(item["Currency"]))

	back, err := UnmarshalItemWith[price](c, item)
	require.NoError(t, err)
	assert.Equal(t, currency("eur"), back.Currency)

	// the default converter is unaffected
	plain, err := MarshalItem(price{Currency: "eur"})
	require.NoError(t, err)
	assert.True(t, attribute.String("eur").Equal(plain["Currency"]))
}

func TestConverter_AddRule(t *testing.T) {
	type stringer interface{ String() string }
	c := New()
	c.AddRule(marshaler.Rule{
		Name: "stringer",
		Match: func(t reflect.Type) bool {
			return t.Implements(reflect.TypeFor[stringer]()) && t.Kind() == reflect.Struct
		},
		Encode: func(f marshaler.Field) (attribute.Value, error) {
			return attribute.String(f.Value.Interface().(stringer).String()), nil
		},
	})

	var out profile
	require.NoError(t, c.Unmarshal(attribute.Item{"score": attribute.Number("9")}, &out))
	assert.Equal(t, int32(9), out.Score)

	item, err := c.MarshalItem(map[string]any{"v": namedThing{}})
	require.NoError(t, err)
	assert.True(t, attribute.String("thing").Equal(item["v"]))
}

type namedThing struct{}

func (namedThing) String() string { return "thing" }
