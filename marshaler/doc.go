// Package marshaler converts Go values to and from attribute values.
//
// Conversion is type-directed: the static and runtime type of a value
// selects the wire variant it is written as, and the declared type of a
// decode target selects how a wire variant is read back.
//
//	┌───────────────────────────────────────────────────────────┐
//	│ Go value ←→ [Registry → Shape fallback] ←→ attribute.Value │
//	└───────────────────────────────────────────────────────────┘
//
// # Resolution
//
// Every value is resolved in a fixed order:
//
//	Tier        Matched by               Examples
//	──────────────────────────────────────────────────────────────
//	primary     exact built-in type      string, bool, int32, float64
//	custom      exact registered type    time.Time, uuid.UUID
//	rule        predicate over the type  enumerations
//	shape       structural classifier    []int, []string, map, struct
//
// A type matching none of these is an unsupported-type error. More than
// one matching rule is an ambiguous-rule error.
//
// # Shapes
//
//	Go type                        Wire variant
//	──────────────────────────────────────────────
//	[]int16 … []float64, []Decimal NS
//	[]string (and named strings)   SS
//	other slices and arrays        L
//	map[K]V                        M
//	struct                         M (one key per field)
//	named scalar                   by underlying kind
//
// # Struct Fields
//
// Exported fields are described by the dynamo struct tag:
//
//	type Order struct {
//	    ID     uuid.UUID `dynamo:"pk"`
//	    State  Status    `dynamo:",ordinal"`
//	    Grade  rune      `dynamo:"grade,char"`
//	    Cached []byte    `dynamo:"-"`
//	}
//
// Types that cannot carry tags may implement FieldDescriber instead.
// Pointer fields are optional: nil pointers are omitted on encode and
// allocated on decode when their key is present.
//
// # Key Types
//
//	Registry   - Primary, custom and rule conversions
//	Compiler   - Caches per-struct field descriptors
//	Marshaler  - Serialize and Deserialize entry points
//	Field      - Normalized per-member metadata
package marshaler
