// Package attrconv converts Go values to and from document-store item
// attributes.
//
// An attribute is a tagged union with exactly one populated variant (S, N,
// BOOL, SS, NS, L or M). The conversion is driven by Go types: a []int
// becomes a number set, a struct becomes a map keyed by field name, a
// time.Time becomes an ISO-8601 string.
//
// # Architecture Overview
//
//	attrconv/            Facade: items, lists and maps in and out
//	├── attribute/       Wire value, DynamoDB-JSON and CBOR codecs
//	├── marshaler/       Registry, field descriptors, encoder and decoder
//	├── errors/          Structured error types for debugging
//	└── cmd/attrview/    Inspect and convert stored items
//
// # Quick Start
//
//	type Order struct {
//	    ID    uuid.UUID `dynamo:"pk"`
//	    Total decimal.Decimal
//	    Tags  []string
//	}
//
//	item, err := attrconv.MarshalItem(order)
//	...
//	back, err := attrconv.UnmarshalItem[Order](item)
//
// # Extending
//
// Types the library does not know are registered on a converter:
//
//	c := attrconv.New()
//	c.AddConversion(reflect.TypeFor[Money](), encodeMoney, decodeMoney)
//
// Predicate rules match families of types, such as every type
// implementing an interface. A type matched by two rules fails with an
// ambiguous-rule error rather than picking one.
package attrconv
