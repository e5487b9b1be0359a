// Package attribute defines the tagged-union value stored in a document
// store item, and its byte encodings.
//
// A Value holds exactly one of seven variants:
//
//	Tag    Variant      Go payload
//	─────────────────────────────────
//	S      String       string
//	N      Number       string (decimal text)
//	BOOL   Boolean      bool
//	SS     String set   []string
//	NS     Number set   []string (decimal text)
//	L      List         []Value
//	M      Map          map[string]Value
//
// Values are immutable once built. The zero Value has no variant and is
// reported as KindInvalid.
//
// # Encodings
//
// Values and whole items can be encoded as DynamoDB JSON:
//
//	{"id":{"S":"3fa8"},"score":{"N":"42"},"tags":{"SS":["a","b"]}}
//
// or as CBOR using the same single-key envelope. Both decoders reject
// envelopes with zero or more than one tag.
package attribute
