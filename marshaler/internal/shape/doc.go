// Package shape classifies Go types by their structural shape.
//
// The classifier decides which attribute variant a type maps to when no
// registered conversion covers it:
//
//	Shape        Go types                                   Variant
//	──────────────────────────────────────────────────────────────────
//	number-set   []T / [N]T, T integer (16-64 bit), float,  NS
//	             or decimal, and T not an enumeration
//	string-set   []T / [N]T, T string kind, not an enum     SS
//	list         any other slice or array                   L
//	map          map[K]V, K string, integer or enum kind    M
//	object       struct                                     M
//	scalar       named bool/string/integer/float types      S / N / BOOL
//
// Evaluation order is number-set, string-set, list, map, object, scalar.
// Order matters: a number-set type is also a list type.
//
// All functions are pure and expect pointer types to be unwrapped.
//
// This package is internal to the marshaler.
package shape
