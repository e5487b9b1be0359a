// Package numtext renders and parses Go numbers as locale-independent
// decimal text.
//
// Integers use base 10 with no separators. Floats use the shortest
// representation that round-trips at their bit size; NaN and infinities
// have no decimal text and are rejected.
//
// This package is internal to the marshaler.
package numtext
