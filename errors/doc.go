// Package errors provides structured error types for the attrconv library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/wire type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindLeafConversion).
//		Path("order", "items", "[2]", "qty").
//		GoType("int32").
//		WireType("N").
//		Cause(parseErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedType(errors.PhaseEncode, path, "chan int")
//	err := errors.AmbiguousRule(errors.PhaseEncode, path, "Color", []string{"enum", "color"})
//
// All errors implement the standard error interface and support errors.Is/As.
// The Err* sentinels match on Kind alone, regardless of Phase:
//
//	if errors.Is(err, errors.ErrAmbiguousRule) { ... }
package errors
