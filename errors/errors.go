package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // conversion/rule registration
	PhaseCompile  Phase = "compile"  // field descriptor compilation
	PhaseEncode   Phase = "encode"   // Go to attribute value
	PhaseDecode   Phase = "decode"   // attribute value to Go
	PhaseCodec    Phase = "codec"    // attribute value byte encodings (JSON, CBOR)
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedType Kind = "unsupported_type"
	KindAmbiguousRule   Kind = "ambiguous_rule"
	KindLeafConversion  Kind = "leaf_conversion"
	KindConstruction    Kind = "construction"
	KindCycle           Kind = "cycle"
	KindTypeMismatch    Kind = "type_mismatch"
	KindInvalidEnum     Kind = "invalid_enum"
	KindInvalidInput    Kind = "invalid_input"
	KindInvalidData     Kind = "invalid_data"
	KindDepthExceeded   Kind = "depth_exceeded"
)

// Sentinels for errors.Is checks that only care about the category.
var (
	ErrUnsupportedType = &Error{Kind: KindUnsupportedType}
	ErrAmbiguousRule   = &Error{Kind: KindAmbiguousRule}
	ErrLeafConversion  = &Error{Kind: KindLeafConversion}
	ErrConstruction    = &Error{Kind: KindConstruction}
	ErrCycle           = &Error{Kind: KindCycle}
	ErrTypeMismatch    = &Error{Kind: KindTypeMismatch}
	ErrInvalidEnum     = &Error{Kind: KindInvalidEnum}
	ErrInvalidInput    = &Error{Kind: KindInvalidInput}
	ErrInvalidData     = &Error{Kind: KindInvalidData}
	ErrDepthExceeded   = &Error{Kind: KindDepthExceeded}
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	WireType string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(FormatPath(e.Path))
	}

	if e.GoType != "" || e.WireType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WireType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wire type ")
			b.WriteString(e.WireType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("wire type ")
			b.WriteString(e.WireType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WireType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target without a Phase matches on Kind only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Field returns the innermost path element, usually the member name
// that caused the failure.
func (e *Error) Field() string {
	if len(e.Path) == 0 {
		return ""
	}
	return e.Path[len(e.Path)-1]
}

// FormatPath joins path elements with dots, attaching index
// elements ("[3]") to the preceding element.
func FormatPath(path []string) string {
	var b strings.Builder
	for i, p := range path {
		if i > 0 && !strings.HasPrefix(p, "[") {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WireType sets the attribute value tag name
func (b *Builder) WireType(t string) *Builder {
	b.err.WireType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedType creates an error for a type no conversion or shape covers
func UnsupportedType(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedType,
		Path:   path,
		GoType: goType,
		Detail: "no conversion, rule or structural shape matches",
	}
}

// AmbiguousRule creates an error for a type matched by more than one rule
func AmbiguousRule(phase Phase, path []string, goType string, rules []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAmbiguousRule,
		Path:   path,
		GoType: goType,
		Detail: fmt.Sprintf("%d rules match: %s", len(rules), strings.Join(rules, ", ")),
		Value:  rules,
	}
}

// LeafConversion wraps a scalar parse/format failure with the field path
func LeafConversion(phase Phase, path []string, goType, wireType string, cause error) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindLeafConversion,
		Path:     path,
		GoType:   goType,
		WireType: wireType,
		Cause:    cause,
	}
}

// Construction creates an error for a target that cannot be instantiated
func Construction(path []string, goType, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindConstruction,
		Path:   path,
		GoType: goType,
		Detail: detail,
	}
}

// Cycle creates an error for a value reachable from itself
func Cycle(path []string, goType string, detail string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindCycle,
		Path:   path,
		GoType: goType,
		Detail: detail,
	}
}

// DepthExceeded creates an error for nesting deeper than limit
func DepthExceeded(phase Phase, path []string, goType string, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDepthExceeded,
		Path:   path,
		GoType: goType,
		Detail: fmt.Sprintf("maximum depth %d exceeded", limit),
		Value:  limit,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, wireType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		GoType:   goType,
		WireType: wireType,
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(phase Phase, path []string, value any, enumType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidEnum,
		Path:   path,
		GoType: enumType,
		Detail: fmt.Sprintf("invalid enum value %v for %s", value, enumType),
		Value:  value,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
