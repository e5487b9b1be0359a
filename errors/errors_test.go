package errors

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindLeafConversion,
				Path:     []string{"order", "items", "[2]", "qty"},
				GoType:   "int32",
				WireType: "N",
				Detail:   "cannot parse",
			},
			contains: []string{"[decode]", "leaf_conversion", "order.items[2].qty", "int32", "N", "cannot parse"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseEncode,
				Kind:  KindUnsupportedType,
			},
			contains: []string{"[encode]", "unsupported_type"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindLeafConversion,
				Detail: "bad number",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[decode]", "leaf_conversion", "bad number", "caused by", "underlying error"},
		},
		{
			name:     "sentinel without phase",
			err:      ErrCycle,
			contains: []string{"cycle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := &strconv.NumError{Func: "ParseInt", Num: "x", Err: strconv.ErrSyntax}
	err := LeafConversion(PhaseDecode, []string{"score"}, "int32", "N", cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("errors.Is should reach the innermost cause")
	}

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Error("errors.As should find the NumError in the chain")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindAmbiguousRule,
		Path:  []string{"color"},
	}

	if !err.Is(&Error{Phase: PhaseEncode, Kind: KindAmbiguousRule}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindAmbiguousRule}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindCycle}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, ErrAmbiguousRule) {
		t.Error("errors.Is should match the kind sentinel regardless of phase")
	}
	if errors.Is(err, ErrUnsupportedType) {
		t.Error("errors.Is should not match another kind sentinel")
	}
}

func TestError_IsThroughWrapping(t *testing.T) {
	inner := UnsupportedType(PhaseDecode, []string{"a", "b"}, "chan int")
	outer := Wrap(PhaseDecode, KindInvalidData, inner, "decode item")

	if !errors.Is(outer, ErrUnsupportedType) {
		t.Error("errors.Is should find the wrapped kind")
	}

	var e *Error
	if !errors.As(outer, &e) || e.Kind != KindInvalidData {
		t.Errorf("errors.As should find the outer error first, got %v", e)
	}
}

func TestError_Field(t *testing.T) {
	err := &Error{Path: []string{"order", "items", "[0]", "sku"}}
	if got := err.Field(); got != "sku" {
		t.Errorf("Field() = %q, want sku", got)
	}
	if got := (&Error{}).Field(); got != "" {
		t.Errorf("Field() on empty path = %q, want empty", got)
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a.b"},
		{[]string{"items", "[3]"}, "items[3]"},
		{[]string{"[0]", "name"}, "[0].name"},
		{[]string{"m", "[k]", "[1]", "x"}, "m[k][1].x"},
	}
	for _, tt := range tests {
		if got := FormatPath(tt.path); got != tt.want {
			t.Errorf("FormatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindTypeMismatch).
		Path("user", "name").
		GoType("string").
		WireType("N").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "S", "N").
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "user" || err.Path[1] != "name" {
		t.Errorf("Path = %v, want [user name]", err.Path)
	}
	if err.GoType != "string" {
		t.Errorf("GoType = %v, want 'string'", err.GoType)
	}
	if err.WireType != "N" {
		t.Errorf("WireType = %v, want 'N'", err.WireType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected S, got N" {
		t.Errorf("Detail = %v, want 'expected S, got N'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnsupportedType", func(t *testing.T) {
		err := UnsupportedType(PhaseEncode, []string{"ch"}, "chan int")
		if err.Kind != KindUnsupportedType {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedType)
		}
		if err.GoType != "chan int" {
			t.Errorf("GoType = %v, want 'chan int'", err.GoType)
		}
	})

	t.Run("AmbiguousRule", func(t *testing.T) {
		err := AmbiguousRule(PhaseEncode, []string{"color"}, "Color", []string{"enum", "palette"})
		if err.Kind != KindAmbiguousRule {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAmbiguousRule)
		}
		if !strings.Contains(err.Detail, "enum, palette") {
			t.Errorf("Detail = %v, should name the rules", err.Detail)
		}
	})

	t.Run("LeafConversion", func(t *testing.T) {
		cause := errors.New("bad")
		err := LeafConversion(PhaseDecode, []string{"score"}, "int32", "N", cause)
		if err.Kind != KindLeafConversion {
			t.Errorf("Kind = %v, want %v", err.Kind, KindLeafConversion)
		}
		if err.Field() != "score" {
			t.Errorf("Field() = %v, want score", err.Field())
		}
	})

	t.Run("Construction", func(t *testing.T) {
		err := Construction(nil, "io.Reader", "interface target")
		if err.Phase != PhaseDecode || err.Kind != KindConstruction {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("Cycle", func(t *testing.T) {
		err := Cycle([]string{"next"}, "*Node", "value refers to itself")
		if err.Phase != PhaseEncode || err.Kind != KindCycle {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("DepthExceeded", func(t *testing.T) {
		err := DepthExceeded(PhaseDecode, []string{"kids"}, "Node", 8)
		if err.Phase != PhaseDecode || err.Kind != KindDepthExceeded {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Error(), "maximum depth 8 exceeded") {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseDecode, []string{"field"}, "int", "S")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.GoType != "int" || err.WireType != "S" {
			t.Errorf("GoType=%v WireType=%v", err.GoType, err.WireType)
		}
	})

	t.Run("InvalidEnum", func(t *testing.T) {
		err := InvalidEnum(PhaseDecode, []string{"status"}, "Unknown", "Status")
		if err.Kind != KindInvalidEnum {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidEnum)
		}
		if err.Value != "Unknown" {
			t.Errorf("Value = %v, want Unknown", err.Value)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseEncode, []string{"[1]"}, "nil element")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("eof")
		err := Wrap(PhaseCodec, KindInvalidData, cause, "read item")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep the cause")
		}
	})
}
