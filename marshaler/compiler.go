package marshaler

import (
	"reflect"
	"sync"

	"github.com/wippyai/attrconv/errors"
	"github.com/wippyai/attrconv/marshaler/internal/numtext"
	"github.com/wippyai/attrconv/marshaler/internal/shape"
)

// CompiledType holds the field descriptors of one struct type.
// Fields are in declaration order and carry no Value.
type CompiledType struct {
	GoType reflect.Type
	Fields []Field
}

// Compiler builds and caches CompiledType values.
type Compiler struct {
	cache sync.Map // reflect.Type -> *CompiledType
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile returns the descriptor of struct type goType, compiling it on
// first use. Pointer types are dereferenced.
func (c *Compiler) Compile(goType reflect.Type) (*CompiledType, error) {
	if goType == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindInvalidInput).
			Detail("Go type cannot be nil").
			Build()
	}
	if goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}

	if cached, ok := c.cache.Load(goType); ok {
		return cached.(*CompiledType), nil
	}

	ct, err := c.compile(goType)
	if err != nil {
		return nil, err
	}

	actual, _ := c.cache.LoadOrStore(goType, ct)
	return actual.(*CompiledType), nil
}

func (c *Compiler) compile(goType reflect.Type) (*CompiledType, error) {
	path := []string{goType.String()}
	if goType.Kind() != reflect.Struct {
		return nil, errors.UnsupportedType(errors.PhaseCompile, path, goType.String())
	}

	ct := &CompiledType{GoType: goType}
	byName := make(map[string]int)
	for i := 0; i < goType.NumField(); i++ {
		sf := goType.Field(i)
		if !sf.IsExported() {
			continue
		}

		f := Field{
			Name:  sf.Name,
			Type:  sf.Type,
			Index: sf.Index,
		}
		// Optional members are unwrapped once here.
		if f.Type.Kind() == reflect.Ptr {
			f.Type = f.Type.Elem()
			f.Optional = true
		}

		fieldPath := append(append([]string{}, path...), sf.Name)
		if tag, ok := sf.Tag.Lookup(TagName); ok {
			if err := parseTag(&f, tag, fieldPath); err != nil {
				return nil, err
			}
		}

		byName[f.Name] = len(ct.Fields)
		ct.Fields = append(ct.Fields, f)
	}

	if goType.Implements(fieldDescriberType) || reflect.PointerTo(goType).Implements(fieldDescriberType) {
		describer := reflect.New(goType).Interface().(FieldDescriber)
		for _, fs := range describer.DescribeFields() {
			idx, ok := byName[fs.Name]
			if !ok {
				return nil, errors.InvalidInput(errors.PhaseCompile, path,
					"DescribeFields names unknown field "+fs.Name)
			}
			f := &ct.Fields[idx]
			if fs.Alias != "" {
				f.Alias = fs.Alias
			}
			if fs.Hint != HintDefault {
				f.Hint = fs.Hint
			}
			f.Ignore = f.Ignore || fs.Ignore
		}
	}

	keys := make(map[string]string)
	for _, f := range ct.Fields {
		fieldPath := append(append([]string{}, path...), f.Name)
		if err := validateHint(f, fieldPath); err != nil {
			return nil, err
		}
		if f.Ignore {
			continue
		}
		if other, dup := keys[f.Key()]; dup {
			return nil, errors.New(errors.PhaseCompile, errors.KindInvalidInput).
				Path(fieldPath...).
				GoType(goType.String()).
				Detail("wire key %q also used by field %s", f.Key(), other).
				Build()
		}
		keys[f.Key()] = f.Name
	}

	return ct, nil
}

func validateHint(f Field, path []string) error {
	switch f.Hint {
	case HintOrdinal:
		if !shape.IsEnum(f.Type) || !numtext.IsInteger(f.Type.Kind()) {
			return errors.New(errors.PhaseCompile, errors.KindInvalidInput).
				Path(path...).
				GoType(f.Type.String()).
				Detail("ordinal hint requires an integer-backed enumeration").
				Build()
		}
	case HintChar:
		if f.Type.Kind() != reflect.Int32 {
			return errors.New(errors.PhaseCompile, errors.KindInvalidInput).
				Path(path...).
				GoType(f.Type.String()).
				Detail("char hint requires a rune").
				Build()
		}
	}
	return nil
}
