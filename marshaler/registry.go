package marshaler

import (
	"reflect"
	"strconv"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/wippyai/attrconv/attribute"
	"github.com/wippyai/attrconv/errors"
)

// EncodeFunc writes f.Value as an attribute value.
type EncodeFunc func(f Field) (attribute.Value, error)

// DecodeFunc reads v as a value of f.Type. The result must be assignable
// or convertible to f.Type.
type DecodeFunc func(v attribute.Value, f Field) (any, error)

// Conversion binds encode and decode functions to one exact type.
// Either function may be nil, leaving that direction to later tiers.
type Conversion struct {
	Type   reflect.Type
	Encode EncodeFunc
	Decode DecodeFunc
}

// Rule is a conversion matched by predicate. Decode may be nil for
// encode-only rules.
type Rule struct {
	Match  func(reflect.Type) bool
	Encode EncodeFunc
	Decode DecodeFunc
	Name   string
}

// Registry resolves conversions for Go types.
//
// Primary conversions are fixed at construction. Custom conversions and
// rules may be added at any time; lookups and registrations are safe for
// concurrent use.
type Registry struct {
	primary    map[reflect.Type]Conversion
	custom     map[reflect.Type]Conversion
	logger     *zap.Logger
	timeLayout string
	rules      []Rule
	mu         sync.RWMutex
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for registration events.
func WithRegistryLogger(l *zap.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// WithTimeLayout sets the layout time.Time values are written with.
// Decoding accepts this layout and RFC 3339.
func WithTimeLayout(layout string) RegistryOption {
	return func(r *Registry) {
		r.timeLayout = layout
	}
}

// NewRegistry returns a registry holding the primary conversions, the
// time.Time and uuid.UUID custom conversions and the enumeration rule.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		primary:    make(map[reflect.Type]Conversion),
		custom:     make(map[reflect.Type]Conversion),
		timeLayout: DefaultTimeLayout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = Logger()
	}

	for _, c := range primaryConversions() {
		r.primary[c.Type] = c
	}
	r.AddConversions(customConversions(r.timeLayout)...)
	r.AddRule(enumRule())
	return r
}

// AddConversion registers enc and dec for exactly type t, replacing any
// earlier custom conversion for t.
func (r *Registry) AddConversion(t reflect.Type, enc EncodeFunc, dec DecodeFunc) {
	r.AddConversions(Conversion{Type: t, Encode: enc, Decode: dec})
}

// AddConversions registers several conversions at once. Pointer types are
// skipped: values are dereferenced before lookup, so a conversion for *T
// would never be consulted. Register T instead.
func (r *Registry) AddConversions(conversions ...Conversion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range conversions {
		if c.Type == nil {
			continue
		}
		if c.Type.Kind() == reflect.Ptr {
			r.logger.Warn("ignoring conversion for pointer type", zap.Stringer("type", c.Type))
			continue
		}
		if _, exists := r.custom[c.Type]; exists {
			r.logger.Debug("replacing conversion", zap.Stringer("type", c.Type))
		} else {
			r.logger.Debug("adding conversion", zap.Stringer("type", c.Type))
		}
		r.custom[c.Type] = c
	}
}

// AddRule appends a predicate rule. Rules are not checked for overlap
// here; a type matched by more than one rule fails when it is converted.
func (r *Registry) AddRule(rule Rule) {
	if rule.Match == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule)
	r.logger.Debug("adding rule", zap.String("rule", rule.Name), zap.Int("rules", len(r.rules)))
}

// Register adds a conversion for T built from typed functions.
func Register[T any](r *Registry, enc func(T, Field) (attribute.Value, error), dec func(attribute.Value) (T, error)) {
	var c Conversion
	c.Type = reflect.TypeFor[T]()
	if enc != nil {
		c.Encode = func(f Field) (attribute.Value, error) {
			return enc(f.Value.Interface().(T), f)
		}
	}
	if dec != nil {
		c.Decode = func(v attribute.Value, _ Field) (any, error) {
			return dec(v)
		}
	}
	r.AddConversions(c)
}

// encoderFor returns the encode function for f.Type, or nil when the
// value should be handled structurally.
func (r *Registry) encoderFor(f Field, path []string) (EncodeFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.primary[f.Type]; ok {
		return c.Encode, nil
	}
	if c, ok := r.custom[f.Type]; ok && c.Encode != nil {
		return c.Encode, nil
	}
	rule, err := r.matchRule(f.Type, path, errors.PhaseEncode, func(rule Rule) bool {
		return rule.Encode != nil
	})
	if err != nil || rule == nil {
		return nil, err
	}
	return rule.Encode, nil
}

// decoderFor returns the decode function for t, or nil when the value
// should be handled structurally.
func (r *Registry) decoderFor(t reflect.Type, path []string) (DecodeFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.primary[t]; ok {
		return c.Decode, nil
	}
	if c, ok := r.custom[t]; ok && c.Decode != nil {
		return c.Decode, nil
	}
	rule, err := r.matchRule(t, path, errors.PhaseDecode, func(rule Rule) bool {
		return rule.Decode != nil
	})
	if err != nil || rule == nil {
		return nil, err
	}
	return rule.Decode, nil
}

// matchRule requires at most one usable rule to match t.
// Callers hold r.mu.
func (r *Registry) matchRule(t reflect.Type, path []string, phase errors.Phase, usable func(Rule) bool) (*Rule, error) {
	matched := lo.Filter(r.rules, func(rule Rule, _ int) bool {
		return usable(rule) && rule.Match(t)
	})
	switch len(matched) {
	case 0:
		return nil, nil
	case 1:
		r.logger.Debug("rule matched", zap.String("rule", matched[0].Name), zap.Stringer("type", t))
		return &matched[0], nil
	default:
		names := lo.Map(matched, func(rule Rule, i int) string {
			if rule.Name == "" {
				return "#" + strconv.Itoa(i)
			}
			return rule.Name
		})
		return nil, errors.AmbiguousRule(phase, path, t.String(), names)
	}
}
