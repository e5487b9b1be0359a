package attribute

import (
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Format renders v as an indented, human-readable tree. Map keys are sorted.
func Format(v Value) string {
	var b strings.Builder
	format(&b, v, 0)
	return b.String()
}

// FormatItem renders an item the same way Format renders a Map value.
func FormatItem(item Item) string {
	return Format(Map(item))
}

func format(b *strings.Builder, v Value, depth int) {
	b.WriteString(v.kind.String())
	b.WriteByte(' ')

	switch v.kind {
	case KindString:
		b.WriteString(strconv.Quote(v.s))
	case KindNumber:
		b.WriteString(v.s)
	case KindBool:
		b.WriteString(strconv.FormatBool(v.b))
	case KindStringSet:
		b.WriteString("[")
		b.WriteString(strings.Join(lo.Map(v.set, func(s string, _ int) string { return strconv.Quote(s) }), ", "))
		b.WriteString("]")
	case KindNumberSet:
		b.WriteString("[")
		b.WriteString(strings.Join(v.set, ", "))
		b.WriteString("]")
	case KindList:
		if len(v.l) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for _, e := range v.l {
			indent(b, depth+1)
			format(b, e, depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteString("]")
	case KindMap:
		if len(v.m) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		keys := lo.Keys(v.m)
		slices.Sort(keys)
		for _, k := range keys {
			indent(b, depth+1)
			b.WriteString(k)
			b.WriteString(": ")
			format(b, v.m[k], depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteString("}")
	default:
		b.WriteString("<invalid>")
	}
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
