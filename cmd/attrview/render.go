package main

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/wippyai/attrconv/attribute"
)

type styles struct {
	title    lipgloss.Style
	selected lipgloss.Style
	key      lipgloss.Style
	tag      lipgloss.Style
	str      lipgloss.Style
	number   lipgloss.Style
	boolean  lipgloss.Style
	help     lipgloss.Style
	err      lipgloss.Style
}

func (s styles) renderItem(item attribute.Item) string {
	return s.render(attribute.Map(item))
}

func (s styles) render(v attribute.Value) string {
	var b strings.Builder
	s.write(&b, v, 0)
	return b.String()
}

func (s styles) write(b *strings.Builder, v attribute.Value, depth int) {
	b.WriteString(s.tag.Render(v.Kind().String()))
	b.WriteByte(' ')

	switch v.Kind() {
	case attribute.KindString:
		str, _ := v.S()
		b.WriteString(s.str.Render(strconv.Quote(str)))
	case attribute.KindNumber:
		n, _ := v.N()
		b.WriteString(s.number.Render(n))
	case attribute.KindBool:
		bv, _ := v.BOOL()
		b.WriteString(s.boolean.Render(strconv.FormatBool(bv)))
	case attribute.KindStringSet:
		ss, _ := v.SS()
		quoted := lo.Map(ss, func(e string, _ int) string { return s.str.Render(strconv.Quote(e)) })
		b.WriteString("[" + strings.Join(quoted, ", ") + "]")
	case attribute.KindNumberSet:
		ns, _ := v.NS()
		styled := lo.Map(ns, func(e string, _ int) string { return s.number.Render(e) })
		b.WriteString("[" + strings.Join(styled, ", ") + "]")
	case attribute.KindList:
		l, _ := v.L()
		if len(l) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for _, e := range l {
			b.WriteString(strings.Repeat("  ", depth+1))
			s.write(b, e, depth+1)
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("  ", depth) + "]")
	case attribute.KindMap:
		m, _ := v.M()
		if len(m) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		keys := lo.Keys(m)
		slices.Sort(keys)
		for _, k := range keys {
			b.WriteString(strings.Repeat("  ", depth+1))
			b.WriteString(s.key.Render(k))
			b.WriteString(": ")
			s.write(b, m[k], depth+1)
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("  ", depth) + "}")
	default:
		b.WriteString(s.err.Render("<invalid>"))
	}
}
