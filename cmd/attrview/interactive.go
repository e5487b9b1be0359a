package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/wippyai/attrconv/attribute"
)

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateDetail
)

// headerHeight covers the title line, the filter line and the blank
// lines around them.
const headerHeight = 4

type interactiveModel struct {
	item     attribute.Item
	filename string
	keys     []string
	visible  []string
	filter   textinput.Model
	detail   viewport.Model
	style    styles
	selected int
	width    int
	height   int
	state    modelState
}

func newInteractiveModel(filename string, item attribute.Item, style styles, width, height int) *interactiveModel {
	keys := lo.Keys(item)
	slices.Sort(keys)

	ti := textinput.New()
	ti.Placeholder = "filter attributes"
	ti.Prompt = "/ "
	ti.Width = 40

	m := &interactiveModel{
		item:     item,
		filename: filename,
		keys:     keys,
		visible:  keys,
		filter:   ti,
		detail:   viewport.New(width, max(height-headerHeight, 1)),
		style:    style,
		width:    width,
		height:   height,
		state:    stateBrowse,
	}
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.detail.Width = msg.Width
		m.detail.Height = max(msg.Height-headerHeight, 1)
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case stateFilter:
			return m.updateFilter(msg)
		case stateDetail:
			return m.updateDetail(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m *interactiveModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
	case "/":
		m.state = stateFilter
		return m, m.filter.Focus()
	case "enter":
		if len(m.visible) > 0 {
			key := m.visible[m.selected]
			m.detail.SetContent(m.style.render(m.item[key]))
			m.detail.GotoTop()
			m.state = stateDetail
		}
	}
	return m, nil
}

func (m *interactiveModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		if msg.String() == "esc" {
			m.filter.SetValue("")
			m.applyFilter()
		}
		m.filter.Blur()
		m.state = stateBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *interactiveModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "enter", "backspace":
		m.state = stateBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *interactiveModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	m.visible = lo.Filter(m.keys, func(k string, _ int) bool {
		return strings.Contains(strings.ToLower(k), query)
	})
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder
	b.WriteString(m.style.title.Render("Item Viewer"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n")

	switch m.state {
	case stateDetail:
		key := m.visible[m.selected]
		b.WriteString(m.style.key.Render(key))
		b.WriteString("\n\n")
		b.WriteString(m.detail.View())
		b.WriteString("\n")
		b.WriteString(m.style.help.Render(fmt.Sprintf("%3.f%% • ↑/↓ scroll • esc back • q quit", m.detail.ScrollPercent()*100)))
	default:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		if len(m.visible) == 0 {
			b.WriteString(m.style.help.Render("no matching attributes"))
			b.WriteString("\n")
		}
		for i, k := range m.window() {
			line := fmt.Sprintf("%s %s", k, m.style.tag.Render(m.item[k].Kind().String()))
			if i+m.offset() == m.selected {
				b.WriteString(m.style.selected.Render("> " + k))
				b.WriteString(" " + m.style.tag.Render(m.item[k].Kind().String()))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.style.help.Render(fmt.Sprintf("%d/%d attributes • ↑/↓ select • / filter • enter show • q quit", len(m.visible), len(m.keys))))
	}
	return b.String()
}

// window returns the visible keys that fit on screen around the selection.
func (m *interactiveModel) window() []string {
	off := m.offset()
	end := min(off+m.rows(), len(m.visible))
	return m.visible[off:end]
}

func (m *interactiveModel) offset() int {
	rows := m.rows()
	if m.selected < rows {
		return 0
	}
	return m.selected - rows + 1
}

func (m *interactiveModel) rows() int {
	return max(m.height-headerHeight-2, 1)
}
