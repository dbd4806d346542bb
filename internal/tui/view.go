package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/selectbox/internal/option"
)

const (
	closedMarker   = "▸"
	openMarker     = "▾"
	selectedMarker = "✓"
	ellipsis       = "…"
)

// hit is what a rendered row belongs to. option is nil for the field row.
type hit struct {
	field  int
	option *option.Option
}

// View renders the current state of the model.
func (m Model) View() string {
	lines, _ := m.render()
	sections := []string{
		strings.Join(lines, "\n"),
		footerStyle.Render(m.help.View(m.keys)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) hitAt(row int) (hit, bool) {
	_, hits := m.render()
	h, ok := hits[row]
	return h, ok
}

// render lays the form out one terminal row per line and records which
// rows are interactive.
func (m Model) render() ([]string, map[int]hit) {
	var lines []string
	hits := make(map[int]hit)

	title := m.title
	if strings.TrimSpace(title) == "" {
		title = "Select"
	}
	lines = append(lines, titleStyle.Render(title), "")

	focused := m.focusedIndex()
	width := m.fieldWidth()

	for i, f := range m.fields {
		if i > 0 {
			lines = append(lines, "")
		}

		label, box := labelStyle, fieldStyle
		if i == focused {
			label, box = focusedLabelStyle, focusedFieldStyle
		}
		lines = append(lines, label.Render(f.label))

		marker := closedMarker
		if f.ctrl.IsOpen() {
			marker = openMarker
		}
		hits[len(lines)] = hit{field: i}
		lines = append(lines, box.Render(marker+" "+truncate(f.ctrl.DisplayLabel(), width-2)))

		if !f.ctrl.IsOpen() {
			continue
		}
		list := f.ctrl.Options()
		last := f.ctrl.ScrollTop() + f.ctrl.ViewHeight()
		if total := list.TotalHeight(); last > total {
			last = total
		}
		for row := f.ctrl.ScrollTop(); row < last; row++ {
			o := list.AtRow(row)
			if o == nil {
				break
			}
			hits[len(lines)] = hit{field: i, option: o}
			if list.Top(o) != row {
				lines = append(lines, optionStyle.Render(""))
				continue
			}
			lines = append(lines, renderOption(o, width))
		}
	}

	return lines, hits
}

func renderOption(o *option.Option, width int) string {
	mark := " "
	if o.Selected() {
		mark = selectedMarker
	}
	text := mark + " " + truncate(o.Label(), width-4)

	switch {
	case o.Disabled():
		return disabledStyle.Render(text)
	case o.Highlighted():
		return highlightedStyle.Render(text)
	default:
		return optionStyle.Render(text)
	}
}

func (m Model) fieldWidth() int {
	w := m.width - 4
	if w > 48 {
		w = 48
	}
	if w < 12 {
		w = 12
	}
	return w
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}
