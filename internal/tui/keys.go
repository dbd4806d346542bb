package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/selectbox/internal/dom"
)

// keyMap lists the form-level bindings. Bindings the dropdown handles itself
// are included for the help footer only.
type keyMap struct {
	Open      key.Binding
	Move      key.Binding
	Jump      key.Binding
	Page      key.Binding
	Commit    key.Binding
	Cancel    key.Binding
	Search    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Quit      key.Binding
	Help      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "up", "down"),
			key.WithHelp("enter/space", "open"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "move"),
		),
		Jump: key.NewBinding(
			key.WithKeys("home", "end", "alt+up", "alt+down", "ctrl+up", "ctrl+down"),
			key.WithHelp("home/end", "first/last"),
		),
		Page: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "page"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Search: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a-z", "jump to match"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.NextField, k.Submit, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Move, k.Jump, k.Page},
		{k.Commit, k.Cancel, k.Search},
		{k.NextField, k.PrevField, k.Submit, k.Quit},
	}
}

// translateKey maps a terminal key event onto the key model the dropdown
// understands. ok is false for keys it has no name for.
func translateKey(msg tea.KeyMsg) (dom.Key, bool) {
	k := dom.Key{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeyUp:
		k.Name = dom.KeyArrowUp
	case tea.KeyDown:
		k.Name = dom.KeyArrowDown
	case tea.KeyCtrlUp:
		k.Name, k.Ctrl = dom.KeyArrowUp, true
	case tea.KeyCtrlDown:
		k.Name, k.Ctrl = dom.KeyArrowDown, true
	case tea.KeyShiftUp:
		k.Name, k.Shift = dom.KeyArrowUp, true
	case tea.KeyShiftDown:
		k.Name, k.Shift = dom.KeyArrowDown, true
	case tea.KeyHome, tea.KeyCtrlHome:
		k.Name = dom.KeyHome
	case tea.KeyEnd, tea.KeyCtrlEnd:
		k.Name = dom.KeyEnd
	case tea.KeyPgUp:
		k.Name = dom.KeyPageUp
	case tea.KeyPgDown:
		k.Name = dom.KeyPageDown
	case tea.KeyEnter:
		k.Name = dom.KeyEnter
	case tea.KeySpace:
		k.Name = dom.KeySpace
	case tea.KeyEsc:
		k.Name = dom.KeyEscape
	case tea.KeyTab:
		k.Name = dom.KeyTab
	case tea.KeyShiftTab:
		k.Name, k.Shift = dom.KeyTab, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Paste {
			return dom.Key{}, false
		}
		k.Name = string(msg.Runes)
	default:
		return dom.Key{}, false
	}
	return k, true
}
