package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case taskMsg:
		if msg.task.Owner != nil {
			msg.task.Owner.Run(msg.task, m.focus.active)
		}
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			m.finish()
			return m, cmd
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, m.scheduler.drain()
}

// handleKey returns a non-nil command only when the program should quit.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelled = true
		return tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.submitted = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	if i := m.focusedIndex(); i >= 0 {
		if k, ok := translateKey(msg); ok && m.fields[i].ctrl.KeyDown(k) {
			return nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		m.cycleFocus(-1)
	}
	return nil
}

func (m *Model) finish() {
	for _, f := range m.fields {
		f.ctrl.Close()
	}
	if m.submitted {
		m.logger.WithFields(map[string]any{"fields": len(m.fields)}).Info("form submitted")
	} else {
		m.logger.Info("form cancelled")
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	hit, ok := m.hitAt(msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		if ok && hit.option != nil {
			hit.option.PointerMove()
		}
	case msg.Button == tea.MouseButtonWheelUp:
		if ok {
			m.fields[hit.field].ctrl.ScrollBy(-1)
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if ok {
			m.fields[hit.field].ctrl.ScrollBy(1)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !ok {
			m.moveFocus(nil)
			return
		}
		ctrl := m.fields[hit.field].ctrl
		if hit.option == nil {
			m.moveFocus(ctrl)
			ctrl.Click()
			return
		}
		if hit.option.PointerDown() {
			return
		}
		m.moveFocus(hit.option)
		hit.option.Click()
	}
}
