// Package tui hosts dropdown controllers in a bubbletea program: it owns
// focus, turns terminal input into controller calls and renders the form.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/selectbox/internal/config"
	"github.com/alexisbeaulieu97/selectbox/internal/dom"
	"github.com/alexisbeaulieu97/selectbox/internal/listbox"
	"github.com/alexisbeaulieu97/selectbox/internal/logger"
)

const defaultWidth = 40

// Options configures a Model.
type Options struct {
	Logger *logger.Logger
	Width  int
}

// FieldValue is a submitted field.
type FieldValue struct {
	Name  string
	Value string
}

type field struct {
	name  string
	label string
	ctrl  *listbox.Controller
}

// focusTracker records the element holding focus. Controllers ask it to
// focus them after a commit.
type focusTracker struct {
	active dom.Element
}

func (f *focusTracker) Focus(target dom.Element) {
	f.active = target
}

// Model contains the bubbletea state for a form of dropdowns.
type Model struct {
	title     string
	fields    []*field
	focus     *focusTracker
	scheduler *cmdScheduler
	keys      keyMap
	help      help.Model
	logger    *logger.Logger
	width     int
	submitted bool
	cancelled bool
}

// NewModel builds one controller per form field and focuses the first one.
func NewModel(form *config.Form, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	m := Model{
		focus:     &focusTracker{},
		scheduler: &cmdScheduler{},
		keys:      defaultKeyMap(),
		help:      help.New(),
		logger:    log.WithFields(map[string]any{"component": "tui"}),
		width:     width,
	}
	if form == nil {
		return m
	}

	m.title = form.Title
	for _, def := range form.Fields {
		base := listbox.Options{
			Scheduler: m.scheduler,
			Focus:     m.focus,
			Logger:    log.WithFields(map[string]any{"field": def.Name}),
		}
		label := def.Label
		if label == "" {
			label = def.Name
		}
		m.fields = append(m.fields, &field{
			name:  def.Name,
			label: label,
			ctrl:  def.NewController(form.Settings.ControllerOptions(base)),
		})
	}
	if len(m.fields) > 0 {
		m.focus.Focus(m.fields[0].ctrl)
	}
	return m
}

// Init starts the bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Submitted reports whether the user confirmed the form.
func (m Model) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user quit without submitting.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Values returns the current value of every field in form order.
func (m Model) Values() []FieldValue {
	values := make([]FieldValue, 0, len(m.fields))
	for _, f := range m.fields {
		values = append(values, FieldValue{Name: f.name, Value: f.ctrl.Value()})
	}
	return values
}

// Controller returns the controller of the named field, or nil.
func (m Model) Controller(name string) *listbox.Controller {
	for _, f := range m.fields {
		if f.name == name {
			return f.ctrl
		}
	}
	return nil
}

// Focused returns the name of the field holding focus, or "".
func (m Model) Focused() string {
	if i := m.focusedIndex(); i >= 0 {
		return m.fields[i].name
	}
	return ""
}

func (m Model) focusedIndex() int {
	for i, f := range m.fields {
		if f.ctrl.Contains(m.focus.active) {
			return i
		}
	}
	return -1
}

// moveFocus hands focus to target and tells the field losing it.
func (m Model) moveFocus(target dom.Element) {
	if m.focus.active == target {
		return
	}
	if i := m.focusedIndex(); i >= 0 {
		m.fields[i].ctrl.FocusOut()
	}
	m.focus.Focus(target)
}

func (m Model) cycleFocus(dir int) {
	if len(m.fields) == 0 {
		return
	}
	current := m.focusedIndex()
	var next int
	switch {
	case current < 0 && dir < 0:
		next = len(m.fields) - 1
	case current < 0:
		next = 0
	default:
		next = (current + dir + len(m.fields)) % len(m.fields)
	}
	m.moveFocus(m.fields[next].ctrl)
	m.logger.Debugf("focus moved to %q", m.fields[next].name)
}
