// Package option implements the selectable entries of a select control and
// the ordered list that holds them.
package option

import (
	"github.com/alexisbeaulieu97/selectbox/internal/dom"
	"github.com/alexisbeaulieu97/selectbox/internal/events"
)

// Role is the ARIA role every option carries.
const Role = "option"

// Option is a single selectable entry. Its selected and highlighted flags
// are written by the owning controller; the option itself only raises
// notifications.
type Option struct {
	attrs  dom.Attributes
	label  string
	height int
	list   *List
}

// Opt configures an Option at construction time.
type Opt func(*Option)

// WithValue sets an explicit value.
func WithValue(value string) Opt {
	return func(o *Option) { o.SetValue(value) }
}

// WithDisabled marks the option as not selectable.
func WithDisabled(disabled bool) Opt {
	return func(o *Option) { o.SetDisabled(disabled) }
}

// WithSelected sets the initial selected flag.
func WithSelected(selected bool) Opt {
	return func(o *Option) { o.SetSelected(selected) }
}

// WithID sets the element id.
func WithID(id string) Opt {
	return func(o *Option) { o.SetID(id) }
}

// WithHeight sets the number of rows the option occupies.
func WithHeight(rows int) Opt {
	return func(o *Option) { o.SetHeight(rows) }
}

// New creates a detached option with the given label.
func New(label string, opts ...Opt) *Option {
	o := &Option{label: label, height: 1}
	o.attrs.Set(dom.AttrRole, Role)
	o.attrs.Set(dom.AttrAriaSelected, dom.BoolString(false))
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Attrs exposes the reflected attributes.
func (o *Option) Attrs() *dom.Attributes {
	return &o.attrs
}

// ID returns the element id, or "" when none is set.
func (o *Option) ID() string {
	return o.attrs.Value(dom.AttrID)
}

// SetID sets the element id; "" removes it.
func (o *Option) SetID(id string) {
	if id == "" {
		o.attrs.Remove(dom.AttrID)
		return
	}
	o.attrs.Set(dom.AttrID, id)
}

// Label returns the text content.
func (o *Option) Label() string {
	return o.label
}

// SetLabel replaces the text content.
func (o *Option) SetLabel(label string) {
	if o.label == label {
		return
	}
	o.label = label
	o.notifyChange()
}

// Value returns the explicit value, falling back to the label.
func (o *Option) Value() string {
	if value, ok := o.attrs.Get(dom.AttrValue); ok {
		return value
	}
	return o.label
}

// SetValue sets the explicit value; "" removes the override.
func (o *Option) SetValue(value string) {
	if value == "" {
		o.attrs.Remove(dom.AttrValue)
		return
	}
	o.attrs.Set(dom.AttrValue, value)
}

// Selected reports the persisted selected flag.
func (o *Option) Selected() bool {
	return o.attrs.Has(dom.AttrSelected)
}

// SetSelected writes the selected flag and its ARIA mirror. A disabled option
// never becomes selected.
func (o *Option) SetSelected(selected bool) {
	if selected && o.Disabled() {
		return
	}
	o.attrs.Toggle(dom.AttrSelected, selected)
	o.attrs.Set(dom.AttrAriaSelected, dom.BoolString(selected))
}

// Highlighted reports the presentational highlight flag. It is independent
// of input focus.
func (o *Option) Highlighted() bool {
	return o.attrs.Has(dom.AttrHighlighted)
}

// SetHighlighted writes the highlight flag. A disabled option is never
// highlighted.
func (o *Option) SetHighlighted(highlighted bool) {
	if highlighted && o.Disabled() {
		return
	}
	o.attrs.Toggle(dom.AttrHighlighted, highlighted)
}

// Disabled reports whether the option is disabled.
func (o *Option) Disabled() bool {
	return o.attrs.Has(dom.AttrDisabled)
}

// SetDisabled toggles the disabled state. Disabling drops the selected and
// highlighted flags and notifies the owning list.
func (o *Option) SetDisabled(disabled bool) {
	if o.Disabled() == disabled {
		return
	}
	if disabled {
		o.SetSelected(false)
		o.SetHighlighted(false)
		o.attrs.Set(dom.AttrDisabled, "")
		o.attrs.Set(dom.AttrAriaDisabled, dom.BoolString(true))
	} else {
		o.attrs.Remove(dom.AttrDisabled)
		o.attrs.Remove(dom.AttrAriaDisabled)
	}
	o.notifyChange()
}

// Selectable reports whether the option may be highlighted or selected.
func (o *Option) Selectable() bool {
	return !o.Disabled()
}

// Height returns the number of rows the option occupies in the options list.
func (o *Option) Height() int {
	return o.height
}

// SetHeight sets the row count; values below one are clamped to one.
func (o *Option) SetHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	o.height = rows
}

// List returns the list the option belongs to, or nil when detached.
func (o *Option) List() *List {
	return o.list
}

// Next returns the following option in document order, or nil.
func (o *Option) Next() *Option {
	if o.list == nil {
		return nil
	}
	return o.list.Next(o)
}

// Previous returns the preceding option in document order, or nil.
func (o *Option) Previous() *Option {
	if o.list == nil {
		return nil
	}
	return o.list.Previous(o)
}

// Click handles a pointer click.
func (o *Option) Click() {
	o.Activate()
}

// Activate raises a select notification when the option is selectable.
func (o *Option) Activate() {
	if !o.Selectable() {
		return
	}
	o.emit(events.Select{Source: o})
}

// PointerMove raises a highlight notification when the pointer moves within
// a selectable option that is not highlighted yet.
func (o *Option) PointerMove() {
	if !o.Selectable() || o.Highlighted() {
		return
	}
	o.emit(events.Highlight{Source: o})
}

// PointerDown reports whether the host should suppress the focus change a
// pointer press would normally cause. Disabled options refuse focus so the
// control keeps it.
func (o *Option) PointerDown() (preventFocus bool) {
	return o.Disabled()
}

// KeyDown handles a key delivered straight to the option and reports whether
// it was consumed. Space and Enter activate.
func (o *Option) KeyDown(key dom.Key) bool {
	if !key.IsActivation() {
		return false
	}
	o.Activate()
	return true
}

func (o *Option) emit(event events.Event) {
	if o.list == nil {
		return
	}
	o.list.dispatcher.Publish(event)
}

func (o *Option) notifyChange() {
	if o.list == nil {
		return
	}
	o.list.dispatcher.Publish(events.Change{Source: o})
}
