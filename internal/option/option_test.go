package option

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/selectbox/internal/dom"
	"github.com/alexisbeaulieu97/selectbox/internal/events"
)

type recorder struct {
	events []events.Event
}

func (r *recorder) attach(d *events.Dispatcher) {
	for _, kind := range []events.Kind{events.KindSelect, events.KindHighlight, events.KindChange} {
		d.Subscribe(kind, func(e events.Event) { r.events = append(r.events, e) })
	}
}

func (r *recorder) kinds() []events.Kind {
	out := make([]events.Kind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind())
	}
	return out
}

func newAttached(t *testing.T, opts ...*Option) (*List, *recorder) {
	t.Helper()
	d := events.NewDispatcher(nil)
	l := NewList(d)
	l.Append(opts...)
	rec := &recorder{}
	rec.attach(d)
	return l, rec
}

func TestNewOptionDefaults(t *testing.T) {
	t.Parallel()

	o := New("Apples")
	require.Equal(t, "Apples", o.Label())
	require.Equal(t, "Apples", o.Value())
	require.False(t, o.Selected())
	require.False(t, o.Highlighted())
	require.False(t, o.Disabled())
	require.True(t, o.Selectable())
	require.Equal(t, 1, o.Height())
	require.Equal(t, Role, o.Attrs().Value(dom.AttrRole))
	require.Equal(t, "false", o.Attrs().Value(dom.AttrAriaSelected))
	require.Nil(t, o.List())
	require.Nil(t, o.Next())
	require.Nil(t, o.Previous())
}

func TestValueRoundTrip(t *testing.T) {
	t.Parallel()

	o := New("Apples", WithValue("apple"))
	require.Equal(t, "apple", o.Value())

	o.SetValue("")
	require.Equal(t, "Apples", o.Value())
	require.False(t, o.Attrs().Has(dom.AttrValue))

	o.SetLabel("Green apples")
	require.Equal(t, "Green apples", o.Value())
}

func TestSelectedMirrorsAria(t *testing.T) {
	t.Parallel()

	o := New("Apples")
	o.SetSelected(true)
	require.True(t, o.Selected())
	require.True(t, o.Attrs().Has(dom.AttrSelected))
	require.Equal(t, "true", o.Attrs().Value(dom.AttrAriaSelected))

	o.SetSelected(false)
	require.False(t, o.Selected())
	require.False(t, o.Attrs().Has(dom.AttrSelected))
	require.Equal(t, "false", o.Attrs().Value(dom.AttrAriaSelected))
}

func TestDisabledOptionRefusesSelectionAndHighlight(t *testing.T) {
	t.Parallel()

	o := New("Mangos", WithDisabled(true))
	o.SetSelected(true)
	o.SetHighlighted(true)
	require.False(t, o.Selected())
	require.False(t, o.Highlighted())
	require.True(t, o.PointerDown())
	require.Equal(t, "true", o.Attrs().Value(dom.AttrAriaDisabled))
}

func TestDisablingClearsState(t *testing.T) {
	t.Parallel()

	o := New("Mangos", WithSelected(true))
	o.SetHighlighted(true)
	o.SetDisabled(true)

	require.False(t, o.Selected())
	require.False(t, o.Highlighted())
	require.False(t, o.Selectable())

	o.SetDisabled(false)
	require.True(t, o.Selectable())
	require.False(t, o.Attrs().Has(dom.AttrAriaDisabled))
	require.False(t, o.PointerDown())
}

func TestHeightClamp(t *testing.T) {
	t.Parallel()

	o := New("Tall", WithHeight(3))
	require.Equal(t, 3, o.Height())
	o.SetHeight(0)
	require.Equal(t, 1, o.Height())
}

func TestClickEmitsSelectOnlyWhenSelectable(t *testing.T) {
	t.Parallel()

	enabled := New("Apples")
	disabled := New("Mangos", WithDisabled(true))
	_, rec := newAttached(t, enabled, disabled)

	enabled.Click()
	disabled.Click()

	require.Equal(t, []events.Kind{events.KindSelect}, rec.kinds())
	require.Same(t, enabled, rec.events[0].Target())
}

func TestPointerMoveEmitsHighlightOnce(t *testing.T) {
	t.Parallel()

	o := New("Apples")
	disabled := New("Mangos", WithDisabled(true))
	_, rec := newAttached(t, o, disabled)

	o.PointerMove()
	o.SetHighlighted(true)
	o.PointerMove()
	disabled.PointerMove()

	require.Equal(t, []events.Kind{events.KindHighlight}, rec.kinds())
}

func TestKeyDownActivates(t *testing.T) {
	t.Parallel()

	o := New("Apples")
	_, rec := newAttached(t, o)

	require.True(t, o.KeyDown(dom.Key{Name: dom.KeyEnter}))
	require.True(t, o.KeyDown(dom.Key{Name: dom.KeySpace}))
	require.False(t, o.KeyDown(dom.Key{Name: "a"}))
	require.Equal(t, []events.Kind{events.KindSelect, events.KindSelect}, rec.kinds())
}

func TestDetachedOptionEmitsNothing(t *testing.T) {
	t.Parallel()

	o := New("Apples")
	require.NotPanics(t, func() {
		o.Click()
		o.PointerMove()
		o.SetDisabled(true)
		o.SetLabel("Pears")
	})
}

func TestDisableAndRelabelNotifyList(t *testing.T) {
	t.Parallel()

	o := New("Apples")
	_, rec := newAttached(t, o)

	o.SetDisabled(true)
	o.SetDisabled(true)
	o.SetLabel("Pears")
	o.SetLabel("Pears")

	require.Equal(t, []events.Kind{events.KindChange, events.KindChange}, rec.kinds())
}

func TestListAssignsIDs(t *testing.T) {
	t.Parallel()

	named := New("Apples", WithID("apples"))
	anonymous := New("Mangos")
	newAttached(t, named, anonymous)

	require.Equal(t, "apples", named.ID())
	require.True(t, strings.HasPrefix(anonymous.ID(), "option-"))
}
