package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/selectbox/internal/config"
	"github.com/alexisbeaulieu97/selectbox/internal/dom"
)

func TestViewShowsFieldsClosed(t *testing.T) {
	t.Parallel()

	m := NewModel(testForm(), Options{})
	out := m.View()

	require.Contains(t, out, "Order")
	require.Contains(t, out, "Fruit")
	require.Contains(t, out, "size")
	require.Contains(t, out, closedMarker+" Apples")
	require.Contains(t, out, closedMarker+" Large")
	require.NotContains(t, out, "Bananas")
	require.Contains(t, out, "submit")
}

func TestViewShowsOpenList(t *testing.T) {
	t.Parallel()

	m := NewModel(testForm(), Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	out := m.View()

	require.Contains(t, out, openMarker+" Apples")
	require.Contains(t, out, selectedMarker+" Apples")
	require.Contains(t, out, "Mangos")
	require.Contains(t, out, "Bananas")
}

func TestViewDefaultTitle(t *testing.T) {
	t.Parallel()

	form := testForm()
	form.Title = ""
	require.Contains(t, NewModel(form, Options{}).View(), "Select")
}

func TestRenderRowsMatchHits(t *testing.T) {
	t.Parallel()

	m := NewModel(testForm(), Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	lines, hits := m.render()

	require.Len(t, lines, 10)
	require.Equal(t, hit{field: 0}, hits[3])
	require.Equal(t, "Apples", hits[4].option.Label())
	require.Equal(t, "Bananas", hits[6].option.Label())
	require.Equal(t, hit{field: 1}, hits[9])
	_, ok := hits[7]
	require.False(t, ok)
}

func TestViewTruncatesLongLabels(t *testing.T) {
	t.Parallel()

	form := &config.Form{Fields: []config.Field{{
		Name:    "long",
		Options: []config.Option{{Label: strings.Repeat("x", 80)}},
	}}}
	m := NewModel(form, Options{Width: 20})
	out := m.View()

	require.Contains(t, out, ellipsis)
	require.NotContains(t, out, strings.Repeat("x", 80))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", truncate("Apples", 0))
	require.Equal(t, "Apples", truncate("Apples", 10))
	require.Equal(t, "App…", truncate("Apples", 4))
}

func TestTranslateKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		msg  tea.KeyMsg
		want dom.Key
		ok   bool
	}{
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: dom.Key{Name: dom.KeyArrowUp}, ok: true},
		{name: "alt down", msg: tea.KeyMsg{Type: tea.KeyDown, Alt: true}, want: dom.Key{Name: dom.KeyArrowDown, Alt: true}, ok: true},
		{name: "ctrl down", msg: tea.KeyMsg{Type: tea.KeyCtrlDown}, want: dom.Key{Name: dom.KeyArrowDown, Ctrl: true}, ok: true},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: dom.Key{Name: dom.KeyEnter}, ok: true},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace}, want: dom.Key{Name: dom.KeySpace}, ok: true},
		{name: "escape", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: dom.Key{Name: dom.KeyEscape}, ok: true},
		{name: "shift tab", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: dom.Key{Name: dom.KeyTab, Shift: true}, ok: true},
		{name: "page down", msg: tea.KeyMsg{Type: tea.KeyPgDown}, want: dom.Key{Name: dom.KeyPageDown}, ok: true},
		{name: "letter", msg: runes("b"), want: dom.Key{Name: "b"}, ok: true},
		{name: "paste", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Paste: true}},
		{name: "several runes", msg: runes("bl")},
		{name: "function key", msg: tea.KeyMsg{Type: tea.KeyF5}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := translateKey(tc.msg)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}
