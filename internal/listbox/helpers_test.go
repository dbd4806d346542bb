package listbox

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/selectbox/internal/dom"
	"github.com/alexisbeaulieu97/selectbox/internal/option"
)

type focusRecorder struct {
	targets []dom.Element
}

func (f *focusRecorder) Focus(target dom.Element) {
	f.targets = append(f.targets, target)
}

type harness struct {
	t         *testing.T
	c         *Controller
	scheduler *ManualScheduler
	focus     *focusRecorder
	active    dom.Element
}

func newHarness(t *testing.T, opts Options, options ...*option.Option) *harness {
	t.Helper()
	scheduler := NewManualScheduler()
	focus := &focusRecorder{}
	opts.Scheduler = scheduler
	opts.Focus = focus
	c := New(opts)
	c.Options().Append(options...)
	t.Cleanup(c.Release)
	return &harness{t: t, c: c, scheduler: scheduler, focus: focus, active: c}
}

// basicFruits mirrors a plain list where "blo" matches nothing.
func basicFruits(t *testing.T, opts Options) *harness {
	t.Helper()
	return newHarness(t, opts,
		option.New("Apples"),
		option.New("Mangos"),
		option.New("Bananas"),
		option.New("Blueberries"),
		option.New("Cherries"),
		option.New("Oranges"),
	)
}

// disabledFruits starts with a selectable option followed by a disabled one
// and ends with a disabled one.
func disabledFruits(t *testing.T, opts Options) *harness {
	t.Helper()
	return newHarness(t, opts,
		option.New("Blackberries"),
		option.New("Raspberries", option.WithDisabled(true)),
		option.New("Cranberries"),
		option.New("Blueberries"),
		option.New("Pineapples"),
		option.New("Kiwis", option.WithDisabled(true)),
	)
}

func manyOptions(t *testing.T, count, viewHeight int) *harness {
	t.Helper()
	opts := make([]*option.Option, 0, count)
	for i := 0; i < count; i++ {
		opts = append(opts, option.New(fmt.Sprintf("Option %02d", i)))
	}
	return newHarness(t, Options{ViewHeight: viewHeight}, opts...)
}

func (h *harness) press(names ...string) {
	h.t.Helper()
	for _, name := range names {
		h.c.KeyDown(dom.Key{Name: name})
	}
}

func (h *harness) advance(d time.Duration) {
	h.t.Helper()
	for _, task := range h.scheduler.Advance(d) {
		task.Owner.Run(task, h.active)
	}
}

func (h *harness) option(label string) *option.Option {
	h.t.Helper()
	for _, o := range h.c.Options().Options() {
		if o.Label() == label {
			return o
		}
	}
	h.t.Fatalf("no option labelled %q", label)
	return nil
}

func (h *harness) requireSelected(label string) {
	h.t.Helper()
	selected := h.c.SelectedOption()
	require.NotNil(h.t, selected, "expected %q to be selected", label)
	require.Equal(h.t, label, selected.Label())
	require.Equal(h.t, label, h.c.DisplayLabel())
	count := 0
	for _, o := range h.c.Options().Options() {
		if o.Selected() {
			count++
		}
	}
	require.Equal(h.t, 1, count, "exactly one option must be selected")
}

func (h *harness) requireHighlighted(label string) {
	h.t.Helper()
	highlighted := h.c.HighlightedOption()
	require.NotNil(h.t, highlighted, "expected %q to be highlighted", label)
	require.Equal(h.t, label, highlighted.Label())
	count := 0
	for _, o := range h.c.Options().Options() {
		if o.Highlighted() {
			count++
		}
	}
	require.Equal(h.t, 1, count, "exactly one option must be highlighted")
}
