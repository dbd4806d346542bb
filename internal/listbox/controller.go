// Package listbox implements the select controller: the open/closed state
// machine that owns a list of options and mediates selection, highlight,
// keyboard navigation and typeahead.
package listbox

import (
	"time"

	"github.com/alexisbeaulieu97/selectbox/internal/dom"
	"github.com/alexisbeaulieu97/selectbox/internal/events"
	"github.com/alexisbeaulieu97/selectbox/internal/logger"
	"github.com/alexisbeaulieu97/selectbox/internal/option"
)

const (
	// DefaultTypeaheadTimeout is the inactivity window after which the
	// typeahead buffer is discarded.
	DefaultTypeaheadTimeout = 500 * time.Millisecond
	// DefaultViewHeight is the number of option rows visible at once.
	DefaultViewHeight = 6
)

// Options configures a Controller.
type Options struct {
	// Label prefixes the accessible name.
	Label string
	// TypeaheadTimeout defaults to DefaultTypeaheadTimeout.
	TypeaheadTimeout time.Duration
	// ViewHeight defaults to DefaultViewHeight.
	ViewHeight int
	// Wrap lets directional navigation continue from the opposite end.
	Wrap bool
	// Scheduler defaults to a ManualScheduler.
	Scheduler Scheduler
	// Focus receives focus requests for the controller after a commit.
	Focus  dom.FocusRequester
	Logger *logger.Logger
}

// Controller is the dropdown as a whole. It is the sole writer of the
// selected and highlighted flags of its options and must only be used from
// the host's event loop goroutine.
type Controller struct {
	attrs     dom.Attributes
	listAttrs dom.Attributes

	options    *option.List
	dispatcher *events.Dispatcher
	subs       []events.Subscription

	scheduler        Scheduler
	focus            dom.FocusRequester
	logger           *logger.Logger
	typeaheadTimeout time.Duration
	wrap             bool

	open          bool
	openSelection *option.Option
	displayLabel  string

	typeahead      string
	typeaheadToken uint64
	blurToken      uint64

	scrollTop  int
	viewHeight int
}

// New creates a closed controller with an empty option list.
func New(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = NewManualScheduler()
	}
	timeout := opts.TypeaheadTimeout
	if timeout <= 0 {
		timeout = DefaultTypeaheadTimeout
	}
	height := opts.ViewHeight
	if height <= 0 {
		height = DefaultViewHeight
	}

	dispatcher := events.NewDispatcher(log)
	c := &Controller{
		options:          option.NewList(dispatcher),
		dispatcher:       dispatcher,
		scheduler:        scheduler,
		focus:            opts.Focus,
		logger:           log.WithFields(map[string]any{"component": "listbox"}),
		typeaheadTimeout: timeout,
		wrap:             opts.Wrap,
		viewHeight:       height,
	}

	c.attrs.Set(dom.AttrRole, "button")
	c.attrs.Set(dom.AttrAriaHasPopup, "listbox")
	c.attrs.Set(dom.AttrTabIndex, "0")
	c.listAttrs.Set(dom.AttrRole, "listbox")
	c.SetLabel(opts.Label)
	c.Close()

	c.subs = []events.Subscription{
		dispatcher.Subscribe(events.KindSelect, c.onSelect),
		dispatcher.Subscribe(events.KindHighlight, c.onHighlight),
		dispatcher.Subscribe(events.KindChange, c.onChange),
	}
	return c
}

// Release detaches the controller from its option notifications.
func (c *Controller) Release() {
	for _, sub := range c.subs {
		sub.Unsubscribe()
	}
	c.subs = nil
}

// Attrs exposes the controller's reflected attributes.
func (c *Controller) Attrs() *dom.Attributes {
	return &c.attrs
}

// ListAttributes exposes the attributes of the options container.
func (c *Controller) ListAttributes() *dom.Attributes {
	return &c.listAttrs
}

// Options returns the option list. Hosts insert and remove options through
// it; the controller reacts to every change.
func (c *Controller) Options() *option.List {
	return c.options
}

// Scheduler returns the scheduler deferred tasks are queued on.
func (c *Controller) Scheduler() Scheduler {
	return c.scheduler
}

// Contains reports whether el is the controller itself or one of its options.
func (c *Controller) Contains(el dom.Element) bool {
	switch target := el.(type) {
	case *Controller:
		return target == c
	case *option.Option:
		return c.options.Contains(target)
	default:
		return false
	}
}

// IsOpen reports whether the options list is shown.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Label returns the accessible-name prefix, or "" when unset.
func (c *Controller) Label() string {
	return c.attrs.Value(dom.AttrLabel)
}

// SetLabel sets the accessible-name prefix; "" removes it.
func (c *Controller) SetLabel(label string) {
	if label == "" {
		c.attrs.Remove(dom.AttrLabel)
	} else {
		c.attrs.Set(dom.AttrLabel, label)
	}
	c.updateLabel(c.SelectedOption())
}

// DisplayLabel returns the visible field text.
func (c *Controller) DisplayLabel() string {
	return c.displayLabel
}

// TypeaheadBuffer returns the pending typeahead buffer.
func (c *Controller) TypeaheadBuffer() string {
	return c.typeahead
}

// Open shows the options list and highlights the current value.
func (c *Controller) Open() {
	if c.open {
		return
	}
	c.open = true
	c.attrs.Set(dom.AttrAriaExpanded, dom.BoolString(true))
	c.openSelection = c.SelectedOption()

	if target := c.valueOption(); target != nil {
		c.Highlight(target)
		c.scrollIntoView(target)
	}
	c.logger.Debugf("opened with value %q", c.Value())
}

// Close hides the options list without changing the selection.
func (c *Controller) Close() {
	wasOpen := c.open
	c.open = false
	c.openSelection = nil
	c.attrs.Set(dom.AttrAriaExpanded, dom.BoolString(false))
	c.attrs.Remove(dom.AttrAriaActiveDescendant)
	for _, o := range c.options.Options() {
		o.SetHighlighted(false)
	}
	if wasOpen {
		c.logger.Debug("closed")
	}
}

// Toggle opens a closed controller and closes an open one.
func (c *Controller) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.Open()
}

// Cancel closes the controller and restores the selection it had when it
// was opened.
func (c *Controller) Cancel() {
	if !c.open {
		return
	}
	previous := c.openSelection
	if previous != nil && previous != c.SelectedOption() {
		c.Select(previous)
	}
	c.Close()
}

// Run executes a delivered task. active is the element holding focus when
// the task runs. Stale tasks and tasks for other controllers are ignored.
func (c *Controller) Run(task Task, active dom.Element) {
	if task.Owner != nil && task.Owner != c {
		return
	}
	switch task.Kind {
	case TaskTypeaheadExpire:
		if task.Token == c.typeaheadToken {
			c.typeahead = ""
		}
	case TaskResolveBlur:
		if task.Token == c.blurToken && c.open && !c.Contains(active) {
			c.Close()
		}
	}
}

func (c *Controller) schedule(kind TaskKind, token uint64, delay time.Duration) {
	c.scheduler.Schedule(delay, Task{Owner: c, Kind: kind, Token: token})
}

func (c *Controller) onSelect(e events.Event) {
	target, ok := e.Target().(*option.Option)
	if !ok || !c.options.Contains(target) {
		return
	}
	c.Select(target)
	c.Close()
	if c.focus != nil {
		c.focus.Focus(c)
	}
	c.logger.Debugf("committed %q", target.Value())
}

func (c *Controller) onHighlight(e events.Event) {
	target, ok := e.Target().(*option.Option)
	if !ok || !c.open {
		return
	}
	c.Highlight(target)
}

func (c *Controller) onChange(e events.Event) {
	// A single option arriving already selected takes over the selection.
	if target, ok := e.Target().(*option.Option); ok && c.options.Contains(target) && target.Selected() {
		c.Select(target)
	}
	c.syncSelection()
}
