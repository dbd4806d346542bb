package listbox

import (
	"fmt"

	"github.com/alexisbeaulieu97/selectbox/internal/dom"
	"github.com/alexisbeaulieu97/selectbox/internal/option"
)

// Value returns the value of the selected option. When nothing is selected it
// falls back to the first selectable option; with none, it is "".
func (c *Controller) Value() string {
	if o := c.valueOption(); o != nil {
		return o.Value()
	}
	return ""
}

// SetValue selects the first option carrying value.
func (c *Controller) SetValue(value string) {
	c.SelectValue(value)
}

// SelectedOption returns the selected option, or nil.
func (c *Controller) SelectedOption() *option.Option {
	for _, o := range c.options.Options() {
		if o.Selected() {
			return o
		}
	}
	return nil
}

// HighlightedOption returns the highlighted option, or nil.
func (c *Controller) HighlightedOption() *option.Option {
	for _, o := range c.options.Options() {
		if o.Highlighted() {
			return o
		}
	}
	return nil
}

// Select makes o the only selected option and updates the field text and
// accessible name. Nil, foreign and disabled options are ignored.
func (c *Controller) Select(o *option.Option) {
	if o == nil || !c.options.Contains(o) || !o.Selectable() {
		return
	}
	for _, candidate := range c.options.Options() {
		candidate.SetSelected(candidate == o)
	}
	c.updateLabel(o)
}

// SelectValue selects the first option whose value equals value. An empty or
// unknown value changes nothing.
func (c *Controller) SelectValue(value string) {
	if value == "" {
		return
	}
	c.Select(c.find(value))
}

// Highlight makes o the only highlighted option. Nil, foreign and disabled
// options are ignored.
func (c *Controller) Highlight(o *option.Option) {
	if o == nil || !c.options.Contains(o) || !o.Selectable() {
		return
	}
	for _, candidate := range c.options.Options() {
		candidate.SetHighlighted(candidate == o)
	}
	if c.open && o.ID() != "" {
		c.attrs.Set(dom.AttrAriaActiveDescendant, o.ID())
	}
}

// HighlightValue highlights the first option whose value equals value.
func (c *Controller) HighlightValue(value string) {
	if value == "" {
		return
	}
	c.Highlight(c.find(value))
}

// activeOption returns the option named by aria-activedescendant when it is
// still highlighted, else the first highlighted option.
func (c *Controller) activeOption() *option.Option {
	if id := c.attrs.Value(dom.AttrAriaActiveDescendant); id != "" {
		for _, o := range c.options.Options() {
			if o.ID() == id && o.Highlighted() {
				return o
			}
		}
	}
	return c.HighlightedOption()
}

func (c *Controller) find(value string) *option.Option {
	for _, o := range c.options.Options() {
		if o.Value() == value {
			return o
		}
	}
	return nil
}

func (c *Controller) valueOption() *option.Option {
	if selected := c.SelectedOption(); selected != nil {
		return selected
	}
	return c.firstSelectable()
}

func (c *Controller) firstSelectable() *option.Option {
	for _, o := range c.options.Options() {
		if o.Selectable() {
			return o
		}
	}
	return nil
}

func (c *Controller) lastSelectable() *option.Option {
	opts := c.options.Options()
	for i := len(opts) - 1; i >= 0; i-- {
		if opts[i].Selectable() {
			return opts[i]
		}
	}
	return nil
}

// updateLabel composes the field text and accessible name from o, which may
// be nil when nothing is selected.
func (c *Controller) updateLabel(o *option.Option) {
	text := ""
	if o != nil {
		text = o.Label()
	}
	c.displayLabel = text

	label := c.Label()
	switch {
	case label != "" && text != "":
		c.attrs.Set(dom.AttrAriaLabel, fmt.Sprintf("%s: %s", label, text))
	case label != "":
		c.attrs.Set(dom.AttrAriaLabel, label)
	case text != "":
		c.attrs.Set(dom.AttrAriaLabel, text)
	default:
		c.attrs.Remove(dom.AttrAriaLabel)
	}
}

// syncSelection re-applies the effective value after the option set changed.
// Extra selected flags are cleared and the field text follows the result.
// At most one selectable option stays highlighted: the current one when it
// survived, else (while open) the selection.
func (c *Controller) syncSelection() {
	target := c.valueOption()
	if target == nil {
		for _, o := range c.options.Options() {
			o.SetSelected(false)
			o.SetHighlighted(false)
		}
		c.attrs.Remove(dom.AttrAriaActiveDescendant)
		c.updateLabel(nil)
		return
	}
	c.Select(target)

	current := c.activeOption()
	if current != nil && !current.Selectable() {
		current = nil
	}
	if current == nil && c.open {
		current = target
	}
	if current != nil {
		c.Highlight(current)
	} else {
		for _, o := range c.options.Options() {
			o.SetHighlighted(false)
		}
	}
	c.clampScroll()
}
