package listbox

import "github.com/alexisbeaulieu97/selectbox/internal/option"

// HighlightNext moves the highlight to the next selectable option, or to the
// last one when jump is set. Disabled options are skipped. At the end of the
// list the highlight stays put unless wrapping is enabled.
func (c *Controller) HighlightNext(jump bool) {
	if jump {
		c.HighlightLast()
		return
	}
	c.step(1)
}

// HighlightPrevious mirrors HighlightNext towards the start of the list.
func (c *Controller) HighlightPrevious(jump bool) {
	if jump {
		c.HighlightFirst()
		return
	}
	c.step(-1)
}

// HighlightFirst highlights the first selectable option.
func (c *Controller) HighlightFirst() {
	c.moveTo(c.firstSelectable())
}

// HighlightLast highlights the last selectable option.
func (c *Controller) HighlightLast() {
	c.moveTo(c.lastSelectable())
}

// HighlightPageDown moves the highlight forward by up to one view height.
func (c *Controller) HighlightPageDown() {
	c.page(1)
}

// HighlightPageUp moves the highlight back by up to one view height.
func (c *Controller) HighlightPageUp() {
	c.page(-1)
}

// anchor is where relative navigation starts from.
func (c *Controller) anchor() *option.Option {
	if h := c.HighlightedOption(); h != nil {
		return h
	}
	return c.valueOption()
}

func sibling(o *option.Option, dir int) *option.Option {
	if dir < 0 {
		return o.Previous()
	}
	return o.Next()
}

func (c *Controller) step(dir int) {
	from := c.anchor()
	if from == nil {
		return
	}

	for o := sibling(from, dir); o != nil; o = sibling(o, dir) {
		if o.Selectable() {
			c.moveTo(o)
			return
		}
	}

	if c.wrap {
		if dir < 0 {
			c.moveTo(c.lastSelectable())
		} else {
			c.moveTo(c.firstSelectable())
		}
		return
	}
	c.moveTo(from)
}

func (c *Controller) page(dir int) {
	from := c.anchor()
	if from == nil {
		return
	}

	origin := c.options.Top(from)
	var target *option.Option
	for o := sibling(from, dir); o != nil; o = sibling(o, dir) {
		distance := c.options.Top(o) - origin
		if distance < 0 {
			distance = -distance
		}
		if distance >= c.viewHeight && target != nil {
			break
		}
		if o.Selectable() {
			target = o
		}
	}
	if target == nil {
		target = from
	}
	c.moveTo(target)
}

func (c *Controller) moveTo(o *option.Option) {
	if o == nil {
		return
	}
	c.Highlight(o)
	c.scrollIntoView(o)
}
