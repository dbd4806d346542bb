package listbox

import "github.com/alexisbeaulieu97/selectbox/internal/option"

// ScrollTop returns the first visible row of the options list.
func (c *Controller) ScrollTop() int {
	return c.scrollTop
}

// ViewHeight returns the number of visible rows.
func (c *Controller) ViewHeight() int {
	return c.viewHeight
}

// SetViewHeight changes the number of visible rows and keeps the highlighted
// option in view.
func (c *Controller) SetViewHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	c.viewHeight = rows
	c.clampScroll()
	if h := c.HighlightedOption(); h != nil {
		c.scrollIntoView(h)
	}
}

// ScrollBy moves the viewport by delta rows within the list bounds.
func (c *Controller) ScrollBy(delta int) {
	c.scrollTop += delta
	c.clampScroll()
}

// scrollIntoView adjusts the scroll offset by the minimum amount that makes
// o fully visible. An option already in view leaves it untouched.
func (c *Controller) scrollIntoView(o *option.Option) {
	top := c.options.Top(o)
	if top < 0 {
		return
	}
	bottom := top + o.Height()

	if top < c.scrollTop {
		c.scrollTop = top
	} else if bottom > c.scrollTop+c.viewHeight {
		c.scrollTop = bottom - c.viewHeight
	}
}

func (c *Controller) clampScroll() {
	limit := c.options.TotalHeight() - c.viewHeight
	if limit < 0 {
		limit = 0
	}
	if c.scrollTop > limit {
		c.scrollTop = limit
	}
	if c.scrollTop < 0 {
		c.scrollTop = 0
	}
}
