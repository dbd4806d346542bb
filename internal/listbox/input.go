package listbox

import "github.com/alexisbeaulieu97/selectbox/internal/dom"

// KeyDown handles a key pressed while the controller has focus and reports
// whether it was consumed. Unconsumed keys keep their default host behavior.
func (c *Controller) KeyDown(key dom.Key) bool {
	if !c.open {
		return c.closedKeyDown(key)
	}

	switch {
	case key.IsEscape():
		c.Cancel()
	case key.Name == dom.KeyArrowDown:
		c.HighlightNext(key.Modified())
	case key.Name == dom.KeyArrowUp:
		c.HighlightPrevious(key.Modified())
	case key.Name == dom.KeyHome:
		c.HighlightFirst()
	case key.Name == dom.KeyEnd:
		c.HighlightLast()
	case key.Name == dom.KeyPageDown:
		c.HighlightPageDown()
	case key.Name == dom.KeyPageUp:
		c.HighlightPageUp()
	case key.IsActivation() && !key.Modified():
		if h := c.HighlightedOption(); h != nil {
			h.Activate()
		} else {
			c.Close()
		}
	case key.Name == dom.KeyTab:
		c.Close()
		return false
	case key.Printable():
		c.Typeahead(key.Name)
	default:
		return false
	}
	return true
}

func (c *Controller) closedKeyDown(key dom.Key) bool {
	switch {
	case key.IsActivation() && !key.Modified(),
		key.Name == dom.KeyArrowDown,
		key.Name == dom.KeyArrowUp:
		c.Open()
		return true
	case key.Printable():
		c.Typeahead(key.Name)
		return true
	}
	return false
}

// Click handles a pointer click on the field.
func (c *Controller) Click() {
	c.Toggle()
}

// FocusOut records that focus left the controller or one of its options.
// Whether the list closes is decided once the focus change has settled; see
// Run.
func (c *Controller) FocusOut() {
	c.blurToken++
	c.schedule(TaskResolveBlur, c.blurToken, 0)
}
