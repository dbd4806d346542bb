package listbox

import (
	"strings"

	"github.com/alexisbeaulieu97/selectbox/internal/option"
)

// Typeahead feeds one printable character into the search buffer.
//
// The buffer plus the new character is matched case-insensitively against
// option label prefixes first. Failing that, the new character alone is
// tried and becomes the whole buffer. With no match at all the buffer is
// discarded. A match is selected while closed and highlighted while open.
// Each keystroke restarts the expiry timer.
func (c *Controller) Typeahead(key string) {
	if key == "" {
		return
	}
	char := strings.ToLower(key)
	filter := c.typeahead + char

	var full, single *option.Option
	for _, o := range c.options.Options() {
		if !o.Selectable() {
			continue
		}
		label := strings.ToLower(o.Label())
		if strings.HasPrefix(label, filter) {
			full = o
			break
		}
		if single == nil && strings.HasPrefix(label, char) {
			single = o
		}
	}

	c.typeaheadToken++
	switch {
	case full != nil:
		c.typeahead = filter
		c.applyMatch(full)
	case single != nil:
		c.typeahead = char
		c.applyMatch(single)
	default:
		c.typeahead = ""
		c.logger.Debugf("typeahead %q matched nothing", filter)
		return
	}
	c.schedule(TaskTypeaheadExpire, c.typeaheadToken, c.typeaheadTimeout)
}

func (c *Controller) applyMatch(o *option.Option) {
	if c.open {
		c.moveTo(o)
		return
	}
	c.Select(o)
}
