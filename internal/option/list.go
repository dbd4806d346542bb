package option

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/selectbox/internal/events"
)

// List is the ordered set of options assigned to a control. Order is document
// order and is authoritative for navigation and default selection.
type List struct {
	options    []*Option
	dispatcher *events.Dispatcher
}

// NewList creates an empty list whose options publish on d.
func NewList(d *events.Dispatcher) *List {
	return &List{dispatcher: d}
}

// Dispatcher returns the dispatcher options publish on.
func (l *List) Dispatcher() *events.Dispatcher {
	return l.dispatcher
}

// Append adds options at the end. See Insert.
func (l *List) Append(opts ...*Option) {
	l.Insert(len(l.options), opts...)
}

// Insert adds options before index (clamped to the list bounds). Options that
// already belong to a list are moved, and an option passed more than once is
// inserted once, at its first position. Options without an id get a generated
// one. A single change notification is published afterwards.
func (l *List) Insert(index int, opts ...*Option) {
	if len(opts) == 0 {
		return
	}

	incoming := make([]*Option, 0, len(opts))
	seen := make(map[*Option]struct{}, len(opts))
	for _, o := range opts {
		if o == nil {
			continue
		}
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		if previous := o.list; previous != nil {
			if previous == l {
				if i := l.IndexOf(o); i >= 0 && i < index {
					index--
				}
			}
			previous.detach(o)
			if previous != l {
				previous.publishChange([]*Option{o})
			}
		}
		if o.ID() == "" {
			o.SetID("option-" + uuid.NewString())
		}
		o.list = l
		incoming = append(incoming, o)
	}
	if len(incoming) == 0 {
		return
	}

	if index < 0 {
		index = 0
	}
	if index > len(l.options) {
		index = len(l.options)
	}

	next := make([]*Option, 0, len(l.options)+len(incoming))
	next = append(next, l.options[:index]...)
	next = append(next, incoming...)
	next = append(next, l.options[index:]...)
	l.options = next

	l.publishChange(incoming)
}

// Remove detaches o from the list and reports whether it was present. A
// detached option loses its highlight; its selected flag is kept.
func (l *List) Remove(o *Option) bool {
	if o == nil || o.list != l {
		return false
	}
	l.detach(o)
	l.publishChange([]*Option{o})
	return true
}

// Clear removes every option.
func (l *List) Clear() {
	if len(l.options) == 0 {
		return
	}
	removed := l.options
	for _, o := range removed {
		o.list = nil
		o.SetHighlighted(false)
	}
	l.options = nil
	l.publishChange(removed)
}

// Options returns the options in document order.
func (l *List) Options() []*Option {
	clone := make([]*Option, len(l.options))
	copy(clone, l.options)
	return clone
}

// Len returns the number of options.
func (l *List) Len() int {
	return len(l.options)
}

// At returns the option at index i, or nil when out of range.
func (l *List) At(i int) *Option {
	if i < 0 || i >= len(l.options) {
		return nil
	}
	return l.options[i]
}

// IndexOf returns the position of o, or -1.
func (l *List) IndexOf(o *Option) int {
	for i, candidate := range l.options {
		if candidate == o {
			return i
		}
	}
	return -1
}

// Contains reports whether o belongs to the list.
func (l *List) Contains(o *Option) bool {
	return o != nil && o.list == l
}

// Next returns the option after o, or nil.
func (l *List) Next(o *Option) *Option {
	i := l.IndexOf(o)
	if i < 0 {
		return nil
	}
	return l.At(i + 1)
}

// Previous returns the option before o, or nil.
func (l *List) Previous(o *Option) *Option {
	i := l.IndexOf(o)
	if i < 0 {
		return nil
	}
	return l.At(i - 1)
}

// Top returns the row offset of o within the options list, or -1.
func (l *List) Top(o *Option) int {
	top := 0
	for _, candidate := range l.options {
		if candidate == o {
			return top
		}
		top += candidate.Height()
	}
	return -1
}

// TotalHeight returns the number of rows all options occupy.
func (l *List) TotalHeight() int {
	total := 0
	for _, o := range l.options {
		total += o.Height()
	}
	return total
}

// AtRow returns the option rendered at the given row offset, or nil.
func (l *List) AtRow(row int) *Option {
	if row < 0 {
		return nil
	}
	top := 0
	for _, o := range l.options {
		if row < top+o.Height() {
			return o
		}
		top += o.Height()
	}
	return nil
}

func (l *List) detach(o *Option) {
	i := l.IndexOf(o)
	if i >= 0 {
		l.options = append(l.options[:i:i], l.options[i+1:]...)
	}
	o.list = nil
	o.SetHighlighted(false)
}

func (l *List) publishChange(changed []*Option) {
	var source *Option
	if len(changed) == 1 {
		source = changed[0]
	}
	if source == nil {
		l.dispatcher.Publish(events.Change{})
		return
	}
	l.dispatcher.Publish(events.Change{Source: source})
}
