// Package events carries the notifications options send to the control that
// owns them.
package events

import "github.com/alexisbeaulieu97/selectbox/internal/dom"

// Kind identifies a notification type.
type Kind string

const (
	// KindSelect is raised when an option is activated.
	KindSelect Kind = "select"
	// KindHighlight is raised when the pointer moves onto an option.
	KindHighlight Kind = "highlight"
	// KindChange is raised when the set of options changes structurally
	// (insertion, removal) or an option's selectability changes.
	KindChange Kind = "change"
)

// Event is a typed notification with the element that raised it.
type Event interface {
	Kind() Kind
	Target() dom.Element
}

// Select asks the owner to commit Source as the selection.
type Select struct {
	Source dom.Element
}

func (Select) Kind() Kind { return KindSelect }

func (e Select) Target() dom.Element { return e.Source }

// Highlight asks the owner to highlight Source.
type Highlight struct {
	Source dom.Element
}

func (Highlight) Kind() Kind { return KindHighlight }

func (e Highlight) Target() dom.Element { return e.Source }

// Change reports a structural change of the option set. Source is the option
// that was inserted, removed or toggled, when there is a single one.
type Change struct {
	Source dom.Element
}

func (Change) Kind() Kind { return KindChange }

func (e Change) Target() dom.Element { return e.Source }
