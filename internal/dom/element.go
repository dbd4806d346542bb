package dom

import (
	"unicode"
	"unicode/utf8"
)

// Element is the capability every host element exposes.
type Element interface {
	Attrs() *Attributes
}

// FocusRequester moves keyboard focus. Hosts own focus; components only ask.
type FocusRequester interface {
	Focus(target Element)
}

// Key names understood by the control. Single printable characters are
// passed through as-is (e.g. "b").
const (
	KeySpace     = " "
	KeySpacebar  = "Spacebar"
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyEsc       = "Esc"
	KeyTab       = "Tab"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyPageUp    = "PageUp"
	KeyPageDown  = "PageDown"
)

// Key is a single keydown event.
type Key struct {
	Name  string
	Alt   bool
	Ctrl  bool
	Meta  bool
	Shift bool
}

// Modified reports whether a jump modifier (meta, alt or control) is held.
func (k Key) Modified() bool {
	return k.Alt || k.Ctrl || k.Meta
}

// Printable reports whether the key is a single printable character without
// a jump modifier.
func (k Key) Printable() bool {
	if k.Modified() || utf8.RuneCountInString(k.Name) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(k.Name)
	return unicode.IsPrint(r)
}

// IsActivation reports whether the key activates the focused element.
func (k Key) IsActivation() bool {
	switch k.Name {
	case KeySpace, KeySpacebar, KeyEnter:
		return true
	}
	return false
}

// IsEscape reports whether the key cancels.
func (k Key) IsEscape() bool {
	return k.Name == KeyEscape || k.Name == KeyEsc
}
