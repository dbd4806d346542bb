// Package dom describes the small slice of a host element model the
// select control relies on: reflected attributes, focus and key input.
package dom

// Attribute names reflected by the control and its options.
const (
	AttrID                   = "id"
	AttrRole                 = "role"
	AttrTabIndex             = "tabindex"
	AttrLabel                = "label"
	AttrValue                = "value"
	AttrSelected             = "selected"
	AttrHighlighted          = "highlighted"
	AttrDisabled             = "disabled"
	AttrAriaLabel            = "aria-label"
	AttrAriaExpanded         = "aria-expanded"
	AttrAriaHasPopup         = "aria-haspopup"
	AttrAriaSelected         = "aria-selected"
	AttrAriaDisabled         = "aria-disabled"
	AttrAriaActiveDescendant = "aria-activedescendant"
)

// Attributes is an insertion-ordered attribute store. The zero value is ready
// to use.
type Attributes struct {
	names  []string
	values map[string]string
}

// Get returns the attribute value and whether it is present.
func (a *Attributes) Get(name string) (string, bool) {
	if a == nil || a.values == nil {
		return "", false
	}
	value, ok := a.values[name]
	return value, ok
}

// Value returns the attribute value, or "" when absent.
func (a *Attributes) Value(name string) string {
	value, _ := a.Get(name)
	return value
}

// Has reports whether the attribute is present.
func (a *Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set adds or replaces an attribute.
func (a *Attributes) Set(name, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, exists := a.values[name]; !exists {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

// Toggle sets a boolean (presence) attribute when on, removes it otherwise.
func (a *Attributes) Toggle(name string, on bool) {
	if on {
		a.Set(name, "")
		return
	}
	a.Remove(name)
}

// Remove deletes an attribute. Removing an absent attribute is a no-op.
func (a *Attributes) Remove(name string) {
	if a == nil || a.values == nil {
		return
	}
	if _, exists := a.values[name]; !exists {
		return
	}
	delete(a.values, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
}

// Names returns attribute names in insertion order.
func (a *Attributes) Names() []string {
	if a == nil {
		return nil
	}
	clone := make([]string, len(a.names))
	copy(clone, a.names)
	return clone
}

// Map returns a copy of the attributes.
func (a *Attributes) Map() map[string]string {
	out := make(map[string]string, len(a.names))
	if a == nil {
		return out
	}
	for _, name := range a.names {
		out[name] = a.values[name]
	}
	return out
}

// BoolString renders a boolean the way ARIA state attributes expect.
func BoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
