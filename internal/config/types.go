package config

import "time"

const (
	// DefaultTypeaheadTimeoutMS mirrors the controller's typeahead window.
	DefaultTypeaheadTimeoutMS = 500
	// DefaultVisibleRows is the dropdown height used when none is configured.
	DefaultVisibleRows = 6
)

// Form is a form definition: a titled list of dropdown fields.
type Form struct {
	Title    string   `yaml:"title,omitempty" toml:"title,omitempty" validate:"max=100"`
	Settings Settings `yaml:"settings,omitempty" toml:"settings,omitempty"`
	Fields   []Field  `yaml:"fields" toml:"fields" validate:"required,min=1,dive"`
}

// Settings holds parameters shared by every field of a form.
type Settings struct {
	TypeaheadTimeoutMS int  `yaml:"typeahead_timeout_ms,omitempty" toml:"typeahead_timeout_ms,omitempty" validate:"omitempty,min=50,max=5000"`
	VisibleRows        int  `yaml:"visible_rows,omitempty" toml:"visible_rows,omitempty" validate:"omitempty,min=1,max=50"`
	Wrap               bool `yaml:"wrap,omitempty" toml:"wrap,omitempty"`
}

// Field is one dropdown.
type Field struct {
	Name    string   `yaml:"name" toml:"name" validate:"required,field_name"`
	Label   string   `yaml:"label,omitempty" toml:"label,omitempty" validate:"max=100"`
	Options []Option `yaml:"options" toml:"options" validate:"required,min=1,dive"`
}

// Option is one entry of a field.
type Option struct {
	Label    string `yaml:"label" toml:"label" validate:"required"`
	Value    string `yaml:"value,omitempty" toml:"value,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Selected bool   `yaml:"selected,omitempty" toml:"selected,omitempty"`
}

// TypeaheadTimeout returns the configured typeahead window or the default.
func (s Settings) TypeaheadTimeout() time.Duration {
	ms := s.TypeaheadTimeoutMS
	if ms <= 0 {
		ms = DefaultTypeaheadTimeoutMS
	}
	return time.Duration(ms) * time.Millisecond
}

// Rows returns the configured dropdown height or the default.
func (s Settings) Rows() int {
	if s.VisibleRows <= 0 {
		return DefaultVisibleRows
	}
	return s.VisibleRows
}

// EffectiveValue returns the submitted value, falling back to the label.
func (o Option) EffectiveValue() string {
	if o.Value != "" {
		return o.Value
	}
	return o.Label
}

// Field returns the field with the given name.
func (f *Form) Field(name string) (Field, bool) {
	if f == nil {
		return Field{}, false
	}
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
