package config

import (
	"github.com/alexisbeaulieu97/selectbox/internal/listbox"
	"github.com/alexisbeaulieu97/selectbox/internal/option"
)

// ControllerOptions converts the settings into controller options. base
// supplies the host hooks (scheduler, focus, logger).
func (s Settings) ControllerOptions(base listbox.Options) listbox.Options {
	base.TypeaheadTimeout = s.TypeaheadTimeout()
	base.ViewHeight = s.Rows()
	base.Wrap = s.Wrap
	return base
}

// BuildOptions creates the option entities of a field in document order.
func (f Field) BuildOptions() []*option.Option {
	opts := make([]*option.Option, 0, len(f.Options))
	for _, o := range f.Options {
		opts = append(opts,
			option.New(o.Label,
				option.WithValue(o.Value),
				option.WithDisabled(o.Disabled),
				option.WithSelected(o.Selected),
			),
		)
	}
	return opts
}

// NewController builds a controller for the field and fills it with its
// options.
func (f Field) NewController(opts listbox.Options) *listbox.Controller {
	opts.Label = f.Label
	c := listbox.New(opts)
	c.Options().Append(f.BuildOptions()...)
	return c
}
