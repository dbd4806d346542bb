package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectbox/internal/config"
)

const pickFieldName = "choice"

type pickOptions struct {
	Label    string
	Disabled []string
	Selected string
	Rows     int
	Wrap     bool
}

func newPickCmd(root *rootFlags) *cobra.Command {
	opts := pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick [flags] option...",
		Short: "Choose one of the given options and print its value",
		Long: "Choose one of the given options and print its value.\n\n" +
			"Each option is a label, or label=value when the printed value differs.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closer, err := openLogger(root)
			if err != nil {
				return err
			}
			defer closer.Close() //nolint:errcheck

			form, err := buildPickForm(opts, args)
			if err != nil {
				log.Error(err, "build pick form")
				return err
			}
			log.WithFields(map[string]any{"options": len(args)}).Debug("pick form built")

			values, err := collect(form, log)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), values[0].Value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Label, "label", "l", "", "Accessible label shown above the dropdown")
	cmd.Flags().StringArrayVarP(&opts.Disabled, "disabled", "d", nil, "Value of an option that cannot be chosen (repeatable)")
	cmd.Flags().StringVarP(&opts.Selected, "selected", "s", "", "Value selected initially")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "Number of visible options")
	cmd.Flags().BoolVar(&opts.Wrap, "wrap", false, "Wrap around when moving past either end")

	return cmd
}

// buildPickForm turns command arguments into a single-field form and
// validates it like a form file.
func buildPickForm(opts pickOptions, args []string) (*config.Form, error) {
	disabled := make(map[string]bool, len(opts.Disabled))
	for _, v := range opts.Disabled {
		disabled[v] = true
	}

	field := config.Field{Name: pickFieldName, Label: opts.Label}
	for _, arg := range args {
		label, value, _ := strings.Cut(arg, "=")
		o := config.Option{Label: label, Value: value}
		o.Disabled = disabled[o.EffectiveValue()]
		o.Selected = opts.Selected != "" && opts.Selected == o.EffectiveValue()
		field.Options = append(field.Options, o)
	}

	form := &config.Form{
		Settings: config.Settings{VisibleRows: opts.Rows, Wrap: opts.Wrap},
		Fields:   []config.Field{field},
	}
	if err := config.ValidateForm(form); err != nil {
		return nil, err
	}
	return form, nil
}
