package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectbox/internal/config"
	"github.com/alexisbeaulieu97/selectbox/internal/listbox"
)

func newCheckCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a form file and summarise its fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := config.Load(path)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), path, form)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "Path to form file (.yaml, .yml or .toml)")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func printSummary(w io.Writer, path string, form *config.Form) {
	title := form.Title
	if title == "" {
		title = path
	}
	fmt.Fprintf(w, "✓ %s: %d field(s)\n", title, len(form.Fields))

	for _, field := range form.Fields {
		c := field.NewController(listbox.Options{})
		disabled := 0
		for _, o := range field.Options {
			if o.Disabled {
				disabled++
			}
		}
		fmt.Fprintf(w, "  %s: %d option(s), %d disabled, default %q\n", field.Name, len(field.Options), disabled, c.Value())
		c.Release()
	}
}
