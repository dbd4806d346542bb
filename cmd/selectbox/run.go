package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectbox/internal/config"
)

type runOptions struct {
	ConfigPath string
}

func newRunCmd(root *rootFlags) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill in a form of dropdowns and print name=value lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closer, err := openLogger(root)
			if err != nil {
				return err
			}
			defer closer.Close() //nolint:errcheck

			formLog := log.WithFields(map[string]any{"path": opts.ConfigPath})
			form, err := config.Load(opts.ConfigPath)
			if err != nil {
				formLog.Error(err, "load form")
				return err
			}
			formLog.WithFields(map[string]any{"fields": len(form.Fields)}).Info("form loaded")

			values, err := collect(form, formLog)
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", v.Name, v.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to form file (.yaml, .yml or .toml)")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}
