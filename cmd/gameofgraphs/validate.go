package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gameofgraphs/internal/ingest"
	"gameofgraphs/internal/render"
	"gameofgraphs/internal/store"
	"gameofgraphs/internal/validate"
)

func validateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [fr_file cr_file]",
		Short: "Run consistency checks on the relation files or the configured source",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or fr_file and cr_file, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args)
		},
	}
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var src store.Source
	if len(args) == 2 {
		src = ingest.NewFileSource(args[0], args[1], a.cfg.ParserPhrases())
	} else {
		var err error
		src, err = openSource(ctx, a.cfg)
		if err != nil {
			return err
		}
	}
	defer src.Close(context.WithoutCancel(ctx))

	report, err := validate.Run(ctx, src, validate.Options{Protected: a.cfg.Defense.Protected})
	if err != nil {
		return err
	}

	render.Validate(cmd.OutOrStdout(), report)
	if report.HasErrors() {
		return fmt.Errorf("validation found errors")
	}
	return nil
}
