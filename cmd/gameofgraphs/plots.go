package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gameofgraphs/internal/defense"
	"gameofgraphs/internal/ingest"
	"gameofgraphs/internal/path"
	"gameofgraphs/internal/render"
)

func plotsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plots [flags] <fr_file> <cr_file> <n>",
		Short: "Print the distance matrix and check who can stop each conspiracy",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlots(cmd, args)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) runPlots(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		fmt.Fprintln(cmd.OutOrStdout(), plotsUsage)
		return nil
	}
	frFile, crFile := args[0], args[1]
	n, err := strconv.Atoi(args[2])
	if err != nil || n < 0 {
		fmt.Fprintln(cmd.OutOrStdout(), plotsUsage)
		return nil
	}

	src := ingest.NewFileSource(frFile, crFile, a.cfg.ParserPhrases())
	g, result, err := ingest.Load(cmd.Context(), src, ingest.Options{Logger: a.logger})
	if err != nil {
		return err
	}
	reportMissing(cmd, src, result)

	resolver, err := defense.NewResolver(a.cfg.Defense.Protected, n, defense.WithLogger(a.logger))
	if err != nil {
		return err
	}
	render.Plots(cmd.OutOrStdout(), path.NewMatrix(g, n), resolver.Resolve(g))
	return nil
}
