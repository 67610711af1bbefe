package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gameofgraphs/internal/ingest"
	"gameofgraphs/internal/parser"
	"gameofgraphs/internal/path"
	"gameofgraphs/internal/render"
)

func linksCmd(a *app) *cobra.Command {
	var showPath bool
	cmd := &cobra.Command{
		Use:   "links <fr_file> <person1> <person2>",
		Short: "Print the degree of separation between two people",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLinks(cmd, args, showPath)
		},
	}
	cmd.Flags().BoolVar(&showPath, "path", false, "also print the people along the path")
	return cmd
}

func (a *app) runLinks(cmd *cobra.Command, args []string, showPath bool) error {
	out := cmd.OutOrStdout()
	if len(args) != 3 {
		fmt.Fprintln(out, linksUsage)
		return nil
	}
	frFile, from, to := args[0], args[1], args[2]

	src := ingest.NewFileSource(frFile, "", a.cfg.ParserPhrases())
	g, result, err := ingest.Load(cmd.Context(), src, ingest.Options{
		Logger: a.logger,
		Kinds:  []parser.Kind{parser.KindFriendship},
	})
	if err != nil {
		return err
	}
	reportMissing(cmd, src, result)

	render.Links(out, path.ShortestPath(g, from, to), showPath)
	return nil
}

func reportMissing(cmd *cobra.Command, src *ingest.FileSource, result *ingest.Result) {
	for _, kind := range result.Missing {
		render.MissingFile(cmd.OutOrStdout(), src.Path(kind))
	}
}
