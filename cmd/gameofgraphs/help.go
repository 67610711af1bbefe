package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D4AF37"))

	argStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7FB3D5"))

	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
)

// installHelp renders the root help page; subcommands keep cobra's default.
func installHelp(root *cobra.Command) {
	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != root {
			defaultHelp(cmd, args)
			return
		}
		renderHelp(cmd.OutOrStdout(), cmd)
	})
}

func renderHelp(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintln(w, titleStyle.Render("USAGE"))
	fmt.Fprintln(w, "    ./gameofgraphs [--links fr p1 p2 | --plots fr cr n]")
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render("DESCRIPTION"))
	for _, arg := range [][2]string{
		{"fr", "file containing friendship relations between people"},
		{"pi", "name of someone in the friendships file"},
		{"cr", "file containing conspiracies intentions"},
		{"n", "maximum length of friendship paths"},
	} {
		fmt.Fprintf(w, "    %s %s\n", argStyle.Render(fmt.Sprintf("%-7s", arg[0])), arg[1])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Fprintf(w, "    %-10s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render("FLAGS"))
	visit := func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		line := fmt.Sprintf("    %-16s %s", name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			line += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Fprintln(w, flagStyle.Render(line))
	}
	cmd.LocalFlags().VisitAll(visit)
	cmd.InheritedFlags().VisitAll(visit)
	fmt.Fprintln(w)
}
