// Package render prints command results in the tool's text format.
package render

import (
	"fmt"
	"io"
	"strings"

	"gameofgraphs/internal/defense"
	"gameofgraphs/internal/path"
	"gameofgraphs/internal/validate"
)

const (
	VerdictSafe   = "The Crown is safe !"
	VerdictUnsafe = "There is only one way out: treason !"
)

func MissingFile(w io.Writer, path string) {
	fmt.Fprintf(w, "Error: file '%s' not found.\n", path)
}

func Links(w io.Writer, result path.PathResult, showPath bool) {
	fmt.Fprintf(w, "Degree of separation between %s and %s: %d\n", result.From, result.To, result.Length)
	if showPath && result.Found() {
		fmt.Fprintf(w, "Path: %s\n", strings.Join(result.Hops, " -> "))
	}
}

// Matrix prints the sorted names followed by one row of bounded distances
// per name. Out-of-radius entries print as 0.
func Matrix(w io.Writer, m *path.Matrix) {
	fmt.Fprintln(w, "Names:")
	for _, name := range m.Names {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Relationships:")
	for i := range m.Rows {
		cells := make([]string, len(m.Names))
		for j := range cells {
			cells[j] = fmt.Sprint(m.At(i, j).Legacy())
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}

func Defense(w io.Writer, report *defense.Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conspiracies:")
	for _, relay := range report.Relays {
		fmt.Fprintln(w, relay.String())
	}
	for _, chain := range report.Chains {
		fmt.Fprintln(w, chain.String())
	}

	if threat, exposed := report.Exposed(); exposed {
		fmt.Fprintf(w, "No conspiracy possible against %s\n", threat)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Result:")
		fmt.Fprintln(w, VerdictUnsafe)
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Result:")
	fmt.Fprintln(w, VerdictSafe)
}

func Plots(w io.Writer, m *path.Matrix, report *defense.Report) {
	Matrix(w, m)
	Defense(w, report)
}

func Validate(w io.Writer, report *validate.Report) {
	var errorIssues, warnIssues []validate.Issue
	for _, issue := range report.Issues {
		switch issue.Severity {
		case validate.SeverityError:
			errorIssues = append(errorIssues, issue)
		case validate.SeverityWarn:
			warnIssues = append(warnIssues, issue)
		}
	}

	fmt.Fprintf(w, "Checked %d friendships and %d plots.\n", report.Friendships, report.Plots)
	if len(errorIssues) == 0 && len(warnIssues) == 0 {
		fmt.Fprintln(w, "No issues found.")
		return
	}

	if len(errorIssues) > 0 {
		fmt.Fprintf(w, "Errors (%d):\n", len(errorIssues))
		printIssues(w, errorIssues)
	}
	if len(warnIssues) > 0 {
		if len(errorIssues) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Warnings (%d):\n", len(warnIssues))
		printIssues(w, warnIssues)
	}
}

func printIssues(w io.Writer, issues []validate.Issue) {
	for _, issue := range issues {
		location := issue.Entity
		if location == "" {
			location = string(issue.Kind)
		}
		fmt.Fprintf(w, "  - %s: %s (%s)\n", location, issue.Message, issue.Code)
	}
}
