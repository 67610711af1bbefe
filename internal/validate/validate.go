package validate

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gameofgraphs/internal/graph"
	"gameofgraphs/internal/ingest"
	"gameofgraphs/internal/parser"
	"gameofgraphs/internal/store"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeMissingSource     = "missing_source"
	codeSelfFriendship    = "self_friendship"
	codeSelfPlot          = "self_plot"
	codeRepeatedPlot      = "repeated_plot"
	codeUnknownPlotter    = "plotter_without_friends"
	codeProtectedIsolated = "protected_without_friends"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Entity   string
	Kind     parser.Kind
}

type Report struct {
	Issues      []Issue
	Friendships int
	Plots       int
}

func (r *Report) Count(severity Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

func (r *Report) HasErrors() bool {
	return r.Count(SeverityError) > 0
}

type Options struct {
	// Protected, when set, is checked for presence in the friendship graph.
	Protected string
}

func Run(ctx context.Context, src store.Source, options Options) (*Report, error) {
	if src == nil {
		return nil, fmt.Errorf("relation source is required")
	}

	issues := make([]Issue, 0)
	relations := make(map[parser.Kind][]parser.Relation)

	for _, kind := range []parser.Kind{parser.KindFriendship, parser.KindPlot} {
		rels, err := src.Relations(ctx, kind)
		if err != nil {
			if errors.Is(err, ingest.ErrSourceMissing) {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     codeMissingSource,
					Message:  err.Error(),
					Kind:     kind,
				})
				continue
			}
			return nil, fmt.Errorf("read %s relations: %w", kind, err)
		}
		relations[kind] = rels
	}

	friendships := relations[parser.KindFriendship]
	plots := relations[parser.KindPlot]
	g := graph.FromRelations(friendships, plots)

	issues = append(issues, checkSelfRelations(friendships, parser.KindFriendship, codeSelfFriendship)...)
	issues = append(issues, checkSelfRelations(plots, parser.KindPlot, codeSelfPlot)...)
	issues = append(issues, checkRepeatedPlots(g)...)
	issues = append(issues, checkPlottersWithoutFriends(g)...)
	if options.Protected != "" && !g.HasPerson(options.Protected) {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeProtectedIsolated,
			Message:  "protected person has no friendships, no threat can be resolved",
			Entity:   options.Protected,
			Kind:     parser.KindFriendship,
		})
	}

	return &Report{
		Issues:      issues,
		Friendships: len(friendships),
		Plots:       len(plots),
	}, nil
}

func checkSelfRelations(relations []parser.Relation, kind parser.Kind, code string) []Issue {
	var issues []Issue
	for _, rel := range relations {
		if rel.From != rel.To {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     code,
			Message:  fmt.Sprintf("%s relation from %s to itself", kind, rel.From),
			Entity:   rel.From,
			Kind:     kind,
		})
	}
	return issues
}

// checkRepeatedPlots flags repeated records. They are kept in the graph.
func checkRepeatedPlots(g *graph.Graph) []Issue {
	var issues []Issue
	for _, plotter := range g.Plotters() {
		targets := uniqueSorted(g.Targets(plotter))
		for _, target := range targets {
			count := g.PlotCount(plotter, target)
			if count < 2 {
				continue
			}
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeRepeatedPlot,
				Message:  fmt.Sprintf("plot against %s recorded %d times", target, count),
				Entity:   plotter,
				Kind:     parser.KindPlot,
			})
		}
	}
	return issues
}

func checkPlottersWithoutFriends(g *graph.Graph) []Issue {
	var issues []Issue
	for _, plotter := range g.Plotters() {
		if g.HasPerson(plotter) {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeUnknownPlotter,
			Message:  "plotter has no friendships and can never be a close friend or ally",
			Entity:   plotter,
			Kind:     parser.KindPlot,
		})
	}
	return issues
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
