package validate

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gameofgraphs/internal/ingest"
	"gameofgraphs/internal/parser"
)

type mockSource struct {
	relations map[parser.Kind][]parser.Relation
	errs      map[parser.Kind]error
}

func (m *mockSource) Relations(ctx context.Context, kind parser.Kind) ([]parser.Relation, error) {
	if err, ok := m.errs[kind]; ok {
		return nil, err
	}
	return m.relations[kind], nil
}

func (m *mockSource) Close(ctx context.Context) error { return nil }

func rel(from, to string) parser.Relation {
	return parser.Relation{From: from, To: to}
}

func TestRun_CleanInput(t *testing.T) {
	src := &mockSource{relations: map[parser.Kind][]parser.Relation{
		parser.KindFriendship: {rel("Tyrion", "Cersei Lannister")},
		parser.KindPlot:       {rel("Tyrion", "Euron")},
	}}

	report, err := Run(context.Background(), src, Options{Protected: "Cersei Lannister"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
	if report.Friendships != 1 || report.Plots != 1 {
		t.Fatalf("unexpected counts: %+v", report)
	}
}

func TestRun_Issues(t *testing.T) {
	src := &mockSource{relations: map[parser.Kind][]parser.Relation{
		parser.KindFriendship: {
			rel("Tyrion", "Tyrion"),
			rel("Tyrion", "Jaime"),
		},
		parser.KindPlot: {
			rel("Jaime", "Cersei Lannister"),
			rel("Jaime", "Cersei Lannister"),
			rel("Euron", "Euron"),
		},
	}}

	report, err := Run(context.Background(), src, Options{Protected: "Cersei Lannister"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := map[string]string{
		codeSelfFriendship:    "Tyrion",
		codeSelfPlot:          "Euron",
		codeRepeatedPlot:      "Jaime",
		codeUnknownPlotter:    "Euron",
		codeProtectedIsolated: "Cersei Lannister",
	}
	got := make(map[string]string)
	for _, issue := range report.Issues {
		got[issue.Code] = issue.Entity
	}
	for code, entity := range want {
		if got[code] != entity {
			t.Fatalf("expected %s issue for %s, got %+v", code, entity, report.Issues)
		}
	}
	if report.HasErrors() {
		t.Fatalf("expected warnings only, got %d errors", report.Count(SeverityError))
	}
	if report.Count(SeverityWarn) != len(want) {
		t.Fatalf("expected %d warnings, got %d", len(want), report.Count(SeverityWarn))
	}
}

func TestRun_RepeatedPlotMessage(t *testing.T) {
	src := &mockSource{relations: map[parser.Kind][]parser.Relation{
		parser.KindPlot: {rel("A", "B"), rel("A", "C"), rel("A", "B"), rel("A", "B")},
	}}

	report, err := Run(context.Background(), src, Options{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, issue := range report.Issues {
		if issue.Code == codeRepeatedPlot {
			if issue.Message != "plot against B recorded 3 times" {
				t.Fatalf("unexpected message %q", issue.Message)
			}
			return
		}
	}
	t.Fatalf("expected repeated plot issue, got %+v", report.Issues)
}

func TestRun_MissingSource(t *testing.T) {
	src := &mockSource{errs: map[parser.Kind]error{
		parser.KindPlot: fmt.Errorf("%w: plots.txt", ingest.ErrSourceMissing),
	}}

	report, err := Run(context.Background(), src, Options{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !report.HasErrors() {
		t.Fatalf("expected missing source error")
	}
	if report.Issues[0].Kind != parser.KindPlot {
		t.Fatalf("expected plot kind, got %s", report.Issues[0].Kind)
	}
}

func TestRun_SourceFailure(t *testing.T) {
	src := &mockSource{errs: map[parser.Kind]error{
		parser.KindFriendship: errors.New("permission denied"),
	}}
	if _, err := Run(context.Background(), src, Options{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRun_NilSource(t *testing.T) {
	if _, err := Run(context.Background(), nil, Options{}); err == nil {
		t.Fatalf("expected error")
	}
}
