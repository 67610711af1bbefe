package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"gameofgraphs/internal/defense"
	"gameofgraphs/internal/path"
)

var errPersonNotFound = errors.New("person not found")

type DegreeInput struct {
	From        string `json:"from" jsonschema:"first person"`
	To          string `json:"to" jsonschema:"second person"`
	IncludePath bool   `json:"include_path,omitempty" jsonschema:"also return the people along the path"`
}

type DegreeOutput struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Degree int      `json:"degree"`
	Path   []string `json:"path,omitempty"`
}

type DistancesInput struct {
	Name   string `json:"name" jsonschema:"person to measure from"`
	Radius *int   `json:"radius,omitempty" jsonschema:"maximum friendship path length, defaults to the configured radius"`
}

type DistanceOutput struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Hops int    `json:"hops,omitempty"`
}

type DistancesOutput struct {
	Name      string           `json:"name"`
	Radius    int              `json:"radius"`
	Distances []DistanceOutput `json:"distances"`
}

type DefenseInput struct {
	Protected string `json:"protected,omitempty" jsonschema:"person to protect, defaults to the configured one"`
	Radius    *int   `json:"radius,omitempty" jsonschema:"maximum friendship path length for close friends"`
}

type ChainOutput struct {
	Friend         string `json:"friend"`
	CounterPlotter string `json:"counter_plotter"`
	Ally           string `json:"ally"`
	Threat         string `json:"threat"`
}

type RelayOutput struct {
	Friend string `json:"friend"`
	Threat string `json:"threat"`
}

type DefenseOutput struct {
	Protected  string        `json:"protected"`
	Radius     int           `json:"radius"`
	Threats    []string      `json:"threats"`
	Relays     []RelayOutput `json:"relays"`
	Chains     []ChainOutput `json:"chains"`
	Unresolved []string      `json:"unresolved"`
	Safe       bool          `json:"safe"`
}

type ListPeopleInput struct{}

type ListPeopleOutput struct {
	People   []string `json:"people"`
	Plotters []string `json:"plotters"`
}

type PersonInput struct {
	Name string `json:"name" jsonschema:"person name"`
}

type PersonOutput struct {
	Name      string   `json:"name"`
	Friends   []string `json:"friends"`
	Targets   []string `json:"targets"`
	PlottedBy []string `json:"plotted_by"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "degree_of_separation",
		Description: "Shortest friendship distance between two people, -1 when unknown or unconnected",
	}, s.handleDegree)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "friendship_distances",
		Description: "Bounded friendship distance from one person to everyone else",
	}, s.handleDistances)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "defense_report",
		Description: "Direct threats against a protected person and how each one is neutralized",
	}, s.handleDefense)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_people",
		Description: "Everyone in the friendship graph and everyone plotting",
	}, s.handleListPeople)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_person",
		Description: "Friends, plot targets and plotters of one person",
	}, s.handleGetPerson)
}

func (s *Server) handleDegree(ctx context.Context, req *sdk.CallToolRequest, input DegreeInput) (*sdk.CallToolResult, DegreeOutput, error) {
	if input.From == "" || input.To == "" {
		return nil, DegreeOutput{}, fmt.Errorf("from and to are required")
	}
	result := path.ShortestPath(s.graph, input.From, input.To)
	out := DegreeOutput{From: result.From, To: result.To, Degree: result.Length}
	if input.IncludePath {
		out.Path = result.Hops
	}
	return nil, out, nil
}

func (s *Server) handleDistances(ctx context.Context, req *sdk.CallToolRequest, input DistancesInput) (*sdk.CallToolResult, DistancesOutput, error) {
	if input.Name == "" {
		return nil, DistancesOutput{}, fmt.Errorf("name is required")
	}
	if !s.graph.HasPerson(input.Name) {
		return nil, DistancesOutput{}, fmt.Errorf("%w: %s", errPersonNotFound, input.Name)
	}
	radius, err := s.radius(input.Radius)
	if err != nil {
		return nil, DistancesOutput{}, err
	}

	distances := path.BoundedDistances(s.graph, input.Name, radius)
	names := make([]string, 0, len(distances))
	for name := range distances {
		names = append(names, name)
	}
	sort.Strings(names)

	out := DistancesOutput{Name: input.Name, Radius: radius, Distances: make([]DistanceOutput, 0, len(names))}
	for _, name := range names {
		d := distances[name]
		out.Distances = append(out.Distances, DistanceOutput{Name: name, Kind: d.Kind.String(), Hops: d.Hops})
	}
	return nil, out, nil
}

func (s *Server) handleDefense(ctx context.Context, req *sdk.CallToolRequest, input DefenseInput) (*sdk.CallToolResult, DefenseOutput, error) {
	protected := input.Protected
	if protected == "" {
		protected = s.defense.Protected
	}
	radius, err := s.radius(input.Radius)
	if err != nil {
		return nil, DefenseOutput{}, err
	}

	resolver, err := defense.NewResolver(protected, radius, defense.WithLogger(s.logger))
	if err != nil {
		return nil, DefenseOutput{}, err
	}
	return nil, defenseOutputFromReport(resolver.Resolve(s.graph)), nil
}

func (s *Server) handleListPeople(ctx context.Context, req *sdk.CallToolRequest, input ListPeopleInput) (*sdk.CallToolResult, ListPeopleOutput, error) {
	return nil, ListPeopleOutput{
		People:   nonNil(s.graph.People()),
		Plotters: nonNil(s.graph.Plotters()),
	}, nil
}

func (s *Server) handleGetPerson(ctx context.Context, req *sdk.CallToolRequest, input PersonInput) (*sdk.CallToolResult, PersonOutput, error) {
	if input.Name == "" {
		return nil, PersonOutput{}, fmt.Errorf("name is required")
	}
	if !s.graph.HasPerson(input.Name) && !s.graph.HasPlotter(input.Name) && len(s.graph.PlottersAgainst(input.Name)) == 0 {
		return nil, PersonOutput{}, fmt.Errorf("%w: %s", errPersonNotFound, input.Name)
	}
	return nil, PersonOutput{
		Name:      input.Name,
		Friends:   nonNil(s.graph.Friends(input.Name)),
		Targets:   nonNil(s.graph.Targets(input.Name)),
		PlottedBy: nonNil(s.graph.PlottersAgainst(input.Name)),
	}, nil
}

func (s *Server) radius(requested *int) (int, error) {
	if requested == nil {
		return s.defense.Radius, nil
	}
	if *requested < 0 {
		return 0, fmt.Errorf("radius must not be negative")
	}
	return *requested, nil
}

func defenseOutputFromReport(report *defense.Report) DefenseOutput {
	out := DefenseOutput{
		Protected:  report.Protected,
		Radius:     report.Radius,
		Threats:    nonNil(report.Threats),
		Relays:     make([]RelayOutput, 0, len(report.Relays)),
		Chains:     make([]ChainOutput, 0, len(report.Chains)),
		Unresolved: nonNil(report.Unresolved),
		Safe:       report.Safe(),
	}
	for _, relay := range report.Relays {
		out.Relays = append(out.Relays, RelayOutput{Friend: relay.Friend, Threat: relay.Threat})
	}
	for _, chain := range report.Chains {
		out.Chains = append(out.Chains, ChainOutput{
			Friend:         chain.Friend,
			CounterPlotter: chain.CounterPlotter,
			Ally:           chain.Ally,
			Threat:         chain.Threat,
		})
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
