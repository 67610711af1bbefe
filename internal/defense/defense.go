// Package defense decides whether a protected person survives everyone
// plotting directly against them.
//
// A direct threat is neutralized by a close friend of the protected person
// (friendship distance between 1 and the radius) who plots against the
// threat. Failing that, it is neutralized through a chain: a close friend
// plots against a counter-plotter, who plots against an ally, who plots
// against the threat. Allies only need to appear in the friendship graph;
// their distance to the protected person is not bounded. When several
// candidates qualify the resolver takes the first one, ranking close friends
// by distance and then by name, and allies and counter-plotters by the order
// they first appear as plotters.
package defense

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"gameofgraphs/internal/path"
)

const DefaultProtected = "Cersei Lannister"

var (
	ErrNoProtected    = errors.New("protected person is required")
	ErrNegativeRadius = errors.New("radius must not be negative")
)

// Relations is the graph view the resolver needs.
type Relations interface {
	path.Network
	PlottersAgainst(name string) []string
	IsPlotting(plotter, target string) bool
}

// Relay is a close friend plotting straight against a threat.
type Relay struct {
	Friend string
	Threat string
}

func (r Relay) String() string {
	return r.Friend + " -> " + r.Threat
}

// Chain neutralizes Threat: Friend plots against CounterPlotter, who plots
// against Ally, who plots against Threat.
type Chain struct {
	Friend         string
	CounterPlotter string
	Ally           string
	Threat         string
}

func (c Chain) String() string {
	return strings.Join([]string{c.Friend, c.CounterPlotter, c.Ally, c.Threat}, " -> ")
}

type Report struct {
	Protected  string
	Radius     int
	Threats    []string
	Relays     []Relay
	Chains     []Chain
	Unresolved []string
}

func (r *Report) Safe() bool {
	return len(r.Unresolved) == 0
}

// Exposed returns the first threat nobody could neutralize.
func (r *Report) Exposed() (string, bool) {
	if len(r.Unresolved) == 0 {
		return "", false
	}
	return r.Unresolved[0], true
}

type Resolver struct {
	protected string
	radius    int
	logger    *slog.Logger
}

type Option func(*Resolver)

func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewResolver(protected string, radius int, opts ...Option) (*Resolver, error) {
	if strings.TrimSpace(protected) == "" {
		return nil, ErrNoProtected
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	r := &Resolver{
		protected: protected,
		radius:    radius,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type closeFriend struct {
	name string
	hops int
}

// Resolve never fails; a report without threats is simply safe.
func (r *Resolver) Resolve(g Relations) *Report {
	report := &Report{Protected: r.protected, Radius: r.radius}
	if g == nil {
		return report
	}

	report.Threats = g.PlottersAgainst(r.protected)
	if len(report.Threats) == 0 {
		r.logger.Debug("no direct threats", "protected", r.protected)
		return report
	}

	distances := path.BoundedDistances(g, r.protected, r.radius)
	friends := rankCloseFriends(distances, r.radius)
	r.logger.Debug("resolving threats",
		"protected", r.protected,
		"radius", r.radius,
		"threats", len(report.Threats),
		"close_friends", len(friends),
	)

	var pending []string
	for _, threat := range report.Threats {
		if friend, ok := firstPlotting(g, friends, threat); ok {
			report.Relays = append(report.Relays, Relay{Friend: friend, Threat: threat})
			r.logger.Debug("threat resolved by relay", "threat", threat, "friend", friend)
			continue
		}
		pending = append(pending, threat)
	}

	for _, threat := range pending {
		chain, ok := r.findChain(g, distances, friends, threat)
		if ok {
			report.Chains = append(report.Chains, chain)
			r.logger.Debug("threat resolved by chain", "threat", threat, "chain", chain.String())
			continue
		}
		report.Unresolved = append(report.Unresolved, threat)
		r.logger.Debug("threat unresolved", "threat", threat)
	}

	return report
}

func (r *Resolver) findChain(g Relations, distances path.Distances, friends []closeFriend, threat string) (Chain, bool) {
	for _, ally := range g.PlottersAgainst(threat) {
		if _, known := distances.Lookup(ally); !known {
			continue
		}
		for _, counter := range g.PlottersAgainst(ally) {
			if friend, ok := firstPlotting(g, friends, counter); ok {
				return Chain{Friend: friend, CounterPlotter: counter, Ally: ally, Threat: threat}, true
			}
		}
	}
	return Chain{}, false
}

func rankCloseFriends(distances path.Distances, radius int) []closeFriend {
	friends := make([]closeFriend, 0, len(distances))
	for name, dist := range distances {
		if dist.IsClose(radius) {
			friends = append(friends, closeFriend{name: name, hops: dist.Hops})
		}
	}
	sort.Slice(friends, func(i, j int) bool {
		if friends[i].hops != friends[j].hops {
			return friends[i].hops < friends[j].hops
		}
		return friends[i].name < friends[j].name
	})
	return friends
}

func firstPlotting(g Relations, friends []closeFriend, target string) (string, bool) {
	for _, friend := range friends {
		if g.IsPlotting(friend.name, target) {
			return friend.name, true
		}
	}
	return "", false
}
