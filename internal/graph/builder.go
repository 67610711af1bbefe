package graph

import (
	"sort"

	"gameofgraphs/internal/parser"
)

// Builder accumulates relations. It is the only way to mutate adjacency;
// Build hands out an immutable Graph.
type Builder struct {
	friends      map[string][]string
	friendSet    map[string]map[string]struct{}
	plots        map[string][]string
	plotterOrder []string
	friendCount  int
	plotCount    int
}

func NewBuilder() *Builder {
	return &Builder{
		friends:   make(map[string][]string),
		friendSet: make(map[string]map[string]struct{}),
		plots:     make(map[string][]string),
	}
}

// AddFriendship records a symmetric edge between left and right.
func (b *Builder) AddFriendship(left, right string) {
	b.touchPerson(left)
	b.touchPerson(right)
	b.link(left, right)
	b.link(right, left)
	b.friendCount++
}

// AddPlot appends target to plotter's sequence. Repeats are kept.
func (b *Builder) AddPlot(plotter, target string) {
	if _, ok := b.plots[plotter]; !ok {
		b.plotterOrder = append(b.plotterOrder, plotter)
	}
	b.plots[plotter] = append(b.plots[plotter], target)
	b.plotCount++
}

func (b *Builder) AddFriendships(relations []parser.Relation) {
	for _, rel := range relations {
		b.AddFriendship(rel.From, rel.To)
	}
}

func (b *Builder) AddPlots(relations []parser.Relation) {
	for _, rel := range relations {
		b.AddPlot(rel.From, rel.To)
	}
}

func (b *Builder) touchPerson(name string) {
	if _, ok := b.friendSet[name]; ok {
		return
	}
	b.friendSet[name] = make(map[string]struct{})
	b.friends[name] = nil
}

func (b *Builder) link(from, to string) {
	if _, ok := b.friendSet[from][to]; ok {
		return
	}
	b.friendSet[from][to] = struct{}{}
	b.friends[from] = append(b.friends[from], to)
}

// Build snapshots the builder into a Graph and computes the reverse plot index.
func (b *Builder) Build() *Graph {
	g := &Graph{
		friends:         make(map[string][]string, len(b.friends)),
		plots:           make(map[string][]string, len(b.plots)),
		plottersAgainst: make(map[string][]string),
		plotters:        append([]string(nil), b.plotterOrder...),
		friendRecords:   b.friendCount,
		plotRecords:     b.plotCount,
	}
	for name, neighbors := range b.friends {
		g.friends[name] = append([]string(nil), neighbors...)
	}
	for plotter, targets := range b.plots {
		g.plots[plotter] = append([]string(nil), targets...)
	}

	seen := make(map[string]map[string]struct{})
	for _, plotter := range g.plotters {
		for _, target := range g.plots[plotter] {
			if seen[target] == nil {
				seen[target] = make(map[string]struct{})
			}
			if _, ok := seen[target][plotter]; ok {
				continue
			}
			seen[target][plotter] = struct{}{}
			g.plottersAgainst[target] = append(g.plottersAgainst[target], plotter)
		}
	}

	g.people = make([]string, 0, len(g.friends))
	for name := range g.friends {
		g.people = append(g.people, name)
	}
	sort.Strings(g.people)
	return g
}

// FromRelations builds a Graph straight from parsed records.
func FromRelations(friendships, plots []parser.Relation) *Graph {
	b := NewBuilder()
	b.AddFriendships(friendships)
	b.AddPlots(plots)
	return b.Build()
}
