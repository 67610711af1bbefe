// Package graph holds the friendship and plotting relations between people.
//
// The friendship side is undirected: every edge is stored in both
// directions. The plotting side is directed and keeps every record, so a
// plotter listed twice against the same target has that target twice in
// its sequence.
package graph

// Graph is read-only. Slices returned by its methods are copies.
type Graph struct {
	friends         map[string][]string
	plots           map[string][]string
	plottersAgainst map[string][]string
	plotters        []string
	people          []string
	friendRecords   int
	plotRecords     int
}

// People returns every entity with a friendship entry, sorted by name.
func (g *Graph) People() []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.people...)
}

func (g *Graph) HasPerson(name string) bool {
	if g == nil {
		return false
	}
	_, ok := g.friends[name]
	return ok
}

// Friends returns name's neighbors in first-insertion order.
func (g *Graph) Friends(name string) []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.friends[name]...)
}

// Plotters returns every plotter in the order it first appeared.
func (g *Graph) Plotters() []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.plotters...)
}

func (g *Graph) HasPlotter(name string) bool {
	if g == nil {
		return false
	}
	_, ok := g.plots[name]
	return ok
}

// Targets returns plotter's target sequence, repeats included.
func (g *Graph) Targets(plotter string) []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.plots[plotter]...)
}

// PlottersAgainst lists each plotter targeting name once, in plotter order.
func (g *Graph) PlottersAgainst(name string) []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.plottersAgainst[name]...)
}

func (g *Graph) IsPlotting(plotter, target string) bool {
	return g.PlotCount(plotter, target) > 0
}

// PlotCount reports how many records have plotter plotting against target.
func (g *Graph) PlotCount(plotter, target string) int {
	if g == nil {
		return 0
	}
	count := 0
	for _, t := range g.plots[plotter] {
		if t == target {
			count++
		}
	}
	return count
}

func (g *Graph) FriendshipCount() int {
	if g == nil {
		return 0
	}
	return g.friendRecords
}

func (g *Graph) PlotRecordCount() int {
	if g == nil {
		return 0
	}
	return g.plotRecords
}
