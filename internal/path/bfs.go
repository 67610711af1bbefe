// Package path computes unweighted friendship distances: the degree of
// separation between two people and radius-bounded distances from one
// person to everybody else.
package path

import "math"

// Network is the friendship view the searches run over.
type Network interface {
	HasPerson(name string) bool
	Friends(name string) []string
	People() []string
}

// NotFound is the degree reported when no path exists.
const NotFound = -1

// PathResult describes a shortest friendship path. Length is NotFound when
// either end is unknown or the two are not connected.
type PathResult struct {
	From   string
	To     string
	Length int
	Hops   []string
}

func (r PathResult) Found() bool {
	return r.Length != NotFound
}

type queueItem struct {
	name  string
	depth int
}

// ShortestPath runs a FIFO breadth-first search from start and stops the
// first time goal is dequeued.
func ShortestPath(g Network, start, goal string) PathResult {
	result := PathResult{From: start, To: goal, Length: NotFound}
	if g == nil || !g.HasPerson(start) || !g.HasPerson(goal) {
		return result
	}
	if start == goal {
		result.Length = 0
		result.Hops = []string{start}
		return result
	}

	visited := make(map[string]bool)
	parent := make(map[string]string)
	discovered := map[string]bool{start: true}
	queue := []queueItem{{name: start}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if visited[item.name] {
			continue
		}
		visited[item.name] = true

		if item.name == goal {
			result.Length = item.depth
			result.Hops = reconstruct(parent, start, goal)
			return result
		}

		for _, friend := range g.Friends(item.name) {
			if visited[friend] {
				continue
			}
			if !discovered[friend] {
				discovered[friend] = true
				parent[friend] = item.name
			}
			queue = append(queue, queueItem{name: friend, depth: item.depth + 1})
		}
	}

	return result
}

// Degree is ShortestPath reduced to its length.
func Degree(g Network, start, goal string) int {
	return ShortestPath(g, start, goal).Length
}

func reconstruct(parent map[string]string, start, goal string) []string {
	hops := []string{goal}
	for current := goal; current != start; {
		current = parent[current]
		hops = append(hops, current)
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
	return hops
}

// BoundedDistances relaxes distances outward from start, only expanding
// entities whose distance is at most n. Anything left beyond n is reported
// as out of radius.
func BoundedDistances(g Network, start string, n int) Distances {
	if n < 0 {
		n = 0
	}

	raw := make(map[string]int)
	if g != nil {
		for _, name := range g.People() {
			raw[name] = math.MaxInt
		}
	}
	raw[start] = 0

	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if g == nil {
			break
		}
		next := raw[current] + 1
		for _, friend := range g.Friends(current) {
			known, ok := raw[friend]
			if ok && known <= next {
				continue
			}
			raw[friend] = next
			if next <= n {
				queue = append(queue, friend)
			}
		}
	}

	out := make(Distances, len(raw))
	for name, hops := range raw {
		switch {
		case name == start:
			out[name] = Self()
		case hops > n:
			out[name] = OutOfRadius()
		default:
			out[name] = Within(hops)
		}
	}
	return out
}
