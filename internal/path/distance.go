package path

import "fmt"

// Kind tells apart the start entity, entities inside the radius and the rest.
type Kind int

const (
	KindSelf Kind = iota
	KindWithin
	KindOutOfRadius
)

func (k Kind) String() string {
	switch k {
	case KindSelf:
		return "self"
	case KindWithin:
		return "within"
	case KindOutOfRadius:
		return "out_of_radius"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Distance is a bounded friendship distance. Hops is only meaningful for
// KindWithin.
type Distance struct {
	Kind Kind
	Hops int
}

func Self() Distance {
	return Distance{Kind: KindSelf}
}

func Within(hops int) Distance {
	return Distance{Kind: KindWithin, Hops: hops}
}

func OutOfRadius() Distance {
	return Distance{Kind: KindOutOfRadius}
}

// Legacy renders the distance the way the separation matrix prints it:
// 0 for both the start entity and anything beyond the radius.
func (d Distance) Legacy() int {
	if d.Kind == KindWithin {
		return d.Hops
	}
	return 0
}

// IsClose reports a strictly positive distance no greater than n.
func (d Distance) IsClose(n int) bool {
	return d.Kind == KindWithin && d.Hops >= 1 && d.Hops <= n
}

func (d Distance) String() string {
	switch d.Kind {
	case KindWithin:
		return fmt.Sprintf("%d", d.Hops)
	default:
		return d.Kind.String()
	}
}

// Distances maps every entity known to the friendship graph, plus the
// start entity, to its bounded distance from the start.
type Distances map[string]Distance

// Lookup reports whether name was known when the distances were computed.
func (d Distances) Lookup(name string) (Distance, bool) {
	dist, ok := d[name]
	return dist, ok
}

// Of treats unknown entities as out of radius.
func (d Distances) Of(name string) Distance {
	if dist, ok := d[name]; ok {
		return dist
	}
	return OutOfRadius()
}
