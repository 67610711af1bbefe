package path

// Matrix holds bounded distances between every pair of people, rows and
// columns in Names order.
type Matrix struct {
	Names  []string
	Radius int
	Rows   [][]Distance
}

func NewMatrix(g Network, n int) *Matrix {
	m := &Matrix{Radius: n}
	if g == nil {
		return m
	}
	m.Names = g.People()
	m.Rows = make([][]Distance, len(m.Names))
	for i, name := range m.Names {
		distances := BoundedDistances(g, name, n)
		row := make([]Distance, len(m.Names))
		for j, other := range m.Names {
			row[j] = distances.Of(other)
		}
		m.Rows[i] = row
	}
	return m
}

func (m *Matrix) At(row, col int) Distance {
	return m.Rows[row][col]
}
