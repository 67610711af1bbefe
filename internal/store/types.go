package store

import (
	"strings"

	"gameofgraphs/internal/parser"
)

// Row is one record of the relations table.
type Row struct {
	ID     int64
	Kind   string
	Source string
	Target string
}

// Relation converts a row, reporting false when either side is blank.
func (r Row) Relation() (parser.Relation, bool) {
	from := strings.TrimSpace(r.Source)
	to := strings.TrimSpace(r.Target)
	if from == "" || to == "" {
		return parser.Relation{}, false
	}
	return parser.Relation{From: from, To: to}, true
}
