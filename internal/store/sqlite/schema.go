package sqlite

// Schema is the table the client reads. It is applied by whoever produces
// the database, never by this package outside tests.
const Schema = `
CREATE TABLE IF NOT EXISTS relations (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	kind   TEXT NOT NULL CHECK (kind IN ('friendship', 'plot')),
	source TEXT NOT NULL,
	target TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_relations_kind ON relations (kind, id);
`
