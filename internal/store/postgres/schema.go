package postgres

const Schema = `
CREATE TABLE IF NOT EXISTS relations (
	id     BIGSERIAL PRIMARY KEY,
	kind   TEXT NOT NULL CHECK (kind IN ('friendship', 'plot')),
	source TEXT NOT NULL,
	target TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_relations_kind ON relations (kind, id);
`
