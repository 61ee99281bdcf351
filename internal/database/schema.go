package database

const schema = `
CREATE TABLE soc_responses (
	dept        TEXT    NOT NULL,
	term        INTEGER NOT NULL,
	body        BLOB    NOT NULL,
	fetched_at  TEXT    NOT NULL,
	PRIMARY KEY (dept, term)
);
`

// migrations holds incremental schema upgrades. Index 0 is the initial
// schema and stays empty.
var migrations = []string{
	"",
}
