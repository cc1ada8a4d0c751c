package pg

import "errors"

var (
	// ErrParseConfig indicates the connection string could not be parsed.
	ErrParseConfig = errors.New("pg: failed to parse connection config")

	// ErrConnect indicates all connection attempts failed.
	ErrConnect = errors.New("pg: failed to connect to database")

	// ErrMigrate indicates schema migrations could not be applied.
	ErrMigrate = errors.New("pg: failed to apply migrations")
)
