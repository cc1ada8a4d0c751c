package pg

import "time"

// Config holds PostgreSQL settings loadable from the environment.
type Config struct {
	ConnectionString string        `env:"PG_CONN_URL,required"`              // ConnectionString is the database connection string.
	MaxOpenConns     int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"` // MaxOpenConns is the maximum number of open connections.
	MaxIdleConns     int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`  // MaxIdleConns is the minimum number of idle connections kept.
	RetryAttempts    int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of connection attempts at startup.
	RetryInterval    time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"` // RetryInterval is the base delay between attempts.

	MigrationsPath  string `env:"PG_MIGRATIONS_PATH" envDefault:"svc/auth/migrations"` // MigrationsPath is the goose migrations directory.
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"`  // MigrationsTable stores the applied migration versions.
}
