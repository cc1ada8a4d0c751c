// Package pg establishes pgx connection pools for ThreadCraft services,
// with startup retries and goose schema migrations.
package pg
