// Package redis establishes go-redis clients for ThreadCraft services with
// startup retries.
package redis
