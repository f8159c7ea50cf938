// Package postgres provides PostgreSQL implementations of the store
// interfaces, backed by a bounded pgx connection pool. Connections are
// acquired per statement and released on every exit path by the driver.
package postgres
