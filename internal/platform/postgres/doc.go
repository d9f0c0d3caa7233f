// Package postgres implements the internal/store interfaces against a
// PostgreSQL database, reached through database/sql over the pgx stdlib
// driver. It also owns the schema migrations for the tables the
// pipeline writes (alerts), applied with goose from an embedded
// filesystem. Tables the pipeline only reads (users, subscriptions,
// artifact links) are owned by the web application and have no
// migrations here.
package postgres
