// Package store defines the data persistence interfaces the pipeline
// steps depend on, decoupled from any concrete database. Implementations
// live under internal/platform; steps accept these interfaces so tests
// can substitute in-memory fakes.
package store
