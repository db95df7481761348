// Package services implements the core business logic of rfcdex:
// record building and batch ingestion, ranked retrieval, query
// sanitisation, title resolution and sync scheduling. Services depend on
// driven ports only; adapters are injected at wiring time.
package services
