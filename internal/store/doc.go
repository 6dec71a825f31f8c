// Package store provides SQLite-backed history of translated queries.
//
// Every record keeps the RSQL source, the canonical JSON of the resulting
// filter (or the error code when translation failed), the schema model it
// was resolved against, and when it was made.
//
// # Ordering
//
// Records are ordered by seq, an AUTOINCREMENT column, never by timestamp.
// ListTranslations returns newest first: ORDER BY seq DESC.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - A single open connection serialises writers
//
// Schema versions are tracked in PRAGMA user_version.
package store
