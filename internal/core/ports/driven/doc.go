// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - NameStore: StoredName persistence (memory, SQLite or bun-backed SQL)
//
// # Optional Interfaces
//
//   - ConfigStore: File-backed application configuration. Without it the
//     process runs on defaults and environment overrides only.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
