// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal
// architecture. Core services depend on these interfaces, and
// infrastructure adapters implement them.
//
// # Interfaces
//
//   - TreeParser: Scans markup text into a node tree
//   - TreeSerialiser: Renders a node tree back into markup text
//   - RecordStore: Conversion archive persistence
//   - ConfigStore: Application configuration persistence
//
// RecordStore may be nil when the archive is disabled; services degrade
// gracefully.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
