// Package domain defines the core entities for Treeml.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Node: One node of a parsed markup tree (Text, Comment or Element)
//   - Document: The ordered top-level siblings produced by one parse
//   - Attributes: Insertion-ordered attribute collection of an element
//   - Dialect: Void and raw-text tag sets of a markup dialect
//   - Record: An archived conversion
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
