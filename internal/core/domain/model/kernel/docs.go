// Package kernel provides the value objects shared by every aggregate of the
// restaurant domain.
//
// The package includes:
//   - UUID: identifier of menu items, orders and line entries
//   - Money: a non-negative exact decimal amount with two-place currency precision
//
// Both types are immutable and have an invalid zero value; they must be built
// through their constructors.
package kernel
