// Package services provides domain services for work that spans the menu and
// order aggregates.
//
// The package includes:
//   - OrderComposer: turns requested lines and the menu items they reference
//     into a new Order, capturing each item's current price as the line's
//     unit price
package services
