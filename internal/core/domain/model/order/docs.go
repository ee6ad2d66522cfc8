// Package order provides the Order aggregate of the restaurant: an ordered set
// of line entries referencing menu items, a derived total and a fulfilment status.
//
// The package includes:
//   - Order: the aggregate root; owns its line entries
//   - LineEntry: one line of an order with the unit price captured at order time
//   - MenuItemView: the display fields of the referenced menu item
//   - Status: the closed enumeration RECEIVED, IN_PREPARATION, READY, DELIVERED
//
// Key business rules:
//   - An order has at least one line entry
//   - The total is the exact sum of unit price × quantity, computed once at creation
//   - Line prices are snapshots and do not follow later menu price changes
//   - Status changes only on explicit request; any status may follow any other
package order
