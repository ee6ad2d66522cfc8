// Package menu provides the MenuItem aggregate: a sellable dish with a name,
// description, category and unit price.
//
// Key business rules:
//   - Name, description and category are required
//   - The unit price must be greater than zero
//   - Orders reference menu items but never modify them; an order keeps its own
//     copy of the price at the time it was placed
package menu
