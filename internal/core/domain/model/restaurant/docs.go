// Package restaurant provides the catalog side of the domain model: the
// Restaurant aggregate and its menu of MenuItem value objects.
//
// Key business rules:
//   - Restaurants are created with an empty menu, a 0.0 rating, and a zero
//     order counter; duplicates by name are permitted and distinct
//   - Menu item identifiers are sequential and local to the restaurant's menu
//     size at the time the item is added
//   - Menu items carry the price that orders snapshot at placement time;
//     existing orders are never affected by later catalog changes
//   - Restaurants and menu items are never deleted
package restaurant
