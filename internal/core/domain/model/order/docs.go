// Package order provides the Order aggregate root: an immutable snapshot of
// a cart committed at a point in time, plus a status lifecycle.
//
// Key business rules:
//   - An order's item list is captured at checkout and never empty at
//     creation; later cart mutations cannot alter it
//   - Owner and item snapshot are immutable after creation
//   - Status is the only mutable field and follows a defined workflow:
//     Placed -> Preparing -> OutForDelivery -> Delivered, with Cancelled
//     reachable while the kitchen has not handed the order off
//
// The package follows the same aggregate conventions as the cart: private
// fields, constructor validation, and a Restore function for persistence.
package order
