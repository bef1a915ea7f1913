// Package cart provides the Cart aggregate, a user's mutable pre-checkout
// basket of food item references.
//
// Key business rules:
//   - A user has at most one cart; it is created lazily on the first add
//   - Membership is an ordered set of food item ids: adding an item that is
//     already present is a no-op, not a quantity increment
//   - Removing an item that is not a member is a no-op and never fails
//   - Checkout clears the membership in place; the cart itself survives and
//     is reused for the next order
//
// The aggregate only holds item identifiers. Resolving them to catalog
// entries is the read side's job, so a cart never goes stale when the menu
// changes.
package cart
