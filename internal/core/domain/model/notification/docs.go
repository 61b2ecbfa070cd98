// Package notification provides the Delivery aggregate, which tracks one email
// triggered by a booking through its send attempts.
//
// Key business rules:
//   - Each booking yields one delivery per Kind, created in the booking's transaction
//   - Status moves Pending -> Sent, or Pending/Failed -> Failed -> ... -> Sent
//   - A Sent delivery is never attempted again
//   - Attempts are bounded by the caller-supplied maximum
package notification
