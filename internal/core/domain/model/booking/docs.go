// Package booking provides the Booking aggregate: a customer's request to join
// a tour, identified to humans by a ReferenceCode.
//
// Key business rules:
//   - A booking references a tour by id; existence is checked by the workflow
//   - Customer name, email, age (1..120), country and preferred date are required
//   - Every booking starts in the Pending status and is never modified afterwards
//   - Reference codes have the form BKG-XXXXXX over [A-Z0-9]
//
// There is no capacity invariant: any number of bookings may reference one tour.
package booking
