// Package tour provides the Tour aggregate of the catalog.
//
// Key business rules:
//   - A tour has a required name and country
//   - Price per person and capacity are never negative; capacity is descriptive
//     only and is not enforced against bookings
//   - Locations are linked by id in visiting order
//   - Only active tours are visible to customers
package tour
