// Package services provides domain services that don't belong to a single
// aggregate root.
//
// The package includes:
//   - ReferenceCodeAllocator: draws booking reference codes and retries on
//     collision with codes already in use
package services
