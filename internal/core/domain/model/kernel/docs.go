// Package kernel provides core domain primitives shared by the logistics domain model.
//
// The package includes:
//   - Coordinates: a validated latitude/longitude pair
//   - Address: a customer delivery address with optional coordinates
//   - Clock: the time source used by aggregates and evaluators
//
// Value objects are immutable and guarded against zero-value construction.
package kernel
