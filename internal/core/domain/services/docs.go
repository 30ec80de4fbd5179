// Package services provides domain services that work across several aggregates
// of the dispatch domain. They hold no state and never mutate their inputs.
//
// The package includes:
//   - ActionResolver: projects the order lifecycle onto the actions a role may take
//   - EscalationEvaluator: flags orders that waited too long for their priority
//   - CoverageAggregator: joins zones, drivers, inventory and orders into per-zone coverage
package services
