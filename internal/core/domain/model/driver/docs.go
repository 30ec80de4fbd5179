// Package driver holds the driver-side records read by dispatch: live status,
// zone assignments and on-vehicle inventory.
//
// All records are created and mutated by driver actions in the external data
// store. Dispatch treats them as read-only input.
package driver
