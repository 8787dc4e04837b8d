// Package kernel contains shared value objects used across the dispatch domain.
//
// The kernel holds types that carry no aggregate-specific behavior but enforce
// invariants common to the whole model:
//   - Location: a validated geographic point (latitude, longitude, optional address)
//   - UUID: the store-assigned identifier wrapper around github.com/google/uuid
//
// All kernel types are immutable value objects. Their zero values are invalid
// and fail Validate; instances must be created through the provided
// constructor functions.
package kernel
