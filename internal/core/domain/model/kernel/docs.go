// Package kernel provides the domain primitives shared by the quote model.
//
// The package includes:
//   - UUID: a validated identifier, used as the quote reference
//   - Money: an exact currency amount backed by shopspring/decimal, rendered
//     with leekchan/accounting
//
// Both are immutable values and safe for concurrent use.
package kernel
