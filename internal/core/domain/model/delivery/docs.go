// Package delivery provides the Delivery aggregate and its pricing rules.
//
// A delivery references exactly one truck and one driver by identity and
// carries a destination, a scheduled date-time, a cargo classification, and
// an exact-decimal monetary value.
//
// Key business rules:
//   - Deliveries are scheduled strictly in the future at creation time
//   - Recognized tax regions adjust the declared value by a fixed multiplier
//     (NORDESTE 1.20, ARGENTINA 1.40, AMAZONIA 1.30), matched case-insensitively
//   - Three flags are derived from value and cargo type before every persist:
//     valuable (> 30000.00), dangerous (COMBUSTIBLE), insured (ELECTRONICS)
//   - NORDESTE is a restricted region a driver may serve at most once
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
