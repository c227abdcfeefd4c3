// Package product contains the Product aggregate: the single authority over
// the unit count of one catalogue item. All stock movement goes through the
// aggregate so the count can never be driven below zero, no matter how the
// surrounding transaction is composed.
package product
