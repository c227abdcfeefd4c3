// Package tariff contains the distance-tiered delivery fee table. The table
// is a value object: configuration updates replace it wholesale after strict
// validation, so readers always see a consistent tier set.
package tariff
