// Package kernel provides core domain primitives for the shop system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: An exact decimal monetary amount (never floating point)
//   - Distance: A validated delivery distance in kilometers
//   - DispatchCode: The anonymous order identifier shown to couriers
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
