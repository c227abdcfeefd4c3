// Package order contains the Order aggregate and its lifecycle state
// machine. An order freezes its cart, prices and delivery fee at placement
// time and moves Placed → Dispatched → {Delivered, Cancelled}; the terminal
// states are immutable.
package order
