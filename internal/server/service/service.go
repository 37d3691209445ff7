// Package service implements the list/item lifecycle engine: identifier
// assignment, duplicate-text rejection, timestamp bookkeeping, empty-state
// transitions and the retention sweep.
package service

// M is an arbitrary map, used as rendering context by the handlers.
type M map[string]any
