// Package utility provides the generic helpers shared by the lazykit
// packages: slice transformations (Map, Filter, Find, UniqueBy), pointer
// helpers for optional fields, and coercions that turn dynamically typed
// input into slices and float64 values.
//
// Nothing in this package returns errors for malformed input; the callers
// decide what a failed coercion means.
package utility
