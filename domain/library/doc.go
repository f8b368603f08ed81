// Package library implements the in-memory Library: an ordered
// collection of records, each wrapping a caller value with an id taken
// from a per-instance sequencer.
//
// Ids start at 1 and are never reused, even after removal. Lookups are
// linear scans in insertion order. A Library is single-writer and is
// not safe for concurrent mutation.
package library
