package library

// ID identifies a record. Zero is never assigned.
type ID uint64

// Record is a value tagged with the id it was added under.
type Record[T any] struct {
	ID    ID
	Value T
}
