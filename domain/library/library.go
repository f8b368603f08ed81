package library

import (
	"slices"

	"library/infra/sequence"
)

// Library is an ordered list of records plus the counter for the next id.
type Library[T any] struct {
	records []Record[T]
	seq     *sequence.Sequencer
}

// New creates an empty library with its counter at 0.
func New[T any]() *Library[T] {
	return &Library[T]{
		seq: sequence.New(0),
	}
}

// All returns a copy of the records in insertion order.
// The copy does not track later mutations.
func (l *Library[T]) All() []Record[T] {
	return slices.Clone(l.records)
}

// Add tags value with the next id, appends it and returns the new length.
func (l *Library[T]) Add(value T) int {
	l.records = append(l.records, Record[T]{
		ID:    ID(l.seq.Next()),
		Value: value,
	})
	return len(l.records)
}

// Show returns the record with the given id, if present.
func (l *Library[T]) Show(id ID) (Record[T], bool) {
	if i := l.index(id); i >= 0 {
		return l.records[i], true
	}
	return Record[T]{}, false
}

// Remove deletes the record with the given id and returns it.
// Order of the remaining records is preserved. A miss leaves the
// library unchanged.
func (l *Library[T]) Remove(id ID) (Record[T], bool) {
	i := l.index(id)
	if i < 0 {
		return Record[T]{}, false
	}
	rec := l.records[i]
	l.records = slices.Delete(l.records, i, i+1)
	return rec, true
}

// Len returns the number of records currently held.
func (l *Library[T]) Len() int {
	return len(l.records)
}

// LastID returns the most recently assigned id, or 0 if none.
func (l *Library[T]) LastID() ID {
	return ID(l.seq.Current())
}

func (l *Library[T]) index(id ID) int {
	return slices.IndexFunc(l.records, func(r Record[T]) bool {
		return r.ID == id
	})
}
