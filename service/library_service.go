package service

import (
	"go.uber.org/zap"

	"library/domain/library"
)

/*
LibraryService is the ONLY write entry point used by binaries.

It owns one library and logs each mutation. Reads go straight through.
Not-found is reported with a comma-ok flag, never as an error.
*/
type LibraryService[T any] struct {
	lib    *library.Library[T]
	logger *zap.Logger
}

// NewLibraryService wires a library and a logger.
// A nil logger disables logging.
func NewLibraryService[T any](lib *library.Library[T], logger *zap.Logger) *LibraryService[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LibraryService[T]{
		lib:    lib,
		logger: logger.Named("library"),
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Add stores value and returns the new record and the new length.
func (s *LibraryService[T]) Add(value T) (library.Record[T], int) {
	n := s.lib.Add(value)
	rec := library.Record[T]{ID: s.lib.LastID(), Value: value}

	s.logger.Debug("record added",
		zap.Uint64("id", uint64(rec.ID)),
		zap.Int("len", n),
	)
	return rec, n
}

// Remove deletes the record with the given id.
func (s *LibraryService[T]) Remove(id library.ID) (library.Record[T], bool) {
	rec, ok := s.lib.Remove(id)
	if !ok {
		s.logger.Debug("remove missed", zap.Uint64("id", uint64(id)))
		return rec, false
	}
	s.logger.Info("record removed",
		zap.Uint64("id", uint64(id)),
		zap.Int("len", s.lib.Len()),
	)
	return rec, true
}

// Seed adds values in order and returns how many were added.
func (s *LibraryService[T]) Seed(values []T) int {
	for _, v := range values {
		s.lib.Add(v)
	}
	if len(values) > 0 {
		s.logger.Info("library seeded",
			zap.Int("count", len(values)),
			zap.Uint64("last_id", uint64(s.lib.LastID())),
		)
	}
	return len(values)
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Show returns the record with the given id, if present.
func (s *LibraryService[T]) Show(id library.ID) (library.Record[T], bool) {
	rec, ok := s.lib.Show(id)
	if !ok {
		s.logger.Debug("show missed", zap.Uint64("id", uint64(id)))
	}
	return rec, ok
}

// All returns a detached copy of every record in insertion order.
func (s *LibraryService[T]) All() []library.Record[T] {
	return s.lib.All()
}
