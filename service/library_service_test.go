package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"library/domain/library"
)

func newObserved(t *testing.T) (*LibraryService[string], *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewLibraryService(library.New[string](), zap.New(core)), logs
}

func TestAddReturnsRecordAndLength(t *testing.T) {
	svc := NewLibraryService(library.New[string](), zaptest.NewLogger(t))

	rec, n := svc.Add("Book A")
	assert.Equal(t, library.Record[string]{ID: 1, Value: "Book A"}, rec)
	assert.Equal(t, 1, n)

	rec, n = svc.Add("Book B")
	assert.Equal(t, library.ID(2), rec.ID)
	assert.Equal(t, 2, n)
}

func TestNilLoggerIsAllowed(t *testing.T) {
	svc := NewLibraryService(library.New[int](), nil)
	_, n := svc.Add(7)
	assert.Equal(t, 1, n)

	_, ok := svc.Remove(5)
	assert.False(t, ok)
}

func TestShowAndRemove(t *testing.T) {
	svc, logs := newObserved(t)
	svc.Add("Book A")
	svc.Add("Book B")

	rec, ok := svc.Show(1)
	require.True(t, ok)
	assert.Equal(t, "Book A", rec.Value)

	removed, ok := svc.Remove(1)
	require.True(t, ok)
	assert.Equal(t, library.ID(1), removed.ID)

	_, ok = svc.Show(1)
	assert.False(t, ok)
	_, ok = svc.Remove(1)
	assert.False(t, ok)

	want := []library.Record[string]{{ID: 2, Value: "Book B"}}
	if diff := cmp.Diff(want, svc.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	removedLogs := logs.FilterMessage("record removed").All()
	require.Len(t, removedLogs, 1)
	assert.Equal(t, zapcore.InfoLevel, removedLogs[0].Level)
	assert.Equal(t, uint64(1), removedLogs[0].ContextMap()["id"])

	assert.Equal(t, 1, logs.FilterMessage("show missed").Len())
	assert.Equal(t, 1, logs.FilterMessage("remove missed").Len())
	assert.Equal(t, 2, logs.FilterMessage("record added").Len())
}

func TestSeed(t *testing.T) {
	svc, logs := newObserved(t)

	assert.Equal(t, 0, svc.Seed(nil))
	assert.Equal(t, 0, logs.FilterMessage("library seeded").Len())

	assert.Equal(t, 3, svc.Seed([]string{"a", "b", "c"}))
	all := svc.All()
	require.Len(t, all, 3)
	assert.Equal(t, library.ID(3), all[2].ID)
	assert.Equal(t, "c", all[2].Value)

	seeded := logs.FilterMessage("library seeded").All()
	require.Len(t, seeded, 1)
	assert.Equal(t, int64(3), seeded[0].ContextMap()["count"])
}

func TestAddAfterRemoveReturnsNewRecord(t *testing.T) {
	lib := library.New[string]()
	svc := NewLibraryService(lib, zaptest.NewLogger(t))
	svc.Add("a")
	svc.Add("b")
	_, ok := svc.Remove(2)
	require.True(t, ok)

	rec, n := svc.Add("c")
	assert.Equal(t, library.Record[string]{ID: 3, Value: "c"}, rec)
	assert.Equal(t, 2, n)

	stored, ok := lib.Show(rec.ID)
	require.True(t, ok)
	assert.Equal(t, stored, rec)
}
