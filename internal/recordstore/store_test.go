package recordstore

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
)

// pair is a minimal fixed-width record for exercising the store.
type pair struct {
	Key uint32
	Val uint32
}

type pairCodec struct{}

func (pairCodec) Width() int { return 8 }

func (pairCodec) Encode(p pair, buf []byte) {
	binary.BigEndian.PutUint32(buf[0:4], p.Key)
	binary.BigEndian.PutUint32(buf[4:8], p.Val)
}

func (pairCodec) Decode(buf []byte) pair {
	return pair{
		Key: binary.BigEndian.Uint32(buf[0:4]),
		Val: binary.BigEndian.Uint32(buf[4:8]),
	}
}

func openTestStore(t *testing.T) (*Store[pair], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairs.dat")
	s, err := Open(path, pairCodec{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestCountAfterAppends(t *testing.T) {
	s, _ := openTestStore(t)

	assert.Equal(t, int64(0), s.Count())

	const n = 5
	for i := range n {
		idx, err := s.Append(pair{Key: uint32(i), Val: uint32(i * 10)})
		require.NoError(t, err)
		assert.Equal(t, int64(i), idx)
	}
	assert.Equal(t, int64(n), s.Count())

	// read_at(i) returns the i-th appended record
	for i := range n {
		rec, err := s.ReadAt(int64(i))
		require.NoError(t, err)
		assert.Equal(t, pair{Key: uint32(i), Val: uint32(i * 10)}, rec)
	}
}

func TestReadAtOutOfRange(t *testing.T) {
	s, _ := openTestStore(t)
	_, err := s.Append(pair{Key: 1})
	require.NoError(t, err)

	_, err = s.ReadAt(-1)
	assert.True(t, apperrors.IsOutOfRange(err))

	_, err = s.ReadAt(1)
	assert.True(t, apperrors.IsOutOfRange(err))
}

func TestFindFirstShortCircuits(t *testing.T) {
	s, _ := openTestStore(t)
	for i := range 4 {
		_, err := s.Append(pair{Key: uint32(i % 2), Val: uint32(i)})
		require.NoError(t, err)
	}

	// Two records have Key == 1; the earliest one must win.
	idx, rec, err := s.FindFirst(func(p pair) bool { return p.Key == 1 })
	require.NoError(t, err)
	assert.Equal(t, int64(1), idx)
	assert.Equal(t, uint32(1), rec.Val)
}

func TestFindFirstNotFound(t *testing.T) {
	s, _ := openTestStore(t)

	// Empty file behaves as zero records, not as an error.
	_, _, err := s.FindFirst(func(pair) bool { return true })
	assert.True(t, apperrors.IsNotFound(err))

	_, err = s.Append(pair{Key: 7})
	require.NoError(t, err)

	_, _, err = s.FindFirst(func(p pair) bool { return p.Key == 99 })
	assert.True(t, apperrors.IsNotFound(err))
}

func TestWriteAtOverwritesInPlace(t *testing.T) {
	s, _ := openTestStore(t)
	for i := range 3 {
		_, err := s.Append(pair{Key: uint32(i)})
		require.NoError(t, err)
	}

	require.NoError(t, s.WriteAt(1, pair{Key: 42, Val: 42}))

	rec, err := s.ReadAt(1)
	require.NoError(t, err)
	assert.Equal(t, pair{Key: 42, Val: 42}, rec)

	// Neighbors untouched, count unchanged.
	assert.Equal(t, int64(3), s.Count())
	first, err := s.ReadAt(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), first.Key)

	assert.True(t, apperrors.IsOutOfRange(s.WriteAt(3, pair{})))
}

func TestAllIteratesInFileOrder(t *testing.T) {
	s, _ := openTestStore(t)
	for i := range 4 {
		_, err := s.Append(pair{Key: uint32(i)})
		require.NoError(t, err)
	}

	var keys []uint32
	for idx, rec := range s.All() {
		assert.Equal(t, int64(len(keys)), idx)
		keys = append(keys, rec.Key)
	}
	assert.Equal(t, []uint32{0, 1, 2, 3}, keys)
}

func TestAllStopsAtTruncatedRecord(t *testing.T) {
	s, path := openTestStore(t)
	for i := range 2 {
		_, err := s.Append(pair{Key: uint32(i)})
		require.NoError(t, err)
	}

	// Simulate a torn write: 3 stray bytes after the last full record.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.Write([]byte{0xDE, 0xAD, 0xBE})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	var count int
	for range s.All() {
		count++
	}
	assert.Equal(t, 2, count)

	// The partial tail is not a record.
	assert.Equal(t, int64(2), s.Count())
	_, _, err = s.FindFirst(func(p pair) bool { return p.Key == 0xDEAD })
	assert.True(t, apperrors.IsNotFound(err))
}

func TestClosedStoreRejectsOperations(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.Append(pair{})
	assert.ErrorIs(t, err, apperrors.ErrStoreClosed)

	_, _, err = s.FindFirst(func(pair) bool { return true })
	assert.ErrorIs(t, err, apperrors.ErrStoreClosed)

	// Close is idempotent.
	assert.NoError(t, s.Close())
}

func TestOpenCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.dat")
	s, err := Open(path, pairCodec{})
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	assert.Equal(t, int64(0), s.Count())
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
