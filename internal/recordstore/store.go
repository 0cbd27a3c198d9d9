// Package recordstore implements a fixed-width binary record file: a
// headerless, contiguous array of same-size entries addressable by integer
// index. Records are created only by append and mutated only by in-place
// overwrite; there is no delete, so index == append position for the life
// of the file.
//
// A store owns one open file handle from Open until Close. Operations are
// serialized with an in-process mutex; the design assumes exactly one
// process accessing the file at a time.
package recordstore

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"sync"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
)

// Codec translates between a record value and its fixed-width byte layout.
// Width must be constant: offset arithmetic (index * width) depends on it.
type Codec[T any] interface {
	Width() int
	Encode(rec T, buf []byte)
	Decode(buf []byte) T
}

// Store is a fixed-width record file typed to one record kind.
type Store[T any] struct {
	mu     sync.Mutex
	file   *os.File
	codec  Codec[T]
	width  int64
	path   string
	closed bool
}

// Open opens or creates the backing file and holds its handle until Close.
func Open[T any](path string, codec Codec[T]) (*Store[T], error) {
	width := codec.Width()
	if width <= 0 {
		return nil, fmt.Errorf("recordstore: invalid record width %d", width)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open record file %s: %w", path, err)
	}

	return &Store[T]{
		file:  file,
		codec: codec,
		width: int64(width),
		path:  path,
	}, nil
}

// Close releases the file handle. The store must not be used afterwards.
func (s *Store[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close record file %s: %w", s.path, err)
	}
	return nil
}

// Count returns the number of complete records: file size / record width.
// An empty or just-created file counts as zero; Count never fails.
func (s *Store[T]) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked()
}

func (s *Store[T]) countLocked() int64 {
	info, err := s.file.Stat()
	if err != nil {
		return 0
	}
	return info.Size() / s.width
}

// Append writes the record after the last complete record, flushes, and
// returns its index. It fails only on I/O errors, never for capacity.
func (s *Store[T]) Append(rec T) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, apperrors.ErrStoreClosed
	}

	buf := make([]byte, s.width)
	s.codec.Encode(rec, buf)

	idx := s.countLocked()
	if _, err := s.file.WriteAt(buf, idx*s.width); err != nil {
		return 0, fmt.Errorf("append record to %s: %w", s.path, err)
	}
	if err := s.file.Sync(); err != nil {
		return 0, fmt.Errorf("flush %s after append: %w", s.path, err)
	}
	return idx, nil
}

// FindFirst scans from index 0 and returns the first record satisfying
// pred, short-circuiting on the match. No match (including an empty file)
// yields ErrNotFound. O(n) per call.
func (s *Store[T]) FindFirst(pred func(T) bool) (int64, T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.closed {
		return 0, zero, apperrors.ErrStoreClosed
	}

	buf := make([]byte, s.width)
	for idx := int64(0); ; idx++ {
		n, err := s.file.ReadAt(buf, idx*s.width)
		if err == io.EOF {
			if n > 0 {
				s.warnTruncated(idx, n)
			}
			return 0, zero, apperrors.ErrNotFound
		}
		if err != nil {
			return 0, zero, fmt.Errorf("read record %d from %s: %w", idx, s.path, err)
		}
		if rec := s.codec.Decode(buf); pred(rec) {
			return idx, rec, nil
		}
	}
}

// ReadAt returns the record at idx. Indexes outside [0, Count) yield
// ErrOutOfRange.
func (s *Store[T]) ReadAt(idx int64) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.closed {
		return zero, apperrors.ErrStoreClosed
	}
	if idx < 0 || idx >= s.countLocked() {
		return zero, fmt.Errorf("record %d in %s: %w", idx, s.path, apperrors.ErrOutOfRange)
	}

	buf := make([]byte, s.width)
	if _, err := s.file.ReadAt(buf, idx*s.width); err != nil {
		return zero, fmt.Errorf("read record %d from %s: %w", idx, s.path, err)
	}
	return s.codec.Decode(buf), nil
}

// WriteAt overwrites exactly one record in place, the only mutation
// primitive. Indexes outside [0, Count) yield ErrOutOfRange.
func (s *Store[T]) WriteAt(idx int64, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return apperrors.ErrStoreClosed
	}
	if idx < 0 || idx >= s.countLocked() {
		return fmt.Errorf("record %d in %s: %w", idx, s.path, apperrors.ErrOutOfRange)
	}

	buf := make([]byte, s.width)
	s.codec.Encode(rec, buf)
	if _, err := s.file.WriteAt(buf, idx*s.width); err != nil {
		return fmt.Errorf("overwrite record %d in %s: %w", idx, s.path, err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("flush %s after overwrite: %w", s.path, err)
	}
	return nil
}

// All iterates records lazily in file order (== insertion order). A short
// trailing record ends the iteration with a logged warning; the sequence
// is undefined if the store is mutated mid-scan.
func (s *Store[T]) All() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		buf := make([]byte, s.width)
		for idx := int64(0); ; idx++ {
			s.mu.Lock()
			if s.closed {
				s.mu.Unlock()
				return
			}
			n, err := s.file.ReadAt(buf, idx*s.width)
			s.mu.Unlock()

			if err == io.EOF {
				if n > 0 {
					s.warnTruncated(idx, n)
				}
				return
			}
			if err != nil {
				slog.Warn("record scan aborted",
					"path", s.path,
					"index", idx,
					"error", err)
				return
			}
			if !yield(idx, s.codec.Decode(buf)) {
				return
			}
		}
	}
}

// warnTruncated reports a partial trailing record. The scan stops there;
// the bytes are left untouched for inspection.
func (s *Store[T]) warnTruncated(idx int64, got int) {
	slog.Warn("truncated record at end of store",
		"path", s.path,
		"index", idx,
		"bytes", got,
		"width", s.width)
}
