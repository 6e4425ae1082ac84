package store

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/roach88/flooring/internal/codec"
	"github.com/roach88/flooring/internal/flatfile"
)

// Table is an ordered, keyed collection of records backed by one flat file.
// Records keep their file order; keys are unique.
type Table[K comparable, T any] struct {
	fs    afero.Fs
	path  string
	codec codec.Codec[T]
	key   func(T) K
	rows  []T
	log   *zap.Logger
}

// NewTable creates an empty table for the file at path.
// key extracts the (already normalized) identity of a record.
func NewTable[K comparable, T any](fs afero.Fs, path string, c codec.Codec[T], key func(T) K, log *zap.Logger) *Table[K, T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Table[K, T]{fs: fs, path: path, codec: c, key: key, log: log}
}

// Path returns the backing file path.
func (t *Table[K, T]) Path() string {
	return t.path
}

// Load replaces the in-memory rows with the file's contents.
// The file must exist.
func (t *Table[K, T]) Load() error {
	lines, err := flatfile.Load(t.fs, t.path, t.codec.Header())
	if err != nil {
		return err
	}
	return t.decode(lines)
}

// LoadOrCreate is Load, but creates a header-only file when none exists.
func (t *Table[K, T]) LoadOrCreate() error {
	lines, created, err := flatfile.LoadOrCreate(t.fs, t.path, t.codec.Header())
	if err != nil {
		return err
	}
	if created {
		t.log.Debug("created file", zap.String("path", t.path))
	}
	return t.decode(lines)
}

func (t *Table[K, T]) decode(lines []string) error {
	rows := make([]T, 0, len(lines))
	seen := make(map[K]struct{}, len(lines))
	for i, line := range lines {
		r, err := t.codec.Decode(line)
		if codec.IsMalformed(err) {
			t.log.Warn("skipping malformed row",
				zap.String("path", t.path),
				zap.Int("row", i+1),
				zap.Error(err),
			)
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s row %d: %w", t.path, i+1, err)
		}
		k := t.key(r)
		if _, dup := seen[k]; dup {
			t.log.Warn("skipping duplicate row",
				zap.String("path", t.path),
				zap.Int("row", i+1),
				zap.Any("key", k),
			)
			continue
		}
		seen[k] = struct{}{}
		rows = append(rows, r)
	}
	t.rows = rows
	return nil
}

// Save rewrites the backing file with every row.
func (t *Table[K, T]) Save() error {
	lines := make([]string, len(t.rows))
	for i, r := range t.rows {
		lines[i] = t.codec.Encode(r)
	}
	return flatfile.Write(t.fs, t.path, t.codec.Header(), lines)
}

// Len returns the number of rows.
func (t *Table[K, T]) Len() int {
	return len(t.rows)
}

// All returns a copy of the rows in file order.
func (t *Table[K, T]) All() []T {
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// Get returns the row with key k.
func (t *Table[K, T]) Get(k K) (T, bool) {
	if i := t.index(k); i >= 0 {
		return t.rows[i], true
	}
	var zero T
	return zero, false
}

// Filter returns the rows for which keep returns true.
func (t *Table[K, T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Insert appends r unless a row with the same key exists.
// It reports whether r was added.
func (t *Table[K, T]) Insert(r T) bool {
	if t.index(t.key(r)) >= 0 {
		return false
	}
	t.rows = append(t.rows, r)
	return true
}

// Replace swaps the row sharing r's key for r.
// It reports whether a row was replaced.
func (t *Table[K, T]) Replace(r T) bool {
	i := t.index(t.key(r))
	if i < 0 {
		return false
	}
	t.rows[i] = r
	return true
}

// Remove deletes the row with key k and reports whether one was deleted.
func (t *Table[K, T]) Remove(k K) bool {
	i := t.index(k)
	if i < 0 {
		return false
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return true
}

func (t *Table[K, T]) index(k K) int {
	for i, r := range t.rows {
		if t.key(r) == k {
			return i
		}
	}
	return -1
}
