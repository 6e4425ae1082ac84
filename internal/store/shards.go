package store

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/roach88/flooring/internal/flatfile"
	"github.com/roach88/flooring/internal/model"
)

const (
	shardPrefix = "Orders_"
	shardSuffix = ".txt"
)

// Shards locates and manages the per-date order files in one directory.
type Shards struct {
	fs  afero.Fs
	dir string
	log *zap.Logger
}

// NewShards returns the shard directory dir on fs.
func NewShards(fsys afero.Fs, dir string, log *zap.Logger) *Shards {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shards{fs: fsys, dir: dir, log: log}
}

// FS returns the filesystem the shards live on.
func (s *Shards) FS() afero.Fs {
	return s.fs
}

// Dir returns the shard directory.
func (s *Shards) Dir() string {
	return s.dir
}

// FileName returns the shard file name for date, e.g. Orders_07062020.txt.
func FileName(date time.Time) string {
	return shardPrefix + model.FormatOrderDate(date) + shardSuffix
}

// Path returns the shard file path for date.
func (s *Shards) Path(date time.Time) string {
	return filepath.Join(s.dir, FileName(date))
}

// Exists reports whether the shard file for date exists.
func (s *Shards) Exists(date time.Time) (bool, error) {
	return flatfile.Exists(s.fs, s.Path(date))
}

// Delete removes the shard file for date if it exists.
func (s *Shards) Delete(date time.Time) error {
	path := s.Path(date)
	ok, err := flatfile.Exists(s.fs, path)
	if err != nil || !ok {
		return err
	}
	if err := flatfile.Delete(s.fs, path); err != nil {
		return err
	}
	s.log.Info("deleted order shard", zap.String("path", path))
	return nil
}

// Dates lists the dates that currently have a shard file, oldest first.
// Files in the directory that do not follow the shard naming are ignored.
func (s *Shards) Dates() ([]time.Time, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.dir, err)
	}

	var dates []time.Time
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, shardPrefix) || !strings.HasSuffix(name, shardSuffix) {
			continue
		}
		d, err := model.ParseOrderDate(strings.TrimSuffix(strings.TrimPrefix(name, shardPrefix), shardSuffix))
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// Open loads the order shard for date, which may use slash separators.
//
// A parseable date whose shard is missing gets a header-only file. An
// unparseable date yields an empty, unbound store that never touches the
// filesystem.
func (s *Shards) Open(date string) (*OrderStore, error) {
	raw := model.NormalizeDate(date)
	log := s.log.With(zap.String("date", raw))

	st := &OrderStore{shards: s, raw: raw, log: log}

	parsed, err := model.ParseOrderDate(raw)
	if err != nil {
		st.table = NewTable(s.fs, "", codecForOrders, orderKey, log)
		log.Debug("order store unbound: unparseable date")
		return st, nil
	}

	st.date = parsed
	st.table = NewTable(s.fs, s.Path(parsed), codecForOrders, orderKey, log)
	if err := st.table.LoadOrCreate(); err != nil {
		return nil, fmt.Errorf("open order shard %s: %w", raw, err)
	}
	return st, nil
}
