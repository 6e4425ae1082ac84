// Package flatfile reads and rewrites the header-prefixed text files that
// back every flooring store.
//
// Files are always rewritten whole. Write stages the new contents in a
// sibling ".tmp" file and renames it over the target, so readers see either
// the old file or the new one.
package flatfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const filePerm = 0o644

// Load returns the record lines of path, skipping blank lines and any line
// equal to header (case-insensitive). A missing file is an error matching
// fs.ErrNotExist.
func Load(fsys afero.Fs, path, header string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := readLines(f, header)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// LoadOrCreate behaves like Load, except that a missing file is created
// containing only the header and an empty result is returned. created
// reports whether the file was created by this call.
func LoadOrCreate(fsys afero.Fs, path, header string) (lines []string, created bool, err error) {
	lines, err = Load(fsys, path, header)
	if err == nil {
		return lines, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}
	if err := Write(fsys, path, header, nil); err != nil {
		return nil, false, err
	}
	return nil, true, nil
}

// Write replaces path with header followed by one line per entry.
func Write(fsys afero.Fs, path, header string, lines []string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteByte('\n')
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(fsys, tmp, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(fsys afero.Fs, path string) (bool, error) {
	ok, err := afero.Exists(fsys, path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return ok, nil
}

// Delete removes path. Deleting a missing file is not an error.
func Delete(fsys afero.Fs, path string) error {
	if err := fsys.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func readLines(r io.Reader, header string) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.EqualFold(line, header) {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
