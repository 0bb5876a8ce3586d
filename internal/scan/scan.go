// Package scan provides directory listing and file timestamp resolution.
// It only stats files; contents are never read.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// File is a snapshot of one file taken at scan time. It is never mutated;
// a fresh scan produces fresh values.
type File struct {
	AbsPath string
	Name    string // basename with extension
	Ext     string // extension as found on disk, including the dot
	Size    int64
}

func newFile(path string, size int64) File {
	base := filepath.Base(path)
	return File{
		AbsPath: path,
		Name:    base,
		Ext:     filepath.Ext(base),
		Size:    size,
	}
}

// List returns the regular files directly inside dir (one level, no
// recursion), sorted by name for deterministic processing order.
func List(dir string) ([]File, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	var files []File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, newFile(filepath.Join(abs, e.Name()), info.Size()))
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Discover walks root recursively and collects files whose extension is in
// exts (lowercase, with leading dot). Results are sorted lexicographically
// by path so repeated runs enumerate in the same order.
func Discover(root string, exts []string) ([]File, error) {
	allow := make(map[string]bool, len(exts))
	for _, e := range exts {
		allow[normalizeExt(e)] = true
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var files []File
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !allow[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		files = append(files, newFile(path, info.Size()))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].AbsPath < files[j].AbsPath })
	return files, nil
}

// FileDate resolves the best-effort capture time of a file: the earlier of
// its status-change time and its modification time. Creation time is not
// portably available, and mtime alone lies after copies from card readers;
// taking the earlier of the two approximates the original capture time.
func FileDate(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	mod := info.ModTime()
	if change, ok := changeTime(info); ok && change.Before(mod) {
		return change, nil
	}
	return mod, nil
}

// normalizeExt lowercases an extension and guarantees a leading dot.
func normalizeExt(e string) string {
	e = strings.ToLower(strings.TrimSpace(e))
	if e == "" {
		return e
	}
	if !strings.HasPrefix(e, ".") {
		e = "." + e
	}
	return e
}
