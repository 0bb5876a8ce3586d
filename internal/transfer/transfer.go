// Package transfer executes copy/move operations for (source, destination)
// pairs and reports per-file outcomes. A failed pair never aborts the rest
// of the batch; each failure is independent.
package transfer

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Op selects the filesystem operation for a batch.
type Op int

const (
	OpCopy Op = iota
	OpMove
)

func (o Op) String() string {
	if o == OpMove {
		return "move"
	}
	return "copy"
}

// Pair is one planned transfer. Both paths are absolute.
type Pair struct {
	Src string
	Dst string
}

// Result records the outcome of one pair. Err is nil on success.
type Result struct {
	Pair
	Err error
}

// Report aggregates a batch of results.
type Report struct {
	Results     []Result
	Done        int
	Failed      int
	Interrupted bool
	Bytes       int64 // bytes of successfully transferred sources
}

// Execute runs op over pairs sequentially, invoking observe (if non-nil)
// after each pair so callers can log progress. Cancellation via ctx stops
// between pairs, never mid-file.
func Execute(ctx context.Context, pairs []Pair, op Op, observe func(Result)) Report {
	var rep Report
	for _, p := range pairs {
		if ctx.Err() != nil {
			rep.Interrupted = true
			break
		}

		var size int64
		if fi, err := os.Stat(p.Src); err == nil {
			size = fi.Size()
		}

		var err error
		if op == OpMove {
			err = Move(p.Src, p.Dst)
		} else {
			err = Copy(p.Src, p.Dst)
		}

		r := Result{Pair: p, Err: err}
		rep.Results = append(rep.Results, r)
		if err != nil {
			rep.Failed++
		} else {
			rep.Done++
			rep.Bytes += size
		}
		if observe != nil {
			observe(r)
		}
	}
	return rep
}

// Move renames src to dst, creating dst's directory first. When the rename
// crosses filesystems (SD card to disk) it degrades to copy+remove.
func Move(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}
	if err := Copy(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// Copy copies src to dst, creating dst's directory first and preserving the
// source's permission bits and modification time (shutil.copy2 semantics).
// A partially written dst is removed on failure.
func Copy(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
