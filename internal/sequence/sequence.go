// Package sequence derives ordering keys from camera filenames and builds
// deterministic rename mappings from them.
package sequence

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/backmassage/picsort/internal/scan"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Key is the ordering value extracted from a filename. A key is either a
// defined integer or undefined; undefined keys sort after every defined key.
// The "sorts last" rule lives in [Key.Less], not in a sentinel value.
type Key struct {
	n       int
	defined bool
}

// Defined reports whether a digit run was found.
func (k Key) Defined() bool { return k.defined }

// Int returns the numeric value; only meaningful when Defined.
func (k Key) Int() int { return k.n }

// Less orders keys ascending, with undefined keys after all defined ones.
// Equal and mutually-undefined keys are not Less; callers must use a stable
// sort so input order breaks ties.
func (k Key) Less(o Key) bool {
	switch {
	case !k.defined:
		return false
	case !o.defined:
		return true
	default:
		return k.n < o.n
	}
}

func (k Key) String() string {
	if !k.defined {
		return "undefined"
	}
	return strconv.Itoa(k.n)
}

// ExtractKey derives the sequence key from a filename: the extension is
// stripped and the integer value of the last run of decimal digits in the
// stem is taken. Camera names often carry both a model digit and a trailing
// shot counter (e.g. "EOS1-IMG_0042"); the counter is assumed to come last.
// No digit run means an undefined key. Leading zeros parse numerically.
func ExtractKey(filename string) Key {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	runs := digitRun.FindAllString(stem, -1)
	if len(runs) == 0 {
		return Key{}
	}
	run := runs[len(runs)-1]
	// Keep the trailing digits of absurdly long runs; real shot counters
	// are 4-6 digits and relative order within the run is preserved.
	if len(run) > 18 {
		run = run[len(run)-18:]
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return Key{}
	}
	return Key{n: n, defined: true}
}

// Rename associates one scanned file with its destination filename.
type Rename struct {
	File    scan.File
	NewName string
}

// BuildMapping computes the rename mapping for a set of files. Files are
// stable-sorted by sequence key (undefined keys last, ties keep input
// order) and numbered 1..N in that order. With a prefix the new name is
// "{prefix}-{index %04d}{ext}" with the extension lowercased; without one
// the mapping is the identity. The result is deterministic for a fixed
// input set and order, so re-running it reproduces the same names.
func BuildMapping(files []scan.File, prefix string) []Rename {
	if len(files) == 0 {
		return nil
	}

	ordered := make([]scan.File, len(files))
	copy(ordered, files)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ExtractKey(ordered[i].Name).Less(ExtractKey(ordered[j].Name))
	})

	mapping := make([]Rename, 0, len(ordered))
	for i, f := range ordered {
		name := f.Name
		if prefix != "" {
			name = fmt.Sprintf("%s-%04d%s", prefix, i+1, strings.ToLower(f.Ext))
		}
		mapping = append(mapping, Rename{File: f, NewName: name})
	}
	return mapping
}
