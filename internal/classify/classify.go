// Package classify partitions a file listing into named format categories
// by extension. No timestamps, no content inspection.
package classify

import (
	"strings"

	"github.com/backmassage/picsort/internal/scan"
)

// Unclassified is the implicit catch-all category for files matching no rule.
const Unclassified = "unclassified"

// Rule describes one category: a name, the subdirectory files of this
// category are organized into, and the extension set that selects them.
type Rule struct {
	Name string
	Dir  string
	exts map[string]bool
}

// NewRule builds a category rule. Extensions are matched case-insensitively
// and may be given with or without the leading dot.
func NewRule(name, dir string, exts []string) Rule {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return Rule{Name: name, Dir: dir, exts: set}
}

// Matches reports whether the file's extension belongs to this category.
func (r Rule) Matches(f scan.File) bool {
	return r.exts[strings.ToLower(f.Ext)]
}

// Partition is a disjoint split of a file set: every input file appears in
// exactly one category. Order lists categories in rule order, with
// Unclassified last when non-empty.
type Partition struct {
	ByCategory map[string][]scan.File
	Order      []string
}

// Split assigns each file to the first rule whose extension set matches it;
// files matching no rule land in Unclassified. Rule order decides ownership
// when extension sets overlap, which keeps the partition disjoint.
func Split(files []scan.File, rules []Rule) Partition {
	p := Partition{ByCategory: make(map[string][]scan.File, len(rules)+1)}
	for _, r := range rules {
		p.Order = append(p.Order, r.Name)
		p.ByCategory[r.Name] = nil
	}

	for _, f := range files {
		assigned := false
		for _, r := range rules {
			if r.Matches(f) {
				p.ByCategory[r.Name] = append(p.ByCategory[r.Name], f)
				assigned = true
				break
			}
		}
		if !assigned {
			p.ByCategory[Unclassified] = append(p.ByCategory[Unclassified], f)
		}
	}

	if len(p.ByCategory[Unclassified]) > 0 {
		p.Order = append(p.Order, Unclassified)
	} else {
		delete(p.ByCategory, Unclassified)
	}
	return p
}

// Files returns the files of one category in input order.
func (p Partition) Files(name string) []scan.File { return p.ByCategory[name] }

// Total is the number of files across all categories; equals the input size.
func (p Partition) Total() int {
	n := 0
	for _, fs := range p.ByCategory {
		n += len(fs)
	}
	return n
}

// Matched is the number of files assigned to a named (non-catch-all) category.
func (p Partition) Matched() int {
	return p.Total() - len(p.ByCategory[Unclassified])
}
