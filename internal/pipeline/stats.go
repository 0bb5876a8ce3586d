package pipeline

// ImportStats tracks aggregate counters for one import run.
type ImportStats struct {
	Found       int // image files discovered
	Kept        int // files surviving the filters
	NoTimestamp int // excluded with a warning
	Weeks       int // non-empty week buckets
	Copied      int
	Failed      int
	Bytes       int64
	Interrupted bool
}

// NothingToDo reports the "no files matched" outcome, which is not an error.
func (s ImportStats) NothingToDo() bool { return s.Kept == 0 && s.Failed == 0 }

// OrganizeStats tracks aggregate counters for one organize run.
type OrganizeStats struct {
	Found        int // files in the flat listing
	Matched      int // files assigned to a named category
	Unclassified int // files left in place
	Moved        int
	Failed       int
	Bytes        int64
	Interrupted  bool
}
