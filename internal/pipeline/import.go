// Package pipeline orchestrates the two batch runs: weekly import
// (discover → filter → bucket → copy) and directory organize
// (list → classify → rename → move).
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/backmassage/picsort/internal/bucket"
	"github.com/backmassage/picsort/internal/config"
	"github.com/backmassage/picsort/internal/display"
	"github.com/backmassage/picsort/internal/logging"
	"github.com/backmassage/picsort/internal/scan"
	"github.com/backmassage/picsort/internal/transfer"
)

// RunImport discovers image files under cfg.SourceDir, buckets them into
// week-numbered groups, and copies each group into its "Week NN" directory
// under cfg.DestDir. The directory snapshot is taken once up front; the
// filesystem is not re-observed mid-run.
func RunImport(ctx context.Context, cfg *config.Config, log *logging.Logger) ImportStats {
	var stats ImportStats

	log.Info("Scanning for image files in %s …", cfg.SourceDir)
	files, err := scan.Discover(cfg.SourceDir, cfg.ImageExts)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		stats.Failed++
		return stats
	}
	if len(files) == 0 {
		log.Warn("No image files found in source directory")
		return stats
	}

	stats.Found = len(files)
	log.Info("Found %d image files", stats.Found)
	if cfg.Weekly {
		log.Info("Weekly mode: keeping only photos taken on a %s", cfg.Weekday)
	}
	if cfg.HasAfter {
		log.Info("Only importing photos after %s", cfg.AfterDate)
	}

	res := bucket.ByWeek(resolveEntries(files), bucket.Filter{
		Anchor:      cfg.Anchor,
		After:       cfg.After,
		HasAfter:    cfg.HasAfter,
		Weekday:     cfg.Weekday,
		WeekdayOnly: cfg.Weekly,
	})

	for _, f := range res.NoTimestamp {
		log.Warn("Could not determine date for %s, skipping", f.Name)
	}
	stats.NoTimestamp = len(res.NoTimestamp)

	if res.Empty() {
		switch {
		case cfg.Weekly:
			log.Warn("No photos found from weekly photo days (%ss)", cfg.Weekday)
		case cfg.HasAfter:
			log.Warn("No photos found after %s", cfg.AfterDate)
		default:
			log.Warn("No photos found matching criteria")
		}
		return stats
	}

	stats.Kept = res.Kept
	stats.Weeks = len(res.Weeks)
	log.Info("After filtering: %d files in %d week(s)", stats.Kept, stats.Weeks)
	fmt.Println(display.WeekTable(res))

	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be copied")
	}

	for _, idx := range res.Indices() {
		group := res.Weeks[idx]
		weekDir := filepath.Join(cfg.DestDir, fmt.Sprintf(cfg.WeekDirFormat, idx))

		if cfg.DryRun {
			log.Success("[DRY] Would copy %d file(s) to %s", len(group), weekDir)
			for _, f := range group {
				log.Debug(cfg.Verbose, "  would copy: %s", f.Name)
			}
			stats.Copied += len(group)
			continue
		}

		log.Info("Copying %d file(s) to %s", len(group), weekDir)
		pairs := make([]transfer.Pair, 0, len(group))
		for _, f := range group {
			pairs = append(pairs, transfer.Pair{Src: f.AbsPath, Dst: filepath.Join(weekDir, f.Name)})
		}

		rep := transfer.Execute(ctx, pairs, transfer.OpCopy, func(r transfer.Result) {
			if r.Err != nil {
				log.Error("  error copying %s: %v", filepath.Base(r.Src), r.Err)
				return
			}
			log.Debug(cfg.Verbose, "  copied: %s", filepath.Base(r.Src))
		})
		stats.Copied += rep.Done
		stats.Failed += rep.Failed
		stats.Bytes += rep.Bytes
		if rep.Interrupted {
			stats.Interrupted = true
			log.Warn("Interrupted")
			break
		}
	}

	logImportSummary(cfg, log, &stats)
	return stats
}

// resolveEntries pairs each file with its resolved timestamp. Resolution
// failures are carried as unresolved entries so the bucketer can count and
// report them instead of aborting the pass.
func resolveEntries(files []scan.File) []bucket.Entry {
	entries := make([]bucket.Entry, 0, len(files))
	for _, f := range files {
		t, err := scan.FileDate(f.AbsPath)
		entries = append(entries, bucket.Entry{File: f, Time: t, Resolved: err == nil})
	}
	return entries
}

func logImportSummary(cfg *config.Config, log *logging.Logger, stats *ImportStats) {
	log.Info("==============================")
	log.Info("Done: %d copied, %d failed, %d without timestamp", stats.Copied, stats.Failed, stats.NoTimestamp)
	if cfg.DryRun {
		log.Info("Data copied: n/a (dry run)")
		return
	}
	log.Success("Data copied: %s across %d week(s)", humanize.IBytes(uint64(stats.Bytes)), stats.Weeks)
	if stats.Failed > 0 {
		log.Warn("%d file(s) failed to copy; see errors above", stats.Failed)
	}
}
