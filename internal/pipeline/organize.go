package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/backmassage/picsort/internal/classify"
	"github.com/backmassage/picsort/internal/config"
	"github.com/backmassage/picsort/internal/display"
	"github.com/backmassage/picsort/internal/logging"
	"github.com/backmassage/picsort/internal/scan"
	"github.com/backmassage/picsort/internal/sequence"
	"github.com/backmassage/picsort/internal/transfer"
)

// RunOrganize partitions the files directly inside cfg.TargetDir by format
// category, computes the rename mapping per category, and moves each
// category into its subdirectory (JPG/, RAW/ by default). Files matching
// no category are reported and left in place.
func RunOrganize(ctx context.Context, cfg *config.Config, log *logging.Logger) OrganizeStats {
	var stats OrganizeStats

	files, err := scan.List(cfg.TargetDir)
	if err != nil {
		log.Error("Cannot list %s: %v", cfg.TargetDir, err)
		stats.Failed++
		return stats
	}
	stats.Found = len(files)

	rules := make([]classify.Rule, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		rules = append(rules, classify.NewRule(c.Name, c.Dir, c.Extensions))
	}
	part := classify.Split(files, rules)

	stats.Matched = part.Matched()
	stats.Unclassified = len(part.Files(classify.Unclassified))
	if stats.Matched == 0 {
		log.Warn("No %s files found in %q", categoryNames(rules), cfg.TargetDir)
		return stats
	}

	counts := make([]string, 0, len(rules))
	for _, r := range rules {
		counts = append(counts, fmt.Sprintf("%d %s", len(part.Files(r.Name)), r.Name))
	}
	log.Info("Found %s files", strings.Join(counts, " and "))

	if cfg.Prefix != "" {
		log.Info("Renaming with prefix %q and sequential numbering", cfg.Prefix)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be moved")
	}

	for _, r := range rules {
		group := part.Files(r.Name)
		if len(group) == 0 {
			continue
		}
		mapping := sequence.BuildMapping(group, cfg.Prefix)
		destDir := filepath.Join(cfg.TargetDir, r.Dir)

		if cfg.DryRun {
			log.Success("[DRY] Would move %d %s file(s) to %s/", len(mapping), r.Name, r.Dir)
			fmt.Println(display.MappingTable(r.Dir, mapping))
			stats.Moved += len(mapping)
			continue
		}

		log.Info("Moving %d %s file(s) to %s/", len(mapping), r.Name, r.Dir)
		pairs := make([]transfer.Pair, 0, len(mapping))
		for _, m := range mapping {
			pairs = append(pairs, transfer.Pair{Src: m.File.AbsPath, Dst: filepath.Join(destDir, m.NewName)})
		}

		rep := transfer.Execute(ctx, pairs, transfer.OpMove, func(res transfer.Result) {
			src := filepath.Base(res.Src)
			if res.Err != nil {
				log.Error("  error moving %s: %v", src, res.Err)
				return
			}
			if dst := filepath.Base(res.Dst); dst != src {
				log.Debug(cfg.Verbose, "  moved and renamed: %s -> %s", src, dst)
			} else {
				log.Debug(cfg.Verbose, "  moved: %s", src)
			}
		})
		stats.Moved += rep.Done
		stats.Failed += rep.Failed
		stats.Bytes += rep.Bytes
		if rep.Interrupted {
			stats.Interrupted = true
			log.Warn("Interrupted")
			break
		}
	}

	if stats.Unclassified > 0 {
		log.Warn("%d file(s) matched no category and were left in place", stats.Unclassified)
		for _, f := range part.Files(classify.Unclassified) {
			log.Debug(cfg.Verbose, "  unclassified: %s", f.Name)
		}
	}

	logOrganizeSummary(cfg, log, &stats)
	return stats
}

func categoryNames(rules []classify.Rule) string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	return strings.Join(names, " or ")
}

func logOrganizeSummary(cfg *config.Config, log *logging.Logger, stats *OrganizeStats) {
	log.Info("==============================")
	log.Info("Done: %d moved, %d failed, %d unclassified", stats.Moved, stats.Failed, stats.Unclassified)
	if cfg.DryRun {
		log.Info("Data moved: n/a (dry run)")
		return
	}
	log.Success("Data moved: %s", humanize.IBytes(uint64(stats.Bytes)))
	if stats.Failed > 0 {
		log.Warn("%d file(s) failed to move; see errors above", stats.Failed)
	}
}
