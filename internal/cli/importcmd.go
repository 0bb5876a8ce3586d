package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/picsort/internal/config"
	"github.com/backmassage/picsort/internal/display"
	"github.com/backmassage/picsort/internal/logging"
	"github.com/backmassage/picsort/internal/pipeline"
)

var importCmd = &cobra.Command{
	Use:   "import <source>",
	Short: "Import photos from an SD card into week-numbered directories",
	Long: `Import recursively scans a source directory for image files, groups them
by week relative to the configured anchor date, and copies each group into
a "Week NN" directory under --dest (default: current directory).`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().Bool("weekly", false, "only import photos taken on the weekly photo day")
	importCmd.Flags().String("after", "", "only import photos after this date (YYYY-MM-DD)")
	importCmd.Flags().String("dest", "", "directory to create week folders in (default: current directory)")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg.SourceDir = config.NormalizeDirArg(args[0])
	if b, _ := cmd.Flags().GetBool("weekly"); b {
		cfg.Weekly = true
	}
	if s, _ := cmd.Flags().GetString("after"); s != "" {
		cfg.AfterDate = s
	}
	if s, _ := cmd.Flags().GetString("dest"); s != "" {
		cfg.DestDir = config.NormalizeDirArg(s)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := ensureDir(cfg.SourceDir); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(version)

	ctx, cancel := signalContext(log)
	defer cancel()

	stats := pipeline.RunImport(ctx, &cfg, log)
	if stats.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to import", stats.Failed)
	}
	return nil
}
