package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/picsort/internal/config"
	"github.com/backmassage/picsort/internal/display"
	"github.com/backmassage/picsort/internal/logging"
	"github.com/backmassage/picsort/internal/pipeline"
)

var organizeCmd = &cobra.Command{
	Use:   "organize <directory>",
	Short: "Split a directory into JPG/ and RAW/ with optional renaming",
	Long: `Organize partitions the files directly inside a directory by format
category (JPEG vs RAW by default) and moves each category into its own
subdirectory. With --prefix, files are renamed to {prefix}-0001.ext,
{prefix}-0002.ext, … ordered by the shot counter in the original name.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrganize,
}

func init() {
	organizeCmd.Flags().StringP("prefix", "p", "", "rename files with this prefix and sequential numbering")

	rootCmd.AddCommand(organizeCmd)
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg.TargetDir = config.NormalizeDirArg(args[0])
	if s, _ := cmd.Flags().GetString("prefix"); s != "" {
		cfg.Prefix = s
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := ensureDir(cfg.TargetDir); err != nil {
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

	stats := pipeline.RunOrganize(ctx, &cfg, log)
	if stats.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to move", stats.Failed)
	}
	return nil
}
