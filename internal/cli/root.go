// Package cli wires the cobra command surface: the picsort root command
// and the import/organize subcommands. Config resolution order is
// defaults < .picsort.yaml < PICSORT_* env < CLI flags.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/backmassage/picsort/internal/config"
	"github.com/backmassage/picsort/internal/logging"
)

// version is injected at build time via -ldflags. When built with plain
// "go build" it retains this default.
var version = "0.2.0-dev"

var rootCmd = &cobra.Command{
	Use:   "picsort",
	Short: "Organize camera photos into format and week directories",
	Long: `picsort reorganizes photo files from a camera workflow: it splits JPEG
and RAW files into subdirectories with deterministic sequential names, and
imports SD-card dumps into week-numbered folders based on file timestamps.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "picsort: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .picsort.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "preview only; do not copy or move files")
	rootCmd.PersistentFlags().String("color", "", "color output: auto | always | never")
	rootCmd.PersistentFlags().StringP("log", "l", "", "append logs to file")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".picsort")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PICSORT")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadConfig merges viper state with the persistent flag overrides.
// Subcommands apply their own flags and positional args afterwards, then
// call Validate.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return cfg, err
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	if v, _ := cmd.Flags().GetBool("dry-run"); v {
		cfg.DryRun = true
	}
	if s, _ := cmd.Flags().GetString("color"); s != "" {
		cfg.ColorMode = config.ColorMode(s)
	}
	if s, _ := cmd.Flags().GetString("log"); s != "" {
		cfg.LogFile = s
	}
	return cfg, nil
}

// ensureDir is the fatal input validation done before the engine runs:
// the path must exist and be a directory.
func ensureDir(path string) error {
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory %q does not exist", path)
	}
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%q is not a directory", path)
	}
	return nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM so the
// pipeline can stop between files without leaving partial transfers.
func signalContext(log *logging.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()
	return ctx, cancel
}
