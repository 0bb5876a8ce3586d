// Package config holds runtime configuration: defaults, config-file/env
// loading via viper, and validation. Date strings are parsed here so the
// engine packages only ever see time values.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DateLayout is the accepted form for anchor and --after dates.
const DateLayout = "2006-01-02"

// CategoryRule configures one format category: files whose extension is in
// Extensions are organized into the Dir subdirectory.
type CategoryRule struct {
	Name       string   `mapstructure:"name"`
	Dir        string   `mapstructure:"dir"`
	Extensions []string `mapstructure:"extensions"`
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// merged with config file and env values by [Load], and finally mutated by
// CLI flag overrides before [Config.Validate] resolves the derived fields.
type Config struct {
	// Paths (set from positional args).
	SourceDir string // import: source directory (SD card)
	TargetDir string // organize: directory to reorganize

	// Weekly schedule.
	AnchorDate string `mapstructure:"anchor_date"` // Default: "2024-11-13" (a Wednesday).
	WeeklyDay  string `mapstructure:"weekly_day"`  // Default: "wednesday".

	// Import behavior.
	DestDir       string `mapstructure:"dest_dir"`        // Week dirs are created here. Default: ".".
	WeekDirFormat string `mapstructure:"week_dir_format"` // Default: "Week %02d".
	Weekly        bool   // --weekly: keep only the scheduled weekday.
	AfterDate     string // --after: inclusive lower bound, YYYY-MM-DD.

	// Classification.
	Categories []CategoryRule `mapstructure:"categories"`
	ImageExts  []string       `mapstructure:"image_exts"` // Recursive-scan allow-list.

	// Organize behavior.
	Prefix string // --prefix: rename to {prefix}-NNNN.ext.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode `mapstructure:"color"`
	LogFile   string    `mapstructure:"log_file"`

	// Derived by Validate.
	Anchor   time.Time
	After    time.Time
	HasAfter bool
	Weekday  time.Weekday
}

// DefaultConfig returns a Config matching the tool's stock behavior: the
// weekly schedule anchored on Wed 2024-11-13, JPEG/CR3 categories, and the
// full image-extension allow-list for imports.
func DefaultConfig() Config {
	return Config{
		AnchorDate:    "2024-11-13",
		WeeklyDay:     "wednesday",
		DestDir:       ".",
		WeekDirFormat: "Week %02d",
		Categories: []CategoryRule{
			{Name: "jpeg", Dir: "JPG", Extensions: []string{".jpg", ".jpeg"}},
			{Name: "raw", Dir: "RAW", Extensions: []string{".cr3"}},
		},
		ImageExts: []string{".jpg", ".jpeg", ".cr3", ".raw", ".png", ".tiff", ".tif"},
		ColorMode: ColorAuto,
	}
}

// Load merges config-file and environment values from v on top of the
// defaults. Values not present anywhere keep their defaults.
func Load(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()

	v.SetDefault("anchor_date", cfg.AnchorDate)
	v.SetDefault("weekly_day", cfg.WeeklyDay)
	v.SetDefault("dest_dir", cfg.DestDir)
	v.SetDefault("week_dir_format", cfg.WeekDirFormat)
	v.SetDefault("image_exts", cfg.ImageExts)
	v.SetDefault("color", string(cfg.ColorMode))
	v.SetDefault("log_file", cfg.LogFile)

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultConfig().Categories
	}
	return cfg, nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and date fields and resolves the derived Anchor,
// After, and Weekday values.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	anchor, err := ParseDate(c.AnchorDate)
	if err != nil {
		return fmt.Errorf("invalid anchor date %q: use YYYY-MM-DD", c.AnchorDate)
	}
	c.Anchor = anchor

	c.HasAfter = c.AfterDate != ""
	if c.HasAfter {
		after, err := ParseDate(c.AfterDate)
		if err != nil {
			return fmt.Errorf("invalid date format %q: use YYYY-MM-DD", c.AfterDate)
		}
		c.After = after
	}

	day, err := ParseWeekday(c.WeeklyDay)
	if err != nil {
		return err
	}
	c.Weekday = day

	if !strings.Contains(c.WeekDirFormat, "%") {
		return fmt.Errorf("week_dir_format %q needs an integer verb (e.g. %%02d)", c.WeekDirFormat)
	}

	for _, cat := range c.Categories {
		if cat.Name == "" || cat.Dir == "" {
			return errors.New("every category needs a name and a dir")
		}
		if len(cat.Extensions) == 0 {
			return fmt.Errorf("category %q has no extensions", cat.Name)
		}
	}
	return nil
}

// ParseDate parses a strict YYYY-MM-DD date in local time, midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
}

// ParseWeekday resolves an English weekday name (case-insensitive).
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == n {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q (use e.g. 'wednesday')", name)
}
