package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/sdcard", "/media/sdcard"},
		{"single trailing slash", "/media/sdcard/", "/media/sdcard"},
		{"multiple trailing slashes", "/media/sdcard///", "/media/sdcard"},
		{"root path", "/", "/"},
		{"relative path", "photos", "photos"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig_ValidatesClean(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on defaults: %v", err)
	}
	if cfg.Anchor.Weekday() != time.Wednesday {
		t.Errorf("default anchor should be a Wednesday, got %s", cfg.Anchor.Weekday())
	}
	if cfg.Weekday != time.Wednesday {
		t.Errorf("default weekly day = %s, want Wednesday", cfg.Weekday)
	}
	if cfg.HasAfter {
		t.Error("HasAfter should be false without --after")
	}
}

func TestValidate_AnchorDate(t *testing.T) {
	tests := []struct {
		name    string
		anchor  string
		wantErr bool
	}{
		{"valid date", "2024-11-13", false},
		{"another valid date", "2025-01-01", false},
		{"wrong order", "13-11-2024", true},
		{"not a date", "soon", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.AnchorDate = tt.anchor
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_AfterDate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AfterDate = "2024-12-01"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate(): %v", err)
	}
	if !cfg.HasAfter {
		t.Error("HasAfter should be true")
	}
	want := time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local)
	if !cfg.After.Equal(want) {
		t.Errorf("After = %v, want %v", cfg.After, want)
	}

	cfg = DefaultConfig()
	cfg.AfterDate = "12/01/2024"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject non-ISO after date")
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Categories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Categories = []CategoryRule{{Name: "jpeg", Dir: ""}}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a category without a dir")
	}

	cfg = DefaultConfig()
	cfg.Categories = []CategoryRule{{Name: "jpeg", Dir: "JPG"}}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a category without extensions")
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"wednesday", time.Wednesday, false},
		{"Wednesday", time.Wednesday, false},
		{"SUNDAY", time.Sunday, false},
		{" monday ", time.Monday, false},
		{"wed", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.AnchorDate != "2024-11-13" {
		t.Errorf("AnchorDate = %q, want 2024-11-13", cfg.AnchorDate)
	}
	if cfg.WeekDirFormat != "Week %02d" {
		t.Errorf("WeekDirFormat = %q", cfg.WeekDirFormat)
	}
	if len(cfg.Categories) != 2 {
		t.Fatalf("expected 2 default categories, got %d", len(cfg.Categories))
	}
	if cfg.Categories[0].Dir != "JPG" || cfg.Categories[1].Dir != "RAW" {
		t.Errorf("unexpected category dirs: %+v", cfg.Categories)
	}
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("anchor_date", "2025-03-05")
	v.Set("dest_dir", "/photos")
	v.Set("color", "never")

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.AnchorDate != "2025-03-05" {
		t.Errorf("AnchorDate = %q", cfg.AnchorDate)
	}
	if cfg.DestDir != "/photos" {
		t.Errorf("DestDir = %q", cfg.DestDir)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q", cfg.ColorMode)
	}
}
