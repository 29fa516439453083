// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/vlp-tools/vlp/internal/issue"
	"github.com/vlp-tools/vlp/internal/testutil"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	testutil.MustWriteFile(t, path, content)
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.ZipPath != "" {
		t.Errorf("expected default zip path to be empty, got %q", cfg.ZipPath)
	}
	if cfg.OutputDir != "" {
		t.Errorf("expected default output dir to be empty, got %q", cfg.OutputDir)
	}
	if cfg.UI.Spinner != DefaultSpinner {
		t.Errorf("expected default spinner %q, got %q", DefaultSpinner, cfg.UI.Spinner)
	}
	if cfg.UI.Verbose || cfg.UI.PauseOnError {
		t.Errorf("expected verbose and pause_on_error off by default, got %+v", cfg.UI)
	}
}

func TestConfigDir(t *testing.T) {
	home := t.TempDir()
	defer testutil.SetConfigHome(t, home)()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() failed: %v", err)
	}

	want := filepath.Join(home, AppName)
	if runtime.GOOS == "darwin" {
		want = filepath.Join(home, "Library", "Application Support", AppName)
	}
	if dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    Config
	}{
		{
			name:    "no file uses defaults",
			content: "",
			want:    *DefaultConfig(),
		},
		{
			name:    "partial file keeps other defaults",
			content: "ui: verbose: true\n",
			want:    Config{UI: UIConfig{Verbose: true, Spinner: DefaultSpinner}},
		},
		{
			name: "full file",
			content: `zip_path: "/opt/zip/zip"
output_dir: "/srv/out"
ui: {
	verbose: true
	spinner: "dot"
	pause_on_error: true
}
`,
			want: Config{
				ZipPath:   "/opt/zip/zip",
				OutputDir: "/srv/out",
				UI:        UIConfig{Verbose: true, Spinner: "dot", PauseOnError: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if tt.content != "" {
				writeConfig(t, dir, tt.content)
			}

			cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if *cfg != tt.want {
				t.Errorf("Load() = %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"syntax error", "ui: {verbose: \n", "config.cue"},
		{"wrong type", "ui: verbose: \"yes\"\n", "ui.verbose"},
		{"unknown spinner", "ui: spinner: \"wheel\"\n", "ui.spinner"},
		{"unknown field", "container_engine: \"docker\"\n", "container_engine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error = %T, want *issue.ActionableError", err)
			}
			if !ae.HasSuggestions() {
				t.Error("expected suggestions on config load errors")
			}
			if !strings.Contains(ae.Format(true), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", ae.Format(true), tt.wantMsg)
			}
		})
	}
}

func TestLoadExplicitFile(t *testing.T) {
	t.Parallel()

	t.Run("used exclusively", func(t *testing.T) {
		t.Parallel()

		dirCfg := t.TempDir()
		writeConfig(t, dirCfg, "zip_path: \"/from/dir\"\n")
		explicit := filepath.Join(t.TempDir(), "custom.cue")
		testutil.MustWriteFile(t, explicit, "zip_path: \"/from/flag\"\n")

		cfg, path, err := loadWithOptions(context.Background(), LoadOptions{
			ConfigFilePath: explicit,
			ConfigDirPath:  dirCfg,
		})
		if err != nil {
			t.Fatalf("loadWithOptions() failed: %v", err)
		}
		if path != explicit {
			t.Errorf("resolved path = %q, want %q", path, explicit)
		}
		if cfg.ZipPath != "/from/flag" {
			t.Errorf("ZipPath = %q, want /from/flag", cfg.ZipPath)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope.cue")
		_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: missing})
		var ae *issue.ActionableError
		if !errors.As(err, &ae) {
			t.Fatalf("error = %v, want *issue.ActionableError", err)
		}
		if ae.Resource != missing {
			t.Errorf("Resource = %q, want %q", ae.Resource, missing)
		}
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "zip_path: \"/from/file\"\n")
	t.Setenv("VLP_ZIP_PATH", "/from/env")
	t.Setenv("VLP_UI_VERBOSE", "true")
	t.Setenv("VLP_OUTPUT_DIR", "/env/out")

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ZipPath != "/from/env" {
		t.Errorf("ZipPath = %q, want env value", cfg.ZipPath)
	}
	if cfg.OutputDir != "/env/out" {
		t.Errorf("OutputDir = %q, want env value", cfg.OutputDir)
	}
	if !cfg.UI.Verbose {
		t.Error("expected VLP_UI_VERBOSE to enable verbose")
	}
}

func TestLoadCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := Config{
		ZipPath:   `C:\Program Files\zip\zip.exe`,
		OutputDir: "/tmp/out dir",
		UI:        UIConfig{Verbose: true, Spinner: "moon", PauseOnError: true},
	}

	path, err := FilePath(LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(&want, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() of generated file failed: %v\n%s", err, testutil.MustReadFile(t, path))
	}
	if *got != want {
		t.Errorf("Load() = %+v, want %+v", *got, want)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", AppName)
	opts := LoadOptions{ConfigDirPath: dir}

	path, created, err := CreateDefaultConfig(opts)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() failed: %v", err)
	}
	if !created {
		t.Error("expected first call to create the file")
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("path = %q", path)
	}

	if err := os.WriteFile(path, []byte("ui: verbose: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, created, err = CreateDefaultConfig(opts)
	if err != nil {
		t.Fatalf("second CreateDefaultConfig() failed: %v", err)
	}
	if created {
		t.Error("expected existing file to be left alone")
	}
	if got := testutil.MustReadFile(t, path); got != "ui: verbose: true\n" {
		t.Errorf("existing file was rewritten: %q", got)
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := checkFileSize(make([]byte, 10), 10, "c.cue"); err != nil {
		t.Errorf("checkFileSize() at limit = %v, want nil", err)
	}
	if err := checkFileSize(make([]byte, 11), 10, "c.cue"); err == nil {
		t.Error("checkFileSize() over limit = nil, want error")
	}
}

func TestFormatCUEErrorPlain(t *testing.T) {
	t.Parallel()

	err := formatCUEError(errors.New("boom"), "c.cue")
	if err.Error() != "c.cue: boom" {
		t.Errorf("formatCUEError() = %q", err)
	}
	if formatCUEError(nil, "c.cue") != nil {
		t.Error("formatCUEError(nil) should be nil")
	}
}
