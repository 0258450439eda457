package cli

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/mlorenz/buildstamp/pkg/errors"
	"github.com/mlorenz/buildstamp/pkg/gen"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("GOPACKAGE", "demo")

	cfg := DefaultConfig()

	if cfg.Output.File != "buildstamp_gen.go" {
		t.Errorf("File = %q, want buildstamp_gen.go", cfg.Output.File)
	}
	if cfg.Output.Package != "demo" {
		t.Errorf("Package = %q, want GOPACKAGE value", cfg.Output.Package)
	}
	if cfg.Output.Prefix != "Build" {
		t.Errorf("Prefix = %q, want Build", cfg.Output.Prefix)
	}

	shapes, err := cfg.Shapes()
	if err != nil {
		t.Fatalf("Shapes failed: %v", err)
	}
	if len(shapes) != 4 {
		t.Errorf("default shapes = %v, want 4 entries", shapes)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buildstamp.toml")
	content := `[output]
file = "internal/build/stamp_gen.go"
package = "build"
prefix = "Compiled"

[stamps]
names = ["date_str", "unix", "version"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Output.File != "internal/build/stamp_gen.go" {
		t.Errorf("File = %q", cfg.Output.File)
	}
	if cfg.Output.Package != "build" {
		t.Errorf("Package = %q, want build", cfg.Output.Package)
	}
	if cfg.Output.Prefix != "Compiled" {
		t.Errorf("Prefix = %q, want Compiled", cfg.Output.Prefix)
	}

	shapes, err := cfg.Shapes()
	if err != nil {
		t.Fatalf("Shapes failed: %v", err)
	}
	want := []gen.Shape{gen.ShapeDateStr, gen.ShapeUnix, gen.ShapeVersion}
	if len(shapes) != len(want) {
		t.Fatalf("shapes = %v, want %v", shapes, want)
	}
	for i := range want {
		if shapes[i] != want[i] {
			t.Errorf("shapes[%d] = %v, want %v", i, shapes[i], want[i])
		}
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buildstamp.toml")
	if err := os.WriteFile(path, []byte("[output]\nprefix = \"App\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Output.Prefix != "App" {
		t.Errorf("Prefix = %q, want App", cfg.Output.Prefix)
	}
	if cfg.Output.File != "buildstamp_gen.go" {
		t.Errorf("File = %q, want default carried over", cfg.Output.File)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	// An explicit path must exist.
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("explicit missing config: code = %v, want INVALID_CONFIG", apperrors.GetCode(err))
	}

	// The implicit default file is optional.
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("implicit missing config should fall back to defaults: %v", err)
	}
	if cfg.Output.File != "buildstamp_gen.go" {
		t.Errorf("File = %q, want default", cfg.Output.File)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buildstamp.toml")
	if err := os.WriteFile(path, []byte("[output\nfile ="), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("malformed toml: code = %v, want INVALID_CONFIG", apperrors.GetCode(err))
	}
}

func TestConfigShapesRejectsUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Stamps.Names = []string{"datetime", "weekday"}

	_, err := cfg.Shapes()
	if !apperrors.Is(err, apperrors.ErrCodeInvalidShape) {
		t.Errorf("unknown stamp name: code = %v, want INVALID_SHAPE", apperrors.GetCode(err))
	}
}

func TestConfigShapesRejectsEmpty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Stamps.Names = nil

	_, err := cfg.Shapes()
	if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("empty stamps: code = %v, want INVALID_CONFIG", apperrors.GetCode(err))
	}
}
