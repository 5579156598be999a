package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/kinetic-arcade/internal/hazards"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	runner, err := decode(defaultRunnerYAML, DefaultRunnerConfig, RunnerConfig.Validate)
	if err != nil {
		t.Fatalf("decode(runner.yaml) error = %v", err)
	}
	if !reflect.DeepEqual(runner, DefaultRunnerConfig()) {
		t.Errorf("runner.yaml = %+v, expected %+v", runner, DefaultRunnerConfig())
	}

	clicker, err := decode(defaultClickerYAML, DefaultClickerConfig, ClickerConfig.Validate)
	if err != nil {
		t.Fatalf("decode(clicker.yaml) error = %v", err)
	}
	if !reflect.DeepEqual(clicker, DefaultClickerConfig()) {
		t.Errorf("clicker.yaml = %+v, expected %+v", clicker, DefaultClickerConfig())
	}

	flock, err := decode(defaultFlockYAML, DefaultFlockConfig, FlockConfig.Validate)
	if err != nil {
		t.Fatalf("decode(flock.yaml) error = %v", err)
	}
	if !reflect.DeepEqual(flock, DefaultFlockConfig()) {
		t.Errorf("flock.yaml = %+v, expected %+v", flock, DefaultFlockConfig())
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadRunnerCustomPartial(t *testing.T) {
	path := writeConfig(t, "player:\n  speed: 5\n")

	cfg, src, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.Player.Speed != 5 {
		t.Errorf("Player.Speed = %v, expected 5", cfg.Player.Speed)
	}
	if cfg.Player.Size != 20 {
		t.Errorf("Player.Size = %v, expected default 20", cfg.Player.Size)
	}
	if len(cfg.Hazards.Kinds) != 3 {
		t.Errorf("len(Hazards.Kinds) = %d, expected 3", len(cfg.Hazards.Kinds))
	}
}

func TestLoadCustomErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(t.TempDir(), "nope.yaml")},
		{"malformed", writeConfig(t, "world: [")},
		{"invalid", writeConfig(t, "world:\n  cell_width: 0\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, src, err := LoadClicker(tt.path)
			if err == nil {
				t.Fatal("LoadClicker() expected error")
			}
			if src != SourceBuiltin {
				t.Errorf("source = %s, expected %s", src, SourceBuiltin)
			}
			if !reflect.DeepEqual(cfg, DefaultClickerConfig()) {
				t.Error("LoadClicker() on error should return the built-in config")
			}
		})
	}
}

func TestHazardsCatalog(t *testing.T) {
	catalog, err := DefaultRunnerConfig().Hazards.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	if !reflect.DeepEqual(catalog, hazards.DefaultCatalog()) {
		t.Errorf("Catalog() = %+v, expected %+v", catalog, hazards.DefaultCatalog())
	}

	bad := HazardsConfig{Kinds: []HazardKind{{Name: "ice", Kind: "lethal", Weight: 1, Width: 1, Height: 1}}}
	if _, err := bad.Catalog(); err == nil {
		t.Error("Catalog() with unknown name expected error")
	}

	bad = HazardsConfig{Kinds: []HazardKind{{Name: "wall", Kind: "sticky", Weight: 1, Width: 1, Height: 1}}}
	if _, err := bad.Catalog(); err == nil {
		t.Error("Catalog() with unknown kind expected error")
	}
}

func TestRunnerValidate(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Hazards.Kinds = nil
	if err := cfg.Validate(); err != hazards.ErrEmptyCatalog {
		t.Errorf("Validate() = %v, expected ErrEmptyCatalog", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) expected error")
	}
}

func TestApplyPreset(t *testing.T) {
	d := DifficultyConfig{Enabled: false}
	ApplyPreset(&d, DifficultyHard)
	if !d.Enabled || d.InitialLevel != 0.7 {
		t.Errorf("ApplyPreset(hard) = %+v", d)
	}

	ApplyPreset(&d, DifficultyFixed)
	if d.Enabled {
		t.Error("ApplyPreset(fixed) left progression enabled")
	}

	before := d
	ApplyPreset(&d, "")
	if d != before {
		t.Errorf("ApplyPreset(\"\") changed %+v to %+v", before, d)
	}
}

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 1})
	if got := dm.Speed(4, 1000, 1000); got != 4 {
		t.Errorf("Speed() = %v, expected 4", got)
	}
	if got := dm.Interval(1500*time.Millisecond, 1000, 1000); got != 1500*time.Millisecond {
		t.Errorf("Interval() = %v, expected 1.5s", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling: ScalingConfig{
			SpeedMultiplier:   0.5,
			IntervalReduction: 0.5,
			MinIntervalMS:     1000,
		},
	})

	tests := []struct {
		score    int
		level    float64
		speed    float64
		interval time.Duration
	}{
		{0, 0, 4, 1500 * time.Millisecond},
		{50, 0.5, 5, 1125 * time.Millisecond},
		{100, 1, 6, 1000 * time.Millisecond}, // clamped to the floor
		{500, 1, 6, 1000 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); got != tt.level {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.level)
		}
		if got := dm.Speed(4, tt.score, 0); got != tt.speed {
			t.Errorf("Speed(%d) = %v, expected %v", tt.score, got, tt.speed)
		}
		if got := dm.Interval(1500*time.Millisecond, tt.score, 0); got != tt.interval {
			t.Errorf("Interval(%d) = %v, expected %v", tt.score, got, tt.interval)
		}
	}
}
