package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLevelParses(t *testing.T) {
	cfg, err := ParseLevel(GetDefaultYAML("level"))
	if err != nil {
		t.Fatalf("ParseLevel(embedded) error: %v", err)
	}
	if cfg.Name != "training-grounds" {
		t.Errorf("Name = %q", cfg.Name)
	}

	var player *EntityConfig
	for i := range cfg.Entities {
		if cfg.Entities[i].Name == "Player" {
			player = &cfg.Entities[i]
		}
	}
	if player == nil {
		t.Fatal("no Player entity")
	}
	if player.Collider == nil || player.Collider[1] != 30 {
		t.Errorf("Player collider = %v", player.Collider)
	}
	var character *BehaviorConfig
	for i := range player.Behaviors {
		if player.Behaviors[i].Kind == "character" {
			character = &player.Behaviors[i]
		}
	}
	if character == nil {
		t.Fatalf("Player behaviors = %+v", player.Behaviors)
	}

	// Character props in the embedded level match the code defaults.
	got := DefaultCharacterConfig()
	got.Speed = 0
	if err := character.RawProps().Decode(&got); err != nil {
		t.Fatalf("decode character props: %v", err)
	}
	if got != DefaultCharacterConfig() {
		t.Errorf("embedded character props = %+v\nwant %+v", got, DefaultCharacterConfig())
	}
}

func TestRawPropsAbsent(t *testing.T) {
	cfg, err := ParseLevel([]byte("entities:\n  - name: A\n    behaviors:\n      - kind: player\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Entities[0].Behaviors[0].RawProps() != nil {
		t.Error("RawProps() should be nil without props")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"empty", "name: x\n", "no entities"},
		{"missing name", "entities:\n  - position: [0, 0]\n", "missing name"},
		{"parent after child", "entities:\n  - name: Arm\n    parent: Player\n  - name: Player\n", "declared first"},
		{"behavior kind", "entities:\n  - name: A\n    behaviors:\n      - props: {x: 1}\n", "without kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseLevel() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadLevelCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	doc := "name: mine\ngravity: 50\nentities:\n  - name: Floor\n    collider: [10, 2]\n    layer: 1\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("LoadLevel() error: %v", err)
	}
	if cfg.Name != "mine" || cfg.Gravity != 50 || cfg.Entities[0].Layer != 1 {
		t.Errorf("LoadLevel() = %+v", cfg)
	}

	if _, err := LoadLevel(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadLevel(missing) should fail")
	}
}

func TestDefaultLevelConfigValid(t *testing.T) {
	if err := DefaultLevelConfig().Validate(); err != nil {
		t.Errorf("fallback level invalid: %v", err)
	}
}
