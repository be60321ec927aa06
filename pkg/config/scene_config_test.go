package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testSceneYAML = `
title: test scene
window:
  width: 640
  height: 480
viewpoint:
  position: [0, 1, -5]
  focalLength: 400
  dolly:
    axis: [0, 0, -1]
    near: 0
    far: 20
    speed: 5
objects:
  - name: beacon
    position: [0, 0, 10]
    scale: [2, 2, 2]
    radius: 0.5
    color: "#ff8000"
    fixedAngularSize: true
  - name: crate
    position: [3, 0, 10]
`

// TestParseSceneConfig 测试完整配置解析
func TestParseSceneConfig(t *testing.T) {
	cfg, err := ParseSceneConfig([]byte(testSceneYAML))
	if err != nil {
		t.Fatalf("ParseSceneConfig error: %v", err)
	}

	if cfg.Title != "test scene" {
		t.Errorf("Title: got %q", cfg.Title)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("Window: got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Viewpoint.Position != (mgl64.Vec3{0, 1, -5}) {
		t.Errorf("Viewpoint position: got %v", cfg.Viewpoint.Position)
	}
	if cfg.Viewpoint.Dolly == nil || cfg.Viewpoint.Dolly.Far != 20 {
		t.Fatalf("Dolly not parsed: %+v", cfg.Viewpoint.Dolly)
	}

	if len(cfg.Objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(cfg.Objects))
	}

	beacon := cfg.Objects[0]
	if !beacon.FixedAngularSize || beacon.Scale != (mgl64.Vec3{2, 2, 2}) || beacon.Radius != 0.5 {
		t.Errorf("Beacon mismatch: %+v", beacon)
	}

	// 缺失字段使用默认值
	crate := cfg.Objects[1]
	if crate.FixedAngularSize {
		t.Error("crate should not have fixedAngularSize")
	}
	if crate.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Default scale: got %v", crate.Scale)
	}
	if crate.Radius != 1 || crate.Color != DefaultObjectColor {
		t.Errorf("Default radius/color: got %v / %q", crate.Radius, crate.Color)
	}
}

// TestParseSceneConfig_Defaults 测试窗口与焦距默认值
func TestParseSceneConfig_Defaults(t *testing.T) {
	cfg, err := ParseSceneConfig([]byte("objects:\n  - position: [0, 0, 3]\n"))
	if err != nil {
		t.Fatalf("ParseSceneConfig error: %v", err)
	}

	if cfg.Window.Width != DefaultWindowWidth || cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("Default window: got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Viewpoint.FocalLength != DefaultFocalLength {
		t.Errorf("Default focal length: got %v", cfg.Viewpoint.FocalLength)
	}
	if cfg.Viewpoint.Dolly != nil {
		t.Error("Dolly should be nil when not configured")
	}
}

// TestParseSceneConfig_Invalid 测试非法配置
func TestParseSceneConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"no objects", "title: empty\n", "at least one object"},
		{"bad color", "objects:\n  - name: a\n    color: red\n", "object a: invalid color"},
		{"negative radius", "objects:\n  - radius: -1\n", "object #0: radius cannot be negative"},
		{"zero dolly axis", "viewpoint:\n  dolly:\n    far: 1\nobjects:\n  - name: a\n", "axis must be non-zero"},
		{"far before near", "viewpoint:\n  dolly:\n    axis: [0, 0, 1]\n    near: 5\n    far: 1\nobjects:\n  - name: a\n", "must not be less than near"},
		{"short vector", "objects:\n  - position: [1, 2]\n", "failed to parse"},
		{"broken yaml", "objects: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoadSceneConfig 测试从文件系统加载
func TestLoadSceneConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(testSceneYAML), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := LoadSceneConfig(path)
	if err != nil {
		t.Fatalf("LoadSceneConfig error: %v", err)
	}
	if cfg.Title != "test scene" {
		t.Errorf("Title: got %q", cfg.Title)
	}

	if _, err := LoadSceneConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

// TestDefaultSceneConfig 测试内置场景合法
func TestDefaultSceneConfig(t *testing.T) {
	cfg := DefaultSceneConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default scene invalid: %v", err)
	}

	fixed := 0
	for _, obj := range cfg.Objects {
		if obj.FixedAngularSize {
			fixed++
		}
	}
	if fixed == 0 {
		t.Error("Default scene should contain a fixed angular size object")
	}
}

// TestParseColor 测试颜色解析
func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff8000", color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, false},
		{"#10203040", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"#FFFFFF", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"ff8000", color.RGBA{}, true},
		{"#ff80", color.RGBA{}, true},
		{"#gg0000", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
