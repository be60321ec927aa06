package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/gaze/pkg/embedded"
)

// SceneConfig 演示场景配置
// 定义窗口、视点轨道和场景中的物体
type SceneConfig struct {
	Title     string          `yaml:"title"`     // 窗口标题
	Window    WindowConfig    `yaml:"window"`    // 窗口尺寸
	Viewpoint ViewpointConfig `yaml:"viewpoint"` // 视点配置
	Objects   []ObjectConfig  `yaml:"objects"`   // 场景物体列表
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int `yaml:"width"`  // 逻辑宽度（像素），默认 960
	Height int `yaml:"height"` // 逻辑高度（像素），默认 540
}

// ViewpointConfig 视点配置
type ViewpointConfig struct {
	Position    mgl64.Vec3   `yaml:"position"`    // 初始位置 [x, y, z]
	FocalLength float64      `yaml:"focalLength"` // 投影焦距（像素），默认 600
	Dolly       *DollyConfig `yaml:"dolly"`       // 可选：视点往返轨道
}

// DollyConfig 视点轨道配置
// 轨道起点为视点初始位置
type DollyConfig struct {
	Axis  mgl64.Vec3 `yaml:"axis"`  // 移动方向（会被归一化）
	Near  float64    `yaml:"near"`  // 最小偏移
	Far   float64    `yaml:"far"`   // 最大偏移
	Speed float64    `yaml:"speed"` // 速度（单位/秒）
}

// ObjectConfig 场景物体配置
type ObjectConfig struct {
	Name             string     `yaml:"name"`             // 物体名称（HUD 显示）
	Position         mgl64.Vec3 `yaml:"position"`         // 世界坐标 [x, y, z]
	Scale            mgl64.Vec3 `yaml:"scale"`            // 初始局部缩放，默认 [1, 1, 1]
	Radius           float64    `yaml:"radius"`           // 圆形半径（缩放为 1 时的世界尺寸），默认 1
	Color            string     `yaml:"color"`            // 颜色 "#rrggbb"，默认 "#ffffff"
	FixedAngularSize bool       `yaml:"fixedAngularSize"` // 是否保持恒定视角大小
}

// 默认值
const (
	DefaultWindowWidth  = 960
	DefaultWindowHeight = 540
	DefaultFocalLength  = 600.0
	DefaultObjectColor  = "#ffffff"
)

// DefaultSceneConfig 返回内置的默认场景
// 在配置文件缺失时使用
func DefaultSceneConfig() *SceneConfig {
	cfg := &SceneConfig{
		Title: "Fixed Angular Size",
		Viewpoint: ViewpointConfig{
			Dolly: &DollyConfig{
				Axis:  mgl64.Vec3{0, 0, -1},
				Near:  0,
				Far:   40,
				Speed: 8,
			},
		},
		Objects: []ObjectConfig{
			{Name: "fixed", Position: mgl64.Vec3{-2, 0, 10}, Color: "#ff6040", FixedAngularSize: true},
			{Name: "plain", Position: mgl64.Vec3{2, 0, 10}, Color: "#40a0ff"},
		},
	}
	applySceneDefaults(cfg)
	return cfg
}

// ParseSceneConfig 解析 YAML 场景配置
// 缺失的可选字段使用默认值,然后进行合法性校验
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}

	applySceneDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return &cfg, nil
}

// LoadSceneConfig 加载场景配置
//
// 优先从嵌入资源读取（路径以 "data/" 开头且已嵌入），否则从文件系统读取。
func LoadSceneConfig(path string) (*SceneConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", path, err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// applySceneDefaults 为缺失的可选字段设置默认值
func applySceneDefaults(cfg *SceneConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultWindowHeight
	}
	if cfg.Viewpoint.FocalLength == 0 {
		cfg.Viewpoint.FocalLength = DefaultFocalLength
	}

	for i := range cfg.Objects {
		obj := &cfg.Objects[i]
		if obj.Scale == (mgl64.Vec3{}) {
			obj.Scale = mgl64.Vec3{1, 1, 1}
		}
		if obj.Radius == 0 {
			obj.Radius = 1
		}
		if obj.Color == "" {
			obj.Color = DefaultObjectColor
		}
	}
}

// Validate 验证场景配置的合法性
func (cfg *SceneConfig) Validate() error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	if cfg.Viewpoint.FocalLength < 0 {
		return fmt.Errorf("viewpoint focalLength must be positive, got %v", cfg.Viewpoint.FocalLength)
	}

	if d := cfg.Viewpoint.Dolly; d != nil {
		if d.Axis.Len() == 0 {
			return fmt.Errorf("viewpoint dolly axis must be non-zero")
		}
		if d.Far < d.Near {
			return fmt.Errorf("viewpoint dolly far (%v) must not be less than near (%v)", d.Far, d.Near)
		}
		if d.Speed < 0 {
			return fmt.Errorf("viewpoint dolly speed cannot be negative, got %v", d.Speed)
		}
	}

	if len(cfg.Objects) == 0 {
		return fmt.Errorf("at least one object is required")
	}

	for i, obj := range cfg.Objects {
		label := obj.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if obj.Radius < 0 {
			return fmt.Errorf("object %s: radius cannot be negative, got %v", label, obj.Radius)
		}
		if _, err := ParseColor(obj.Color); err != nil {
			return fmt.Errorf("object %s: %w", label, err)
		}
	}

	return nil
}

// ParseColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(s) == 7 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
