package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// GameConfig 宿主程序配置
//
// 只包含窗口、帧率、随机种子等运行参数。
// 球场尺寸和物理常量见 game_constants.go，不可配置。
//
// 默认配置文件: data/pong.yaml（嵌入到可执行文件中）
type GameConfig struct {
	// WindowTitle 窗口标题
	WindowTitle string `yaml:"windowTitle" toml:"windowTitle"`

	// WindowScale 窗口缩放倍数（逻辑尺寸固定为 800x600）
	WindowScale float64 `yaml:"windowScale" toml:"windowScale"`

	// TPS 每秒逻辑更新次数，deltaTime = 1 / TPS
	TPS int `yaml:"tps" toml:"tps"`

	// MaxDeltaTime 单帧 deltaTime 上限（秒），0 表示不限制
	// 限制后可以避免卡顿后球穿过球拍
	MaxDeltaTime float64 `yaml:"maxDeltaTime" toml:"maxDeltaTime"`

	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed" toml:"seed"`

	// SampleRate 音效采样率（Hz）
	SampleRate int `yaml:"sampleRate" toml:"sampleRate"`

	// ShowTrail 是否绘制球的拖尾
	ShowTrail *bool `yaml:"showTrail" toml:"showTrail"`

	// ShowParticles 是否绘制粒子
	ShowParticles *bool `yaml:"showParticles" toml:"showParticles"`
}

// 配置文件格式
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	showTrail := true
	showParticles := true
	return &GameConfig{
		WindowTitle:   "Pong - Go Edition",
		WindowScale:   1.0,
		TPS:           60,
		MaxDeltaTime:  0,
		Seed:          0,
		SampleRate:    44100,
		ShowTrail:     &showTrail,
		ShowParticles: &showParticles,
	}
}

// LoadGameConfig 从文件加载配置
//
// 根据扩展名选择解析器：.yaml/.yml 使用 YAML，.toml 使用 TOML。
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/pong.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	return ParseGameConfig(data, format)
}

// ParseGameConfig 解析配置内容
//
// 参数:
//   - data: 配置文件内容
//   - format: FormatYAML 或 FormatTOML
//
// 返回:
//   - *GameConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseGameConfig(data []byte, format string) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game config: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s (supported: yaml, toml)", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.WindowScale <= 0 {
		return fmt.Errorf("windowScale should be > 0, got %.2f", c.WindowScale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps should be > 0, got %d", c.TPS)
	}
	if c.MaxDeltaTime < 0 {
		return fmt.Errorf("maxDeltaTime should be >= 0, got %.3f", c.MaxDeltaTime)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sampleRate should be > 0, got %d", c.SampleRate)
	}
	return nil
}

// DeltaTime 返回每个 tick 的时间步长（秒）
func (c *GameConfig) DeltaTime() float64 {
	return 1.0 / float64(c.TPS)
}

// TrailEnabled 返回是否绘制拖尾，未配置时为 true
func (c *GameConfig) TrailEnabled() bool {
	return c.ShowTrail == nil || *c.ShowTrail
}

// ParticlesEnabled 返回是否绘制粒子，未配置时为 true
func (c *GameConfig) ParticlesEnabled() bool {
	return c.ShowParticles == nil || *c.ShowParticles
}

// formatFromPath 根据扩展名推断配置格式
func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension: %s (supported: .yaml, .yml, .toml)", filepath.Ext(path))
	}
}
