// Package config 读取 slidesmith 的 YAML 配置并构造主题。
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ByLCY/slidesmith/layout"
)

// DefaultOutput 是未配置输出路径时生成的文件名。
const DefaultOutput = "slides.pptx"

// Config 是配置文件的完整模型。
type Config struct {
	// Deck 是 deck 文件路径，为空时使用内置的营业资料。
	Deck   string            `yaml:"deck"`
	Theme  ThemeConfig       `yaml:"theme"`
	Output OutputConfig      `yaml:"output"`
	Fonts  map[string]string `yaml:"fonts" validate:"omitempty,dive,keys,required,endkeys,required"`
	Data   map[string]any    `yaml:"data"`
	Log    LogConfig         `yaml:"log"`
}

// ThemeConfig 覆盖默认主题中的令牌。
type ThemeConfig struct {
	Width   string            `yaml:"width" validate:"omitempty,emu_length"`
	Height  string            `yaml:"height" validate:"omitempty,emu_length"`
	Margin  string            `yaml:"margin" validate:"omitempty,emu_length"`
	Palette map[string]string `yaml:"palette" validate:"omitempty,dive,keys,token,endkeys,channel"`
	Fonts   map[string]string `yaml:"fonts" validate:"omitempty,dive,keys,token,endkeys,required"`
}

// OutputConfig 描述生成物的位置。
type OutputConfig struct {
	Path       string `yaml:"path" validate:"required"`
	Preview    string `yaml:"preview"`
	ImageWidth int    `yaml:"imageWidth" validate:"gte=0"`
	Strict     bool   `yaml:"strict"`
}

// LogConfig 对应 logger.Options。
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human"`
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Default 返回未提供配置文件时使用的配置。
func Default() *Config {
	return &Config{
		Output: OutputConfig{Path: DefaultOutput},
		Log:    LogConfig{Level: "info"},
	}
}

// Load 读取并校验配置文件。path 为空或文件不存在时返回默认配置。
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取配置 %s 失败: %w", path, err)
	}
	return Parse(data, path)
}

// Parse 在默认配置之上解析 YAML 内容。
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if line := extractLine(err); line > 0 {
			return nil, fmt.Errorf("解析配置 %s 失败 (第 %d 行): %w", source, line, err)
		}
		return nil, fmt.Errorf("解析配置 %s 失败: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// Validate 按结构体标签校验配置。
func (c *Config) Validate() error {
	return convertValidationError(validatorInstance().Struct(c))
}

// BuildTheme 在默认主题之上叠加配置中的令牌，返回不可变主题。
func (c *Config) BuildTheme() (layout.Theme, error) {
	base := layout.DefaultTheme()
	canvas := base.Canvas()
	margin := base.Margin()

	if c.Theme.Width != "" {
		v, err := parseLength("theme.width", c.Theme.Width)
		if err != nil {
			return layout.Theme{}, err
		}
		canvas.Width = v
	}
	if c.Theme.Height != "" {
		v, err := parseLength("theme.height", c.Theme.Height)
		if err != nil {
			return layout.Theme{}, err
		}
		canvas.Height = v
	}
	if c.Theme.Margin != "" {
		v, err := parseLength("theme.margin", c.Theme.Margin)
		if err != nil {
			return layout.Theme{}, err
		}
		margin = v
	}
	if 2*margin >= canvas.Width {
		return layout.Theme{}, &ValidationError{Fields: []FieldError{{
			Field:   "theme.margin",
			Tag:     "margin",
			Message: "边距超过画布宽度的一半",
		}}}
	}

	palette := base.Palette()
	for name, raw := range c.Theme.Palette {
		col, err := ParseChannel(raw)
		if err != nil {
			return layout.Theme{}, fmt.Errorf("theme.palette.%s: %w", name, err)
		}
		palette[layout.ColorRef(strings.ToUpper(name))] = col
	}
	fonts := base.Fonts()
	for name, family := range c.Theme.Fonts {
		fonts[layout.FontRef(strings.ToUpper(name))] = family
	}
	return layout.NewTheme(canvas, margin, base.Header(), palette, fonts), nil
}

func parseLength(field, raw string) (layout.EMU, error) {
	l, ok := layout.ParseRawLengthStr(raw)
	if !ok || l.EMU() <= 0 {
		return 0, &ValidationError{Fields: []FieldError{{Field: field, Tag: "emu_length", Message: fmt.Sprintf("无效的长度 %q", raw)}}}
	}
	return l.EMU(), nil
}

// ParseChannel 解析调色板取值：#RRGGBB、#RGB，或 0..1 之间的 "r,g,b" 三元组。
func ParseChannel(raw string) (layout.Color, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "#") {
		return layout.ParseHexColor(raw)
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return layout.Color{}, fmt.Errorf("颜色 %q 需要 #hex 或 r,g,b", raw)
	}
	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return layout.Color{}, fmt.Errorf("颜色 %q 的第 %d 个通道无效: %w", raw, i+1, err)
		}
		if v < 0 || v > 1 {
			return layout.Color{}, fmt.Errorf("颜色 %q 的第 %d 个通道超出 [0,1]", raw, i+1)
		}
		ch[i] = v
	}
	return layout.RGB(ch[0], ch[1], ch[2]), nil
}
