package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	TTS         TTSConfig         `yaml:"tts"`
	Video       VideoConfig       `yaml:"video"`
	News        NewsConfig        `yaml:"news"`
	Render      RenderConfig      `yaml:"render"`
	Script      ScriptConfig      `yaml:"script"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type LLMConfig struct {
	Provider    string   `yaml:"provider"` // openai or gemini
	APIKey      string   `yaml:"api_key"`
	APIKeys     []string `yaml:"api_keys"` // gemini: rotated on quota errors
	BaseURL     string   `yaml:"base_url"`
	Model       string   `yaml:"model"`
	Temperature float64  `yaml:"temperature"`
	MaxTokens   int      `yaml:"max_tokens"`
}

type TTSConfig struct {
	Provider   string `yaml:"provider"` // edge or api
	Voice      string `yaml:"voice"`
	Rate       string `yaml:"rate"`
	Volume     string `yaml:"volume"`
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	BinaryPath string `yaml:"binary_path"` // edge-tts CLI
}

type VideoConfig struct {
	Width              int     `yaml:"width"`
	Height             int     `yaml:"height"`
	FPS                int     `yaml:"fps"`
	ImageDuration      int     `yaml:"image_duration"`
	TransitionDuration float64 `yaml:"transition_duration"`
	Transition         string  `yaml:"transition"` // fade or none
}

type NewsConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	FetchContent   bool   `yaml:"fetch_content"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type RenderConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type ScriptConfig struct {
	Enabled bool `yaml:"enabled"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
	Inbox  string `yaml:"inbox"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates the YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	switch c.LLM.Provider {
	case "openai":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for the openai provider")
		}
		if c.LLM.Model == "" {
			c.LLM.Model = "gpt-3.5-turbo"
		}
	case "gemini":
		if len(c.LLM.APIKeys) == 0 && c.LLM.APIKey != "" {
			c.LLM.APIKeys = []string{c.LLM.APIKey}
		}
		if len(c.LLM.APIKeys) == 0 {
			return fmt.Errorf("llm.api_keys is required for the gemini provider")
		}
		if c.LLM.Model == "" {
			c.LLM.Model = "gemini-2.5-flash"
		}
	default:
		return fmt.Errorf("llm.provider must be openai or gemini, got %q", c.LLM.Provider)
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1000
	}

	if c.TTS.Provider == "" {
		c.TTS.Provider = "edge"
	}
	switch c.TTS.Provider {
	case "edge":
		if c.TTS.BinaryPath == "" {
			c.TTS.BinaryPath = "edge-tts"
		}
	case "api":
		if c.TTS.APIKey == "" {
			return fmt.Errorf("tts.api_key is required for the api provider")
		}
		if c.TTS.BaseURL == "" {
			c.TTS.BaseURL = "https://api.siliconflow.cn/v1"
		}
		if c.TTS.Model == "" {
			c.TTS.Model = "FunAudioLLM/CosyVoice2-0.5B"
		}
	default:
		return fmt.Errorf("tts.provider must be edge or api, got %q", c.TTS.Provider)
	}
	if c.TTS.Voice == "" {
		c.TTS.Voice = "zh-CN-XiaoxiaoNeural"
	}
	if c.TTS.Rate == "" {
		c.TTS.Rate = "+0%"
	}
	if c.TTS.Volume == "" {
		c.TTS.Volume = "+0%"
	}

	if c.Video.Width == 0 {
		c.Video.Width = 1920
	}
	if c.Video.Height == 0 {
		c.Video.Height = 1080
	}
	if c.Video.FPS == 0 {
		c.Video.FPS = 30
	}
	if c.Video.ImageDuration == 0 {
		c.Video.ImageDuration = 5
	}
	if c.Video.TransitionDuration == 0 {
		c.Video.TransitionDuration = 1.0
	}
	if c.Video.Transition == "" {
		c.Video.Transition = "fade"
	}

	if c.News.BaseURL == "" {
		c.News.BaseURL = "https://whyta.cn"
	}
	if c.News.TimeoutSeconds == 0 {
		c.News.TimeoutSeconds = 10
	}

	if c.Render.TimeoutSeconds == 0 {
		c.Render.TimeoutSeconds = 30
	}

	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "output/tmp"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
