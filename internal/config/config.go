package config

import (
	"fmt"
	"strings"
)

const (
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths" toml:"paths"`
	Transcoder  TranscoderConfig  `yaml:"transcoder" toml:"transcoder"`
	Transcriber TranscriberConfig `yaml:"transcriber" toml:"transcriber"`
	Segmenter   SegmenterConfig   `yaml:"segmenter" toml:"segmenter"`
	Output      OutputConfig      `yaml:"output" toml:"output"`
	Logging     LoggingConfig     `yaml:"logging" toml:"logging"`
	Watch       WatchConfig       `yaml:"watch" toml:"watch"`
	UI          UIConfig          `yaml:"ui" toml:"ui"`

	keysFromEnv bool
}

type PathsConfig struct {
	Input  string `yaml:"input" toml:"input"`
	Output string `yaml:"output" toml:"output"`
}

type TranscoderConfig struct {
	FFmpegPath   string `yaml:"ffmpeg_path" toml:"ffmpeg_path"`
	FFprobePath  string `yaml:"ffprobe_path" toml:"ffprobe_path"`
	ChunkSeconds int    `yaml:"chunk_seconds" toml:"chunk_seconds"`
	// ExtraArgs is shell-split and placed before the output file as is
	ExtraArgs    string `yaml:"extra_args" toml:"extra_args"`
}

type TranscriberConfig struct {
	Backend    string   `yaml:"backend" toml:"backend"`
	Language   string   `yaml:"language" toml:"language"`
	Model      string   `yaml:"model" toml:"model"`
	APIKeys    []string `yaml:"api_keys" toml:"api_keys"`
	BaseURL    string   `yaml:"base_url" toml:"base_url"`
	Prompt     string   `yaml:"prompt" toml:"prompt"`
	MaxRetries int      `yaml:"max_retries" toml:"max_retries"`
}

type SegmenterConfig struct {
	Mode        string `yaml:"mode" toml:"mode"`
	StripSpaces bool   `yaml:"strip_spaces" toml:"strip_spaces"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx" toml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	File   string `yaml:"file" toml:"file"`
}

type WatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" toml:"max_concurrent"`
}

type UIConfig struct {
	Progress bool `yaml:"progress" toml:"progress"`
}

// Default returns a Config matching the behaviour of the bare CLI.
func Default() *Config {
	cfg := &Config{}
	cfg.Paths.Input = "./data"
	cfg.Paths.Output = "./output"
	cfg.Transcoder.FFmpegPath = "ffmpeg"
	cfg.Transcoder.FFprobePath = "ffprobe"
	cfg.Transcoder.ChunkSeconds = 60
	cfg.Transcriber.Backend = BackendGemini
	cfg.Transcriber.Language = "ja-JP"
	cfg.Segmenter.Mode = "auto"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"
	cfg.Watch.MaxConcurrent = 1
	cfg.UI.Progress = true
	return cfg
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Transcoder.ChunkSeconds < 0 {
		return fmt.Errorf("transcoder.chunk_seconds must be positive")
	}
	if c.Transcriber.MaxRetries < 0 {
		return fmt.Errorf("transcriber.max_retries must not be negative")
	}

	c.Transcriber.Backend = strings.ToLower(c.Transcriber.Backend)
	switch c.Transcriber.Backend {
	case "":
		c.Transcriber.Backend = BackendGemini
	case BackendGemini, BackendOpenAI:
	default:
		return fmt.Errorf("unknown transcriber.backend: %s", c.Transcriber.Backend)
	}

	switch strings.ToLower(c.Segmenter.Mode) {
	case "":
		c.Segmenter.Mode = "auto"
	case "auto", "punkt", "cjk", "none":
		c.Segmenter.Mode = strings.ToLower(c.Segmenter.Mode)
	default:
		return fmt.Errorf("unknown segmenter.mode: %s", c.Segmenter.Mode)
	}

	if c.Transcoder.FFmpegPath == "" {
		c.Transcoder.FFmpegPath = "ffmpeg"
	}
	if c.Transcoder.FFprobePath == "" {
		c.Transcoder.FFprobePath = "ffprobe"
	}
	if c.Transcoder.ChunkSeconds == 0 {
		c.Transcoder.ChunkSeconds = 60
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "ja-JP"
	}
	if c.Transcriber.Model == "" {
		if c.Transcriber.Backend == BackendOpenAI {
			c.Transcriber.Model = "whisper-1"
		} else {
			c.Transcriber.Model = "gemini-2.5-flash"
		}
	}
	if c.Watch.MaxConcurrent <= 0 {
		c.Watch.MaxConcurrent = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// RequireAPIKeys checks that the selected backend has credentials.
// It is separate from Validate so offline commands work without keys.
func (c *Config) RequireAPIKeys() error {
	if len(c.Transcriber.APIKeys) == 0 {
		return fmt.Errorf("%s backend requires an API key (transcriber.api_keys or env)", c.Transcriber.Backend)
	}
	return nil
}
