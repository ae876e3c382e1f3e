package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path on top of Default.
// An empty path yields the defaults. The decoder is picked by extension.
func Load(path string) (*Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			err = toml.Unmarshal(data, cfg)
		default:
			err = yaml.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SECRETARY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SECRETARY_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if len(cfg.Transcriber.APIKeys) > 0 && !cfg.keysFromEnv {
		return
	}

	var keys string
	switch strings.ToLower(cfg.Transcriber.Backend) {
	case BackendOpenAI:
		keys = os.Getenv("OPENAI_API_KEY")
	default:
		keys = os.Getenv("GEMINI_API_KEYS")
		if keys == "" {
			keys = os.Getenv("GEMINI_API_KEY")
		}
	}
	cfg.Transcriber.APIKeys = splitKeys(keys)
	cfg.keysFromEnv = true
}

// Overrides are command-line values that take precedence over the file.
type Overrides struct {
	Input      string
	Output     string
	Backend    string
	Language   string
	NoProgress bool
}

// Apply merges non-empty overrides into cfg and re-validates it.
func (c *Config) Apply(o Overrides) error {
	if o.Input != "" {
		c.Paths.Input = o.Input
	}
	if o.Output != "" {
		c.Paths.Output = o.Output
	}
	if o.Language != "" {
		c.Transcriber.Language = o.Language
	}
	if o.NoProgress {
		c.UI.Progress = false
	}
	if o.Backend != "" && !strings.EqualFold(o.Backend, c.Transcriber.Backend) {
		// keys in the file belong to the file's backend
		c.Transcriber.Backend = o.Backend
		c.Transcriber.Model = ""
		c.Transcriber.APIKeys = nil
		applyEnvOverrides(c)
	}
	return c.Validate()
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
