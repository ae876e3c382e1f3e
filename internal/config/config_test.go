package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  *Default(),
			wantErr: false,
		},
		{
			name: "missing paths",
			config: Config{
				Transcriber: TranscriberConfig{Backend: BackendGemini},
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				Paths:       PathsConfig{Input: "data", Output: "output"},
				Transcriber: TranscriberConfig{Backend: "azure"},
			},
			wantErr: true,
		},
		{
			name: "unknown segmenter",
			config: Config{
				Paths:     PathsConfig{Input: "data", Output: "output"},
				Segmenter: SegmenterConfig{Mode: "ginza"},
			},
			wantErr: true,
		},
		{
			name: "negative retries",
			config: Config{
				Paths:       PathsConfig{Input: "data", Output: "output"},
				Transcriber: TranscriberConfig{MaxRetries: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Input: "in", Output: "out"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Transcoder.ChunkSeconds != 60 {
		t.Errorf("ChunkSeconds = %d, want 60", cfg.Transcoder.ChunkSeconds)
	}
	if cfg.Transcriber.Backend != BackendGemini {
		t.Errorf("Backend = %q, want %q", cfg.Transcriber.Backend, BackendGemini)
	}
	if cfg.Transcriber.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.Transcriber.Model)
	}
	if cfg.Segmenter.Mode != "auto" {
		t.Errorf("Mode = %q, want auto", cfg.Segmenter.Mode)
	}
	if cfg.Watch.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %d, want 1", cfg.Watch.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "")
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
paths:
  input: "videos"
  output: "transcripts"

transcoder:
  chunk_seconds: 30
  extra_args: "-ac 1 -ar 16000"

transcriber:
  backend: "gemini"
  language: "en-US"
  api_keys: ["k1", "k2"]

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "videos" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "videos")
	}
	if cfg.Transcoder.ChunkSeconds != 30 {
		t.Errorf("ChunkSeconds = %d, want 30", cfg.Transcoder.ChunkSeconds)
	}
	if len(cfg.Transcriber.APIKeys) != 2 {
		t.Errorf("APIKeys = %v, want 2 keys", cfg.Transcriber.APIKeys)
	}
	if cfg.Transcoder.FFprobePath != "ffprobe" {
		t.Errorf("FFprobePath = %q, want default", cfg.Transcoder.FFprobePath)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
input = "in"
output = "out"

[segmenter]
mode = "cjk"
strip_spaces = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Segmenter.Mode != "cjk" || !cfg.Segmenter.StripSpaces {
		t.Errorf("Segmenter = %+v", cfg.Segmenter)
	}
	if cfg.Paths.Output != "out" {
		t.Errorf("Output = %q, want out", cfg.Paths.Output)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Paths.Input != "./data" || cfg.Paths.Output != "./output" {
		t.Errorf("Paths = %+v, want CLI defaults", cfg.Paths)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SECRETARY_LOG_LEVEL", "debug")
	t.Setenv("SECRETARY_LOG_FORMAT", "json")
	t.Setenv("GEMINI_API_KEYS", "a, b,,c")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging overrides failed: %+v", cfg.Logging)
	}
	if len(cfg.Transcriber.APIKeys) != 3 || cfg.Transcriber.APIKeys[1] != "b" {
		t.Fatalf("APIKeys = %v", cfg.Transcriber.APIKeys)
	}
}

func TestApplyBackendSwitchReloadsKeys(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "gem")
	t.Setenv("OPENAI_API_KEY", "oai")

	cfg := Default()
	applyEnvOverrides(cfg)

	if err := cfg.Apply(Overrides{Backend: "openai", Input: "in", NoProgress: true}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(cfg.Transcriber.APIKeys) != 1 || cfg.Transcriber.APIKeys[0] != "oai" {
		t.Errorf("APIKeys = %v, want [oai]", cfg.Transcriber.APIKeys)
	}
	if cfg.Transcriber.Model != "whisper-1" {
		t.Errorf("Model = %q, want whisper-1", cfg.Transcriber.Model)
	}
	if cfg.Paths.Input != "in" || cfg.UI.Progress {
		t.Errorf("overrides not applied: %+v %+v", cfg.Paths, cfg.UI)
	}
}

func TestApplyBackendSwitchDropsFileKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
transcriber:
  backend: "gemini"
  api_keys: ["AIza-gemini"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Apply(Overrides{Backend: "openai"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if len(cfg.Transcriber.APIKeys) != 1 || cfg.Transcriber.APIKeys[0] != "sk-openai" {
		t.Errorf("APIKeys = %v, want [sk-openai]", cfg.Transcriber.APIKeys)
	}
}

func TestApplyBackendSwitchWithoutEnvKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := Default()
	cfg.Transcriber.APIKeys = []string{"AIza-gemini"}

	if err := cfg.Apply(Overrides{Backend: "openai"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := cfg.RequireAPIKeys(); err == nil {
		t.Errorf("RequireAPIKeys() should fail, gemini key carried over: %v", cfg.Transcriber.APIKeys)
	}
}

func TestApplySameBackendKeepsFileKeys(t *testing.T) {
	cfg := Default()
	cfg.Transcriber.APIKeys = []string{"k1"}

	if err := cfg.Apply(Overrides{Backend: "GEMINI"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(cfg.Transcriber.APIKeys) != 1 || cfg.Transcriber.APIKeys[0] != "k1" {
		t.Errorf("APIKeys = %v, want [k1]", cfg.Transcriber.APIKeys)
	}
}
