package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		content     string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name:     "valid yaml config",
			fileName: "pong.yaml",
			content: `
windowTitle: "Test Pong"
windowScale: 1.5
tps: 120
maxDeltaTime: 0.05
seed: 42
sampleRate: 48000
showTrail: false
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.WindowTitle != "Test Pong" {
					t.Errorf("WindowTitle: got %q, want %q", cfg.WindowTitle, "Test Pong")
				}
				if cfg.WindowScale != 1.5 {
					t.Errorf("WindowScale: got %v, want 1.5", cfg.WindowScale)
				}
				if cfg.TPS != 120 {
					t.Errorf("TPS: got %d, want 120", cfg.TPS)
				}
				if cfg.MaxDeltaTime != 0.05 {
					t.Errorf("MaxDeltaTime: got %v, want 0.05", cfg.MaxDeltaTime)
				}
				if cfg.Seed != 42 {
					t.Errorf("Seed: got %d, want 42", cfg.Seed)
				}
				if cfg.SampleRate != 48000 {
					t.Errorf("SampleRate: got %d, want 48000", cfg.SampleRate)
				}
				if cfg.TrailEnabled() {
					t.Error("TrailEnabled: got true, want false")
				}
				// 未配置的字段保留默认值
				if !cfg.ParticlesEnabled() {
					t.Error("ParticlesEnabled: got false, want true")
				}
			},
		},
		{
			name:     "valid toml config",
			fileName: "pong.toml",
			content: `
windowTitle = "Toml Pong"
tps = 30
seed = 7
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.WindowTitle != "Toml Pong" {
					t.Errorf("WindowTitle: got %q, want %q", cfg.WindowTitle, "Toml Pong")
				}
				if cfg.TPS != 30 {
					t.Errorf("TPS: got %d, want 30", cfg.TPS)
				}
				if cfg.Seed != 7 {
					t.Errorf("Seed: got %d, want 7", cfg.Seed)
				}
				if cfg.SampleRate != 44100 {
					t.Errorf("SampleRate: got %d, want default 44100", cfg.SampleRate)
				}
			},
		},
		{
			name:     "partial yml config keeps defaults",
			fileName: "pong.yml",
			content:  "seed: 3\n",
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.TPS != 60 {
					t.Errorf("TPS: got %d, want default 60", cfg.TPS)
				}
				if cfg.WindowScale != 1.0 {
					t.Errorf("WindowScale: got %v, want default 1.0", cfg.WindowScale)
				}
			},
		},
		{
			name:        "invalid tps",
			fileName:    "pong.yaml",
			content:     "tps: 0\n",
			wantErr:     true,
			errContains: "tps should be > 0",
		},
		{
			name:        "negative max delta time",
			fileName:    "pong.yaml",
			content:     "maxDeltaTime: -1\n",
			wantErr:     true,
			errContains: "maxDeltaTime should be >= 0",
		},
		{
			name:        "invalid window scale",
			fileName:    "pong.toml",
			content:     "windowScale = 0.0\n",
			wantErr:     true,
			errContains: "windowScale should be > 0",
		},
		{
			name:        "malformed yaml",
			fileName:    "pong.yaml",
			content:     "tps: [1, 2\n",
			wantErr:     true,
			errContains: "failed to parse game config",
		},
		{
			name:        "unsupported extension",
			fileName:    "pong.json",
			content:     "{}",
			wantErr:     true,
			errContains: "unsupported config file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), tt.fileName)
			if err := os.WriteFile(tmpFile, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to create temp file: %v", err)
			}

			cfg, err := LoadGameConfig(tmpFile)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read game config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseGameConfigUnknownFormat(t *testing.T) {
	if _, err := ParseGameConfig([]byte("tps: 60"), "ini"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if got := cfg.DeltaTime(); got != 1.0/60.0 {
		t.Errorf("DeltaTime: got %v, want %v", got, 1.0/60.0)
	}
	if !cfg.TrailEnabled() || !cfg.ParticlesEnabled() {
		t.Error("trail and particles should be enabled by default")
	}
}

// TestGameConstants 验证比赛常量
func TestGameConstants(t *testing.T) {
	if WindowWidth != 800 || WindowHeight != 600 {
		t.Errorf("window: got %vx%v, want 800x600", WindowWidth, WindowHeight)
	}
	if PaddleWidth != 15 || PaddleHeight != 80 || PaddleSpeed != 300 {
		t.Errorf("paddle: got %v/%v/%v, want 15/80/300", PaddleWidth, PaddleHeight, PaddleSpeed)
	}
	if BallSize != 15 || BallSpeed != 350 {
		t.Errorf("ball: got %v/%v, want 15/350", BallSize, BallSpeed)
	}
	if WinningScore != 5 {
		t.Errorf("WinningScore: got %d, want 5", WinningScore)
	}
	if got := PaddleStartY(); got != 260 {
		t.Errorf("PaddleStartY: got %v, want 260", got)
	}
	if got := AIPaddleX(); got != 755 {
		t.Errorf("AIPaddleX: got %v, want 755", got)
	}
}
