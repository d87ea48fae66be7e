package config

import (
	"testing"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name       string
		in         []string
		wantOwn    int
		wantEngine []string
	}{
		{"no separator", []string{"-i", "v.mkv"}, 2, nil},
		{"separator at end", []string{"-i", "v.mkv", "--"}, 2, []string{}},
		{"passthrough args", []string{"-i", "v.mkv", "--", "-b:v", "1M"}, 2, []string{"-b:v", "1M"}},
		{"only first separator splits", []string{"--", "-x", "--", "-y"}, 0, []string{"-x", "--", "-y"}},
		{"empty", nil, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			own, engine := SplitArgs(tt.in)
			if len(own) != tt.wantOwn {
				t.Errorf("own = %v, want %d args", own, tt.wantOwn)
			}
			if len(engine) != len(tt.wantEngine) {
				t.Fatalf("engine = %v, want %v", engine, tt.wantEngine)
			}
			for i := range engine {
				if engine[i] != tt.wantEngine[i] {
					t.Errorf("engine[%d] = %q, want %q", i, engine[i], tt.wantEngine[i])
				}
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	args := []string{
		"-i", "video.mkv",
		"-o", "{SLUG}.small.mp4",
		"--no-audio",
		"-y",
		"--json",
		"--", "-b:v", "1M", "-threads", "2",
	}
	if err := ParseFlags(&cfg, args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Input != "video.mkv" {
		t.Errorf("Input = %q", cfg.Input)
	}
	if cfg.OutputTemplate != "{SLUG}.small.mp4" {
		t.Errorf("OutputTemplate = %q", cfg.OutputTemplate)
	}
	if !cfg.StripAudio || cfg.StripVideo {
		t.Errorf("StripAudio = %v, StripVideo = %v", cfg.StripAudio, cfg.StripVideo)
	}
	if !cfg.Overwrite {
		t.Error("Overwrite not set by -y")
	}
	if !cfg.JSONProgress {
		t.Error("JSONProgress not set by --json")
	}
	want := []string{"-b:v", "1M", "-threads", "2"}
	if len(cfg.ExtraArgs) != len(want) {
		t.Fatalf("ExtraArgs = %v, want %v", cfg.ExtraArgs, want)
	}
	for i := range want {
		if cfg.ExtraArgs[i] != want[i] {
			t.Errorf("ExtraArgs[%d] = %q, want %q", i, cfg.ExtraArgs[i], want[i])
		}
	}
}

func TestParseFlags_StrayPositional(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{"-i", "v.mkv", "stray.mkv"})
	if err == nil {
		t.Fatal("expected error for stray positional argument")
	}
}

func TestParseFlags_ColorOverrides(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"-i", "v.mkv", "--no-color"}); err != nil {
		t.Fatal(err)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}

	cfg = DefaultConfig()
	if err := ParseFlags(&cfg, []string{"-i", "v.mkv", "--color"}); err != nil {
		t.Fatal(err)
	}
	if cfg.ColorMode != ColorAlways {
		t.Errorf("ColorMode = %q, want always", cfg.ColorMode)
	}
}

func TestConfigFilePath(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"long flag", []string{"--config", "a.yaml"}, "a.yaml"},
		{"single dash", []string{"-config", "a.yaml"}, "a.yaml"},
		{"equals form", []string{"--config=b.yaml"}, "b.yaml"},
		{"absent", []string{"-i", "v.mkv"}, ""},
		{"after separator ignored", []string{"-i", "v.mkv", "--", "--config", "x.yaml"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigFilePath(tt.in); got != tt.want {
				t.Errorf("ConfigFilePath(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
