package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != ":8480" {
		t.Errorf("addr = %q, want %q", cfg.Addr, ":8480")
	}
	if cfg.RefreshInterval != 24*time.Hour {
		t.Errorf("refresh interval = %v, want 24h", cfg.RefreshInterval)
	}
	if cfg.BackupRetention != 7 {
		t.Errorf("backup retention = %d, want 7", cfg.BackupRetention)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SKCC_CALLSIGN", "W4GNS")
	t.Setenv("SKCC_REFRESH_INTERVAL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Callsign != "W4GNS" {
		t.Errorf("callsign = %q, want %q", cfg.Callsign, "W4GNS")
	}
	if cfg.RefreshInterval != time.Hour {
		t.Errorf("refresh interval = %v, want 1h", cfg.RefreshInterval)
	}
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("SKCC_REFRESH_INTERVAL", "often")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable duration")
	}
}
