package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveSecret(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(secretFile, []byte("  file-secret\n"), 0o600); err != nil {
		t.Fatalf("failed to write secret file: %v", err)
	}

	t.Setenv("OSPREY_TEST_SECRET", "env-secret")

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"literal value", "plain-token", "plain-token", false},
		{"empty value", "", "", false},
		{"env reference", "env:OSPREY_TEST_SECRET", "env-secret", false},
		{"file reference trims whitespace", "file:" + secretFile, "file-secret", false},
		{"unset env variable", "env:OSPREY_TEST_SECRET_UNSET", "", true},
		{"empty env name", "env:", "", true},
		{"missing file", "file:" + filepath.Join(t.TempDir(), "absent"), "", true},
		{"empty file path", "file:", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSecret(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveSecret(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveSecret(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoadResolvesPanelAPIKey(t *testing.T) {
	t.Setenv("OSPREY_TEST_PANEL_KEY", "resolved-token")

	path := writeConfigFile(t, `
upstream:
  stats:
    base_url: "https://stats.example.com/api"
  icon:
    base_url: "https://icons.example.com/items"
panel:
  base_url: "https://panel.example.com"
  api_key: "env:OSPREY_TEST_PANEL_KEY"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Panel.APIKey != "resolved-token" {
		t.Errorf("panel api key = %q, want resolved secret", cfg.Panel.APIKey)
	}
}

func TestLoadDanglingSecretReferenceFails(t *testing.T) {
	path := writeConfigFile(t, `
upstream:
  stats:
    base_url: "https://stats.example.com/api"
  icon:
    base_url: "https://icons.example.com/items"
panel:
  base_url: "https://panel.example.com"
  api_key: "env:OSPREY_TEST_NOT_SET_ANYWHERE"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with dangling secret reference should fail")
	}
}
