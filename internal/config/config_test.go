package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// setupConfigHome points the config directory at a temp dir and resets Viper.
func setupConfigHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("CREATE_RSPACK_HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestDirHonorsHomeOverride(t *testing.T) {
	home := setupConfigHome(t)
	if got := Dir(); got != home {
		t.Errorf("Dir() = %q, want %q", got, home)
	}
	if got := FilePath(); got != filepath.Join(home, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestSetThenGet(t *testing.T) {
	home := setupConfigHome(t)
	Load()

	if err := Set(KeyDefaultTemplate, "react-ts"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// A fresh load must see the persisted value.
	viper.Reset()
	Load()
	if got := DefaultTemplate(); got != "react-ts" {
		t.Errorf("DefaultTemplate() = %q, want %q", got, "react-ts")
	}
}

func TestEnvOverride(t *testing.T) {
	setupConfigHome(t)
	t.Setenv("CREATE_RSPACK_TEMPLATES_DIR", "/opt/templates")
	Load()

	if got := TemplatesDir(); got != "/opt/templates" {
		t.Errorf("TemplatesDir() = %q, want %q", got, "/opt/templates")
	}
}

func TestUserAgentFromNpmEnv(t *testing.T) {
	setupConfigHome(t)
	t.Setenv("npm_config_user_agent", "pnpm/8.1.0 node/v18.0.0 linux x64")
	Load()

	if got := UserAgent(); got != "pnpm/8.1.0 node/v18.0.0 linux x64" {
		t.Errorf("UserAgent() = %q", got)
	}
}

func TestUserAgentSources(t *testing.T) {
	tests := []struct {
		name     string
		npmEnv   string
		override string
		saved    string
		want     string
	}{
		{"npm variable", "pnpm/8.1.0", "", "", "pnpm/8.1.0"},
		{"prefixed override", "", "yarn/1.22.19", "", "yarn/1.22.19"},
		{"npm variable beats override", "pnpm/8.1.0", "yarn/1.22.19", "", "pnpm/8.1.0"},
		{"override beats saved value", "", "yarn/1.22.19", "bun/1.0.0", "yarn/1.22.19"},
		{"saved value as fallback", "", "", "bun/1.0.0", "bun/1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupConfigHome(t)
			t.Setenv("npm_config_user_agent", "")
			t.Setenv("CREATE_RSPACK_USER_AGENT", "")
			Load()
			if tt.saved != "" {
				if err := Set(KeyUserAgent, tt.saved); err != nil {
					t.Fatalf("Set: %v", err)
				}
			}

			t.Setenv("npm_config_user_agent", tt.npmEnv)
			t.Setenv("CREATE_RSPACK_USER_AGENT", tt.override)
			viper.Reset()
			Load()

			if got := UserAgent(); got != tt.want {
				t.Errorf("UserAgent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserAgentUnset(t *testing.T) {
	setupConfigHome(t)
	t.Setenv("npm_config_user_agent", "")
	Load()

	if got := UserAgent(); got != "" {
		t.Errorf("UserAgent() = %q, want empty", got)
	}
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	want := []string{"default_template", "templates_dir", "user_agent"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
