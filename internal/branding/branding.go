// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	HomeDir            string `yaml:"home_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
	DefaultProjectName string `yaml:"default_project_name"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:            "create-rspack",
			DisplayName:        "Rspack",
			Description:        "Create a new Rspack project from a starter template",
			HomeDir:            ".create-rspack",
			EnvPrefix:          "CREATE_RSPACK",
			DefaultProjectName: "rspack-project",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-rspack").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Rspack").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".create-rspack").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_RSPACK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DefaultProjectName returns the folder name used when the user enters nothing.
func DefaultProjectName() string { load(); return defaults.DefaultProjectName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "CREATE_RSPACK_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
