// Package pkgmanager infers which package manager launched the CLI so the
// final instructions can name the right commands.
package pkgmanager

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Default is used when the user agent is missing or malformed.
const Default = "npm"

// Agent identifies the invoking package manager.
type Agent struct {
	Name    string          // never empty
	Version *semver.Version // nil when absent or unparseable
}

// Detect parses a user agent such as "pnpm/8.1.0 npm/? node/v18.0.0 linux x64".
// The first whitespace-separated token is split on its first "/"; the part
// before it is the name. A token without "/" or with an empty name yields
// Default.
func Detect(userAgent string) Agent {
	fields := strings.Fields(userAgent)
	if len(fields) == 0 {
		return Agent{Name: Default}
	}

	name, version, ok := strings.Cut(fields[0], "/")
	if !ok || name == "" {
		return Agent{Name: Default}
	}

	agent := Agent{Name: name}
	if v, err := semver.NewVersion(strings.TrimPrefix(version, "v")); err == nil {
		agent.Version = v
	}
	return agent
}

// InstallCommand returns the command that installs the project's dependencies.
func (a Agent) InstallCommand() string {
	return a.Name + " install"
}

// RunCommand returns the command that runs a package.json script.
func (a Agent) RunCommand(script string) string {
	return a.Name + " run " + script
}

func (a Agent) String() string {
	if a.Version == nil {
		return a.Name
	}
	return a.Name + " " + a.Version.String()
}
