// Package config manages user-level settings stored at ~/.create-rspack/config.yaml.
// Every key can also be supplied through a CREATE_RSPACK_-prefixed environment
// variable, and the package manager user agent is read from npm_config_user_agent.
package config
