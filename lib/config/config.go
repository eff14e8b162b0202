// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/moonclient/launcher/lib/location"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for running against a local or staging backend.
	Development Environment = "development"
	// Production is the shipped configuration.
	Production Environment = "production"
)

// Default endpoint and artifact values.
const (
	DefaultAPIBaseURL    = "https://backend.moonclient.xyz/api/v1/launcher/"
	DefaultCDNBaseURL    = "https://cdn.moonclient.xyz/launcher/native/"
	DefaultNativeTag     = "launcher_lib"
	DefaultNativeSymbol  = "fetch_serial"
	ConfigEnvironmentVar = "MOON_CONFIG"
)

// Config is the launcher configuration.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment"`

	// Paths configures directory locations.
	Paths PathsConfig `yaml:"paths"`

	// API configures the launcher backend.
	API APIConfig `yaml:"api"`

	// Native configures the native capability module.
	Native NativeConfig `yaml:"native"`

	// Per-environment overrides, applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Paths  *PathsConfig  `yaml:"paths,omitempty"`
	API    *APIConfig    `yaml:"api,omitempty"`
	Native *NativeConfig `yaml:"native,omitempty"`
}

// PathsConfig configures directory locations.
type PathsConfig struct {
	// WorkingDir holds the native module and the settings files.
	// Default: <user data dir>/.moon
	WorkingDir string `yaml:"working_dir"`

	// GameDir is the managed game installation.
	// Default: <user data dir>/.minecraft
	GameDir string `yaml:"game_dir"`
}

// APIConfig configures the launcher backend.
type APIConfig struct {
	// BaseURL is prepended to every endpoint path. Must end with "/".
	BaseURL string `yaml:"base_url"`
}

// NativeConfig configures the native capability module.
type NativeConfig struct {
	// CDNBaseURL is where the module is downloaded from when it is not
	// present in the working directory. Must end with "/".
	CDNBaseURL string `yaml:"cdn_base_url"`

	// Tag is the logical version tag the platform file name is derived
	// from (liblauncher_lib.so, launcher_lib.dll, ...).
	Tag string `yaml:"tag"`

	// Digest optionally pins the BLAKE3 digest (hex) of the module. When
	// set, a module whose content does not match is refused.
	Digest string `yaml:"digest,omitempty"`
}

// Default returns the default configuration. This is what the launcher
// runs with when no config file is given.
func Default() *Config {
	workingDir, _ := location.WorkingDirectory()
	gameDir, _ := location.GameDirectory()

	return &Config{
		Environment: Production,
		Paths: PathsConfig{
			WorkingDir: workingDir,
			GameDir:    gameDir,
		},
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
		},
		Native: NativeConfig{
			CDNBaseURL: DefaultCDNBaseURL,
			Tag:        DefaultNativeTag,
		},
	}
}

// Load loads configuration from the file named by MOON_CONFIG, or
// returns Default when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(ConfigEnvironmentVar)
	if configPath == "" {
		cfg := Default()
		cfg.applyEnvironmentOverrides()
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, layered on
// top of Default.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("config: loading %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}

	if overrides.Paths != nil {
		if overrides.Paths.WorkingDir != "" {
			c.Paths.WorkingDir = overrides.Paths.WorkingDir
		}
		if overrides.Paths.GameDir != "" {
			c.Paths.GameDir = overrides.Paths.GameDir
		}
	}

	if overrides.API != nil && overrides.API.BaseURL != "" {
		c.API.BaseURL = overrides.API.BaseURL
	}

	if overrides.Native != nil {
		if overrides.Native.CDNBaseURL != "" {
			c.Native.CDNBaseURL = overrides.Native.CDNBaseURL
		}
		if overrides.Native.Tag != "" {
			c.Native.Tag = overrides.Native.Tag
		}
		if overrides.Native.Digest != "" {
			c.Native.Digest = overrides.Native.Digest
		}
	}
}

func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Paths.WorkingDir = expandVars(c.Paths.WorkingDir, vars)
	vars["MOON_WORKING_DIR"] = c.Paths.WorkingDir
	c.Paths.GameDir = expandVars(c.Paths.GameDir, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %q", c.Environment))
	}

	if c.Paths.WorkingDir == "" {
		errs = append(errs, errors.New("paths.working_dir is required (no user data directory could be determined)"))
	}

	requireHTTPS := c.Environment == Production
	if err := validateBaseURL("api.base_url", c.API.BaseURL, requireHTTPS); err != nil {
		errs = append(errs, err)
	}
	if err := validateBaseURL("native.cdn_base_url", c.Native.CDNBaseURL, requireHTTPS); err != nil {
		errs = append(errs, err)
	}

	if c.Native.Tag == "" {
		errs = append(errs, errors.New("native.tag is required"))
	} else if strings.ContainsAny(c.Native.Tag, `/\`) {
		errs = append(errs, fmt.Errorf("native.tag %q must not contain path separators", c.Native.Tag))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// validateBaseURL checks that raw is an absolute http(s) URL ending in
// "/". Endpoint URLs are built by concatenation, so a missing trailing
// slash would silently fuse the last path segment with the endpoint.
func validateBaseURL(field, raw string, requireHTTPS bool) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if requireHTTPS && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use https in production, got %q", field, raw)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("%s must be an http or https URL, got %q", field, raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s has no host: %q", field, raw)
	}
	if !strings.HasSuffix(raw, "/") {
		return fmt.Errorf("%s must end with \"/\", got %q", field, raw)
	}
	return nil
}
