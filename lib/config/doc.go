// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the launcher.
//
// A desktop launcher has to start with no configuration at all, so
// [Default] carries the production endpoints and the platform working
// directory. A file is only read when the MOON_CONFIG environment
// variable (via [Load]) or the --config flag (via [LoadFile]) names one;
// there is no automatic search.
//
// The file may contain environment-specific sections (development,
// production) that override base values when [Config].Environment
// matches. Production is the default environment and is stricter:
// [Config.Validate] rejects non-https endpoints there.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${MOON_WORKING_DIR}, and ${VAR:-default} patterns are
// expanded.
//
// This package depends only on lib/location.
package config
