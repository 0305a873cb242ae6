// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the convmag
// CLI and interactive shell.
//
// Configuration is loaded from a single file specified by either the
// CONVMAG_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search; an unset CONVMAG_CONFIG simply means
// defaults. This keeps configuration deterministic and auditable.
//
// Only presentation and shell concerns are configurable: color mode,
// extra material catalogue paths, and the shell transcript limit. The
// conversion table itself is fixed at compile time on purpose — a
// config file must never be able to change what 1 T converts to.
//
// This package depends on no other convmag packages.
package config
