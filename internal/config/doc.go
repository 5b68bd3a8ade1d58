// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the application configuration from environment
// variables (ENVKEEPER_* via caarlos0/env), an optional JSON file pointed to
// by ENVKEEPER_CONFIG, and built-in defaults, merged in that priority order
// with mergo and validated before use.
package config
