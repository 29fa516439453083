// SPDX-License-Identifier: MPL-2.0

// Package config handles vlp configuration using Viper with CUE as the file format.
//
// Configuration is loaded from config.cue in the platform config directory
// ($XDG_CONFIG_HOME/vlp on Linux, ~/Library/Application Support/vlp on macOS,
// %APPDATA%\vlp on Windows) or from an explicit file. The file is validated
// against the embedded #Config schema before it is merged into Viper, and
// VLP_* environment variables override file values.
package config
