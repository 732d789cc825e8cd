// Package config loads and validates the forge3d configuration file.
//
// Configuration is TOML, resolved from an explicit --config flag, then
// ~/.config/forge3d/config.toml, then a project-local forge3d.toml. Loading
// always starts from Default(), expands ~ in path fields, and validates the
// result, so every consumer sees normalized absolute paths.
package config
