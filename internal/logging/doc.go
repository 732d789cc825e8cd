// Package logging assembles the structured slog loggers used across the
// forge3d client and CLI.
//
// It owns the console/JSON handler selection, level and output plumbing, and
// context helpers that tag log lines with request correlation ids. Prefer
// these constructors over hand-rolled slog setup so every component emits
// records with the same shape.
package logging
