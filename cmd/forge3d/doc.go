// Package main hosts the Forge3D CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into bridge
// session operations: connectivity checks, project and asset browsing, FBX
// downloads into the staging directory, material preset queries, download
// history, and configuration scaffolding. It centralizes configuration
// resolution, client construction, and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
