// Package preflight verifies the environment before a Forge3D session:
// bridge reachability and staging-directory access. Results are plain rows
// the CLI renders; a failed check never aborts anything by itself.
package preflight
