// Package history persists a ledger of finished asset downloads.
//
// Every download the CLI completes, successful or not, is appended to a
// SQLite database so users can audit what landed in the staging directory
// and why earlier attempts failed. The ledger is append-only; refreshing
// catalogs never rewrites it.
package history
