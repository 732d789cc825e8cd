// Package forge3d wraps the BrightForge Forge3D REST API.
//
// The client issues plain GET requests against a normalized base endpoint
// and decodes the permissive JSON payloads the service returns. Everything
// here is synchronous and context-driven; asynchronous delivery, catalog
// caching, and in-flight bookkeeping live in internal/bridge so callers can
// pick their own scheduling discipline.
package forge3d
