// Package registry provides a generic, type-safe registry of named items.
// Registries are populated from init() functions and then frozen, after
// which they only serve lookups.
package registry
