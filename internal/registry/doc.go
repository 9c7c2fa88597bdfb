// Package registry defines the closed set of plugin template kinds and the
// static descriptor attached to each one. Descriptors are the single source
// of truth for slot ids and component names, so every artifact the scaffolder
// emits for a kind stays mutually consistent.
package registry
