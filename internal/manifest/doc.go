// Package manifest handles parsing and validation of Schematic plugin
// manifests. Structural validation runs against an embedded JSON Schema;
// semantic checks (semver, activation/provides agreement) run on the typed
// manifest afterwards.
package manifest
