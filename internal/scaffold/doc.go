// Package scaffold generates new Schematic plugins from embedded templates.
// It powers the "schematic create" command, producing a manifest, a plugin
// definition, and (for UI template kinds) a component file, all derived from
// the same registry descriptor so the three stay mutually consistent.
package scaffold
