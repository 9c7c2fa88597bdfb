// Package workspace inspects a project's plugins directory: enumerating
// installed plugins and validating their manifests. It backs the list and
// doctor commands.
package workspace
