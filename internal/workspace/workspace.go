package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/schematic-labs/schematic/internal/manifest"
)

// Plugin represents one plugin directory found under the plugins root.
type Plugin struct {
	ID       string             // directory name
	Dir      string             // absolute or root-relative plugin directory
	Manifest *manifest.Manifest // nil when the manifest could not be parsed
	Err      error              // manifest parse error, if any
}

// Summary describes what a plugin registers, for list output.
func (p *Plugin) Summary() string {
	if p.Manifest == nil {
		return "(unreadable manifest)"
	}
	switch {
	case len(p.Manifest.Slots) > 0:
		return fmt.Sprintf("ui: %s -> %s", p.Manifest.Slots[0].Slot, p.Manifest.Slots[0].Component)
	case len(p.Manifest.Provides) > 0:
		return "service: " + p.Manifest.Provides[0].ID
	case len(p.Manifest.Extensions) > 0:
		return "extensions: " + p.Manifest.Extensions[0].Point
	default:
		return "no registrations"
	}
}

// Scan enumerates plugin directories under root. A plugin directory is any
// directory containing a manifest.yaml; everything else is skipped. Plugins
// whose manifest fails to parse are still returned, with Err set, so doctor
// can report them. Results are ordered by id.
func Scan(root string) ([]Plugin, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading plugins root %s: %w", root, err)
	}

	var plugins []Plugin
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		manifestPath := filepath.Join(dir, manifest.FileName)
		if _, err := os.Stat(manifestPath); err != nil {
			continue
		}

		p := Plugin{ID: entry.Name(), Dir: dir}
		p.Manifest, p.Err = manifest.Parse(manifestPath)
		plugins = append(plugins, p)
	}

	sort.Slice(plugins, func(i, j int) bool { return plugins[i].ID < plugins[j].ID })
	return plugins, nil
}

// Check validates every plugin under root and returns the broken ones as a
// map from plugin id to its issues. A parse failure counts as one issue.
func Check(root string) (map[string][]manifest.ValidationIssue, error) {
	plugins, err := Scan(root)
	if err != nil {
		return nil, err
	}

	broken := make(map[string][]manifest.ValidationIssue)
	for _, p := range plugins {
		if p.Err != nil {
			broken[p.ID] = []manifest.ValidationIssue{{Message: p.Err.Error()}}
			continue
		}
		result, err := manifest.ValidateFile(filepath.Join(p.Dir, manifest.FileName))
		if err != nil {
			return nil, fmt.Errorf("validating %s: %w", p.ID, err)
		}
		if !result.Valid {
			broken[p.ID] = result.Issues
		}
	}
	return broken, nil
}
