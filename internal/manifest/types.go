package manifest

import "regexp"

// FileName is the manifest file name inside a plugin directory.
const FileName = "manifest.yaml"

// Manifest describes a Schematic plugin: its identity, the capabilities it
// requires from the host, when it activates, and what it registers.
type Manifest struct {
	ID           string                  `yaml:"id" json:"id"`
	Version      string                  `yaml:"version" json:"version"`
	Name         string                  `yaml:"name" json:"name"`
	Description  string                  `yaml:"description" json:"description"`
	Capabilities []string                `yaml:"capabilities" json:"capabilities"`
	Activation   string                  `yaml:"activation" json:"activation"`
	Slots        []SlotRegistration      `yaml:"slots,omitempty" json:"slots,omitempty"`
	Provides     []ServiceRegistration   `yaml:"provides,omitempty" json:"provides,omitempty"`
	Extensions   []ExtensionContribution `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// SlotRegistration binds an exported component to a named UI slot.
type SlotRegistration struct {
	Slot      string `yaml:"slot" json:"slot"`
	Component string `yaml:"component" json:"component"`
}

// ServiceRegistration declares a service the plugin provides to the host.
type ServiceRegistration struct {
	ID string `yaml:"id" json:"id"`
}

// ExtensionContribution declares a contribution to a host extension point.
type ExtensionContribution struct {
	Point string `yaml:"point" json:"point"`
	ID    string `yaml:"id" json:"id"`
}

// Activation trigger forms. ActivationOnService is a prefix; the full
// trigger is "onService:<service-id>".
const (
	ActivationOnStartup = "onStartup"
	ActivationOnService = "onService:"
)

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidID reports whether s is a valid plugin identifier: lowercase
// letters, digits, and hyphens, starting with a letter.
func ValidID(s string) bool {
	return idPattern.MatchString(s)
}

// IDPatternHint is the identifier rule in human-readable form, for error text.
const IDPatternHint = "lowercase letters, digits, and hyphens, starting with a letter"
