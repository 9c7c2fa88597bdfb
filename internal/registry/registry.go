package registry

import (
	"fmt"
	"strings"
)

// Kind identifies one of the built-in plugin templates.
type Kind string

const (
	KindSidebar              Kind = "sidebar"
	KindView                 Kind = "view"
	KindService              Kind = "service"
	KindExtensionContributor Kind = "extension-contributor"
)

// DefaultKind is used when the user does not pass --template.
const DefaultKind = KindSidebar

// Component names referenced by the manifest slot block, the definition
// registration block, and the generated component file. They must stay
// identical across all three artifacts.
const (
	ComponentSidebarPanel = "SidebarPanel"
	ComponentMainView     = "MainView"
)

// Descriptor holds the static metadata for a template kind.
type Descriptor struct {
	Title        string
	Description  string
	Capabilities []string
	HasUI        bool
	Slot         string // UI slot id; empty for non-UI kinds
	Component    string // exported component name; empty for non-UI kinds
}

// Kinds returns all template kinds in their canonical order.
func Kinds() []Kind {
	return []Kind{KindSidebar, KindView, KindService, KindExtensionContributor}
}

// KindNames returns the kind names as plain strings, for help and error text.
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// ParseKind converts user input into a Kind. Unknown values are rejected
// here so that Lookup stays total over the closed enum.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if s == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown template %q: valid templates are %s", s, strings.Join(KindNames(), ", "))
}

// Lookup returns the descriptor for a kind. The switch is exhaustive over
// the enum; a kind that did not come from ParseKind is a programming error.
func Lookup(k Kind) Descriptor {
	switch k {
	case KindSidebar:
		return Descriptor{
			Title:        "Sidebar panel",
			Description:  "A panel docked in the editor sidebar",
			Capabilities: []string{"document.read", "selection.read", "ui.sidebar"},
			HasUI:        true,
			Slot:         "sidebar",
			Component:    ComponentSidebarPanel,
		}
	case KindView:
		return Descriptor{
			Title:        "Main view",
			Description:  "A full-size view in the editor's main area",
			Capabilities: []string{"document.read", "ui.view"},
			HasUI:        true,
			Slot:         "main",
			Component:    ComponentMainView,
		}
	case KindService:
		return Descriptor{
			Title:        "Service",
			Description:  "A headless service other plugins can consume",
			Capabilities: []string{"services.register"},
		}
	case KindExtensionContributor:
		return Descriptor{
			Title:        "Extension contributor",
			Description:  "A plugin contributing to host extension points",
			Capabilities: []string{"extensions.contribute"},
		}
	default:
		panic(fmt.Sprintf("registry: unknown template kind %q", k))
	}
}

// ServiceID returns the service key a plugin registers under, e.g.
// "data-export" registers "data-export-service".
func ServiceID(pluginID string) string {
	return pluginID + "-service"
}

// Activation returns the manifest activation trigger for a kind: service
// plugins wake when their service is first requested, everything else at
// editor startup.
func Activation(k Kind, pluginID string) string {
	if k == KindService {
		return "onService:" + ServiceID(pluginID)
	}
	return "onStartup"
}
