package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/schematic-labs/schematic/internal/manifest"
	"github.com/schematic-labs/schematic/internal/registry"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"my-awesome-plugin", "My Awesome Plugin"},
		{"gear", "Gear"},
		{"style-inspector", "Style Inspector"},
		{"validation-service", "Validation Service"},
		{"a", "A"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.id); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestSynthesizeArtifactCounts(t *testing.T) {
	tests := []struct {
		kind registry.Kind
		want int
	}{
		{registry.KindSidebar, 3},
		{registry.KindView, 3},
		{registry.KindService, 2},
		{registry.KindExtensionContributor, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			req := NewRequest("my-plugin", tt.kind, t.TempDir())
			artifacts, err := Synthesize(req)
			if err != nil {
				t.Fatalf("Synthesize() error: %v", err)
			}
			if len(artifacts) != tt.want {
				t.Fatalf("got %d artifacts, want %d", len(artifacts), tt.want)
			}
			if artifacts[0].Path != manifest.FileName {
				t.Errorf("artifact[0] = %q, want %q", artifacts[0].Path, manifest.FileName)
			}
			if artifacts[1].Path != "index.ts" {
				t.Errorf("artifact[1] = %q, want index.ts", artifacts[1].Path)
			}
		})
	}
}

// The component name in the manifest slot block, the definition's
// registration block, and the component file itself must be identical.
func TestComponentNameConsistency(t *testing.T) {
	tests := []struct {
		kind      registry.Kind
		component string
	}{
		{registry.KindSidebar, "SidebarPanel"},
		{registry.KindView, "MainView"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			req := NewRequest("my-plugin", tt.kind, t.TempDir())
			artifacts, err := Synthesize(req)
			if err != nil {
				t.Fatalf("Synthesize() error: %v", err)
			}

			manifestContent := artifacts[0].Content
			definition := artifacts[1].Content
			component := artifacts[2]

			assertContains(t, manifestContent, "component: "+tt.component)
			assertContains(t, definition, "import { "+tt.component+" } from './components/"+tt.component+"'")
			assertContains(t, definition, tt.component+",")
			if component.Path != filepath.Join("components", tt.component+".tsx") {
				t.Errorf("component path = %q", component.Path)
			}
			assertContains(t, component.Content, "export function "+tt.component+"(")
		})
	}
}

func TestSynthesizeSidebarManifest(t *testing.T) {
	req := NewRequest("style-inspector", registry.KindSidebar, t.TempDir())
	artifacts, err := Synthesize(req)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	m := artifacts[0].Content
	assertContains(t, m, "id: style-inspector")
	assertContains(t, m, `version: "1.0.0"`)
	assertContains(t, m, "name: Style Inspector")
	assertContains(t, m, "activation: onStartup")
	assertContains(t, m, "slot: sidebar")
	assertContains(t, m, "- document.read")
	assertNotContains(t, m, "provides:")
}

func TestSynthesizeServiceArtifacts(t *testing.T) {
	req := NewRequest("validation-service", registry.KindService, t.TempDir())
	artifacts, err := Synthesize(req)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	m := artifacts[0].Content
	assertContains(t, m, "activation: onService:validation-service-service")
	assertContains(t, m, "id: validation-service-service")
	assertNotContains(t, m, "slots:")

	definition := artifacts[1].Content
	assertContains(t, definition, "context.services.register('validation-service-service'")
	assertContains(t, definition, "deactivate() {}")
	// Component registration block stays empty for non-UI kinds.
	assertNotContains(t, definition, "SidebarPanel")
	assertNotContains(t, definition, "MainView")
}

func TestSynthesizeExtensionContributor(t *testing.T) {
	req := NewRequest("custom-preview", registry.KindExtensionContributor, t.TempDir())
	artifacts, err := Synthesize(req)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	m := artifacts[0].Content
	assertContains(t, m, "activation: onStartup")
	// The extensions block ships as a commented-out example.
	assertContains(t, m, "# extensions:")
	assertContains(t, m, "#     id: custom-preview.example")
	assertNotContains(t, m, "\nextensions:")

	definition := artifacts[1].Content
	assertNotContains(t, definition, "services.register")
	assertNotContains(t, definition, "import {")
}

func TestSynthesizedManifestsPassValidation(t *testing.T) {
	for _, kind := range registry.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			req := NewRequest("any-plugin", kind, t.TempDir())
			artifacts, err := Synthesize(req)
			if err != nil {
				t.Fatalf("Synthesize() error: %v", err)
			}
			result, err := manifest.Validate([]byte(artifacts[0].Content))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if !result.Valid {
				for _, issue := range result.Issues {
					t.Errorf("issue: path=%s message=%s", issue.Path, issue.Message)
				}
			}
		})
	}
}

func TestGenerateSidebar(t *testing.T) {
	root := t.TempDir()
	req := NewRequest("style-inspector", registry.KindSidebar, root)

	result, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if result.Dir != filepath.Join(root, "style-inspector") {
		t.Errorf("Dir = %q", result.Dir)
	}
	assertFiles(t, result, []string{"manifest.yaml", "index.ts", filepath.Join("components", "SidebarPanel.tsx")})
	for _, f := range result.Files {
		if _, err := os.Stat(filepath.Join(result.Dir, f)); err != nil {
			t.Errorf("missing generated file %s: %v", f, err)
		}
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestGenerateServiceHasNoComponentsDir(t *testing.T) {
	root := t.TempDir()
	req := NewRequest("validation-service", registry.KindService, root)

	result, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	assertFiles(t, result, []string{"manifest.yaml", "index.ts"})
	if _, err := os.Stat(filepath.Join(result.Dir, "components")); !os.IsNotExist(err) {
		t.Error("service plugin should not have a components directory")
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestMaterializeRefusesExistingDir(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "style-inspector")
	if err := os.MkdirAll(existing, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(existing, "keep.txt"), []byte("precious"), 0644); err != nil {
		t.Fatal(err)
	}

	req := NewRequest("style-inspector", registry.KindSidebar, root)
	_, err := Generate(req)
	if err == nil {
		t.Fatal("expected error for existing plugin directory")
	}
	if !errors.Is(err, ErrExists) {
		t.Errorf("error %v is not ErrExists", err)
	}

	// Nothing may have been written into the pre-existing directory.
	entries, err := os.ReadDir(existing)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "keep.txt" {
		t.Errorf("pre-existing directory was modified: %v", entries)
	}
}

func TestGenerateBadOutputDirFails(t *testing.T) {
	// A file where the output dir should be makes MkdirAll fail.
	root := t.TempDir()
	blocked := filepath.Join(root, "plugins")
	if err := os.WriteFile(blocked, []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	req := NewRequest("my-plugin", registry.KindSidebar, blocked)
	if _, err := Generate(req); err == nil {
		t.Fatal("expected error when output dir path is a file")
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	if len(result.Files) != len(expected) {
		t.Fatalf("got %d files %v, want %d files %v", len(result.Files), result.Files, len(expected), expected)
	}
	for i, f := range expected {
		if result.Files[i] != f {
			t.Errorf("file[%d] = %q, want %q", i, result.Files[i], f)
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}
