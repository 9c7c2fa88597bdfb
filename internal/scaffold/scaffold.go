package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/schematic-labs/schematic/internal/branding"
	"github.com/schematic-labs/schematic/internal/manifest"
	"github.com/schematic-labs/schematic/internal/registry"
)

//go:embed templates
var templateFS embed.FS

// Version stamped into every generated manifest.
const DefaultVersion = "1.0.0"

// ErrExists is returned when the target plugin directory is already present.
// The check runs before anything is written, so a conflicting directory is
// never touched.
var ErrExists = errors.New("plugin directory already exists")

// Request describes one scaffold invocation. Built once from command-line
// input and immutable afterwards.
type Request struct {
	Name      string        // raw plugin name from the command line
	ID        string        // resolved identifier (currently equal to Name)
	Kind      registry.Kind // selected template kind
	OutputDir string        // plugins root the new directory is created under
}

// NewRequest builds a Request for a validated plugin name.
func NewRequest(name string, kind registry.Kind, outputDir string) *Request {
	return &Request{
		Name:      name,
		ID:        name,
		Kind:      kind,
		OutputDir: outputDir,
	}
}

// Artifact is one generated file: a path relative to the plugin directory
// and its full textual content.
type Artifact struct {
	Path    string
	Content string
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Dir      string   // plugin directory that was created
	Files    []string // written files, relative to Dir, in write order
	Warnings []string // non-fatal problems found in the generated manifest
}

// DisplayName derives the human display name from a plugin identifier by
// splitting on hyphens and title-casing each word:
// "my-awesome-plugin" → "My Awesome Plugin".
func DisplayName(id string) string {
	caser := cases.Title(language.English)
	words := strings.Split(id, "-")
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// templateData holds the variables available to the artifact templates.
// Slot, Component, and ServiceID all come from the kind's registry
// descriptor, so the manifest slot block, the definition registration
// block, and the component file cannot drift apart.
type templateData struct {
	ID           string
	DisplayName  string
	Description  string
	Version      string
	Capabilities []string
	Activation   string
	Slot         string
	Component    string
	ServiceID    string
	Extensions   bool
}

// Synthesize renders the artifact set for a request. Sidebar and view
// kinds produce manifest + definition + one component; service and
// extension-contributor kinds produce manifest + definition only.
func Synthesize(req *Request) ([]Artifact, error) {
	d := registry.Lookup(req.Kind)

	data := templateData{
		ID:           req.ID,
		DisplayName:  DisplayName(req.ID),
		Description:  fmt.Sprintf("%s %s: %s", branding.DisplayName(), strings.ToLower(d.Title), req.ID),
		Version:      DefaultVersion,
		Capabilities: d.Capabilities,
		Activation:   registry.Activation(req.Kind, req.ID),
		Slot:         d.Slot,
		Component:    d.Component,
		Extensions:   req.Kind == registry.KindExtensionContributor,
	}
	if req.Kind == registry.KindService {
		data.ServiceID = registry.ServiceID(req.ID)
	}

	var artifacts []Artifact

	manifestContent, err := render("manifest.yaml.tmpl", data)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, Artifact{Path: manifest.FileName, Content: manifestContent})

	definition, err := render("index.ts.tmpl", data)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, Artifact{Path: "index.ts", Content: definition})

	// The component template is keyed by the descriptor's component name,
	// and the output file is named after it too.
	if d.Component != "" {
		component, err := render(d.Component+".tsx.tmpl", data)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{
			Path:    filepath.Join("components", d.Component+".tsx"),
			Content: component,
		})
	}

	return artifacts, nil
}

// render parses and executes one embedded template.
func render(name string, data templateData) (string, error) {
	tmplBytes, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Materialize creates the plugin directory under the request's output dir
// and writes every artifact. The existence check runs before any directory
// or file is created; a pre-existing plugin directory fails with ErrExists
// and zero writes.
func Materialize(req *Request, artifacts []Artifact) (*Result, error) {
	dir := filepath.Join(req.OutputDir, req.ID)

	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrExists, dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating plugin directory %s: %w", dir, err)
	}

	result := &Result{Dir: dir}

	for _, a := range artifacts {
		target := filepath.Join(dir, a.Path)
		if parent := filepath.Dir(target); parent != dir {
			if err := os.MkdirAll(parent, 0755); err != nil {
				return nil, fmt.Errorf("creating %s: %w", parent, err)
			}
		}
		if err := os.WriteFile(target, []byte(a.Content), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}
		result.Files = append(result.Files, a.Path)
	}

	// Validate the generated manifest; problems are warnings, not failures.
	valResult, valErr := manifest.ValidateFile(filepath.Join(dir, manifest.FileName))
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	return result, nil
}

// Generate synthesizes and materializes a plugin in one call.
func Generate(req *Request) (*Result, error) {
	artifacts, err := Synthesize(req)
	if err != nil {
		return nil, err
	}
	return Materialize(req, artifacts)
}
