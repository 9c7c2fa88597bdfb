package manifest

import (
	"strings"
	"testing"
)

func TestValidateFile_ValidManifests(t *testing.T) {
	validFiles := []string{
		"valid-sidebar.yaml",
		"valid-view.yaml",
		"valid-service.yaml",
		"valid-extension.yaml",
	}

	for _, file := range validFiles {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file     string
		wantPath string
	}{
		{"invalid-missing-id.yaml", ""},
		{"invalid-bad-id.yaml", "/id"},
		{"invalid-bad-activation.yaml", "/activation"},
		{"invalid-bad-component.yaml", "/slots/0/component"},
		{"invalid-leading-zero-version.yaml", "/version"},
		{"invalid-orphan-activation.yaml", "/activation"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid, got valid")
			}
			if len(result.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			if tt.wantPath == "" {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no issue at path %q; got %+v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestValidate_UnknownField(t *testing.T) {
	data := []byte(`id: extra-field
version: "1.0.0"
name: Extra Field
description: Carries a field the schema does not know
capabilities:
  - document.read
activation: onStartup
entrypoint: index.ts
`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestValidate_IssueMessagesAreSpecific(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-orphan-activation.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid")
	}
	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Message, "ghost-service-service") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an issue naming the missing service, got %+v", result.Issues)
	}
}

func TestValidate_MalformedYAML(t *testing.T) {
	_, err := Validate([]byte("id: [unclosed"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
