package registry

import (
	"testing"

	apperrors "github.com/clusterops/podbox/pkg/errors"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantErr    bool
		registry   string
		repository string
		tag        string
	}{
		{
			name:       "full reference",
			target:     "oci://ghcr.io/clusterops/podbox-templates:v1.2.0",
			registry:   "ghcr.io",
			repository: "clusterops/podbox-templates",
			tag:        "v1.2.0",
		},
		{
			name:       "no tag",
			target:     "oci://ghcr.io/clusterops/podbox-templates",
			registry:   "ghcr.io",
			repository: "clusterops/podbox-templates",
			tag:        "",
		},
		{
			name:       "registry with port",
			target:     "oci://localhost:5000/debug/templates:latest",
			registry:   "localhost:5000",
			repository: "debug/templates",
			tag:        "latest",
		},
		{
			name:    "missing scheme",
			target:  "ghcr.io/clusterops/podbox-templates:v1",
			wantErr: true,
		},
		{
			name:    "invalid reference",
			target:  "oci://ghcr.io/UPPER CASE/repo:v1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseTarget(tt.target)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTarget(%q) expected error, got nil", tt.target)
				}
				if code := apperrors.CodeOf(err); code != apperrors.ErrCodeInvalidRequest {
					t.Errorf("expected %s, got %s", apperrors.ErrCodeInvalidRequest, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTarget(%q) failed: %v", tt.target, err)
			}
			if ref.Registry != tt.registry {
				t.Errorf("registry = %q, want %q", ref.Registry, tt.registry)
			}
			if ref.Repository != tt.repository {
				t.Errorf("repository = %q, want %q", ref.Repository, tt.repository)
			}
			if ref.Tag != tt.tag {
				t.Errorf("tag = %q, want %q", ref.Tag, tt.tag)
			}
		})
	}
}

func TestReference_Strings(t *testing.T) {
	ref := &Reference{Registry: "ghcr.io", Repository: "clusterops/podbox-templates", Tag: "v1"}
	if got := ref.String(); got != "oci://ghcr.io/clusterops/podbox-templates:v1" {
		t.Errorf("String() = %q", got)
	}
	if got := ref.ImageReference(); got != "ghcr.io/clusterops/podbox-templates:v1" {
		t.Errorf("ImageReference() = %q", got)
	}

	ref.Tag = ""
	if got := ref.String(); got != "oci://ghcr.io/clusterops/podbox-templates" {
		t.Errorf("String() without tag = %q", got)
	}
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name    string
		image   string
		wantErr bool
	}{
		{name: "fully qualified", image: "ghcr.io/clusterops/network-debug:latest"},
		{name: "docker hub shorthand", image: "busybox"},
		{name: "with digest", image: "ghcr.io/clusterops/network-debug@sha256:deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"},
		{name: "empty", image: "", wantErr: true},
		{name: "spaces", image: "bad image", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.image)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateImage(%q) expected error, got nil", tt.image)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateImage(%q) failed: %v", tt.image, err)
			}
		})
	}
}
