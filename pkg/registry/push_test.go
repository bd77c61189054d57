package registry

import (
	"context"
	"testing"

	apperrors "github.com/clusterops/podbox/pkg/errors"
	"github.com/clusterops/podbox/pkg/template"
)

func TestPushTemplates_MissingTarget(t *testing.T) {
	reg, err := template.NewRegistry("")
	if err != nil {
		t.Fatalf("failed to load built-in templates: %v", err)
	}

	_, err = PushTemplates(context.Background(), reg, PushOptions{})
	if err == nil {
		t.Fatal("expected error without push target")
	}
	if code := apperrors.CodeOf(err); code != apperrors.ErrCodeInvalidRequest {
		t.Errorf("expected %s, got %s", apperrors.ErrCodeInvalidRequest, code)
	}
}

func TestPushTemplates_MissingTag(t *testing.T) {
	reg, err := template.NewRegistry("")
	if err != nil {
		t.Fatalf("failed to load built-in templates: %v", err)
	}

	_, err = PushTemplates(context.Background(), reg, PushOptions{
		Target: &Reference{Registry: "ghcr.io", Repository: "clusterops/podbox-templates"},
	})
	if err == nil {
		t.Fatal("expected error without tag")
	}
	if code := apperrors.CodeOf(err); code != apperrors.ErrCodeInvalidRequest {
		t.Errorf("expected %s, got %s", apperrors.ErrCodeInvalidRequest, code)
	}
}

func TestVerifyImages_InvalidReference(t *testing.T) {
	results, err := VerifyImages(context.Background(), []template.Image{
		{Purpose: "broken", Image: "not a valid image"},
	}, VerifyOptions{})
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == "" {
		t.Error("expected error for invalid image reference")
	}
	if results[0].Digest != "" {
		t.Errorf("expected empty digest, got %q", results[0].Digest)
	}
}

func TestVerifyImages_UnreachableRegistry(t *testing.T) {
	results, err := VerifyImages(context.Background(), []template.Image{
		{Purpose: "network-debug", Image: "127.0.0.1:1/debug/network-debug:latest"},
		{Purpose: "dns-debug", Image: "127.0.0.1:1/debug/dns-debug:latest"},
	}, VerifyOptions{Concurrency: 2})
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// results come back in input order with per-image errors
	if results[0].Purpose != "network-debug" || results[1].Purpose != "dns-debug" {
		t.Errorf("results out of order: %+v", results)
	}
	for _, r := range results {
		if r.Error == "" {
			t.Errorf("expected resolution error for %s", r.Purpose)
		}
	}
}
