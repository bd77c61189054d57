package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPush_NoGatewayConfigured(t *testing.T) {
	t.Setenv(GatewayEnvVar, "")

	// must be a silent no-op
	Push(context.Background())
}

func TestPush_SendsToGateway(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv(GatewayEnvVar, srv.URL)
	Push(context.Background())

	if !strings.Contains(gotPath, "/job/podbox") {
		t.Errorf("expected push to job podbox, got path %q", gotPath)
	}
}

func TestPush_GatewayDown(t *testing.T) {
	t.Setenv(GatewayEnvVar, "http://127.0.0.1:1")

	// failures are logged, never fatal
	Push(context.Background())
}
