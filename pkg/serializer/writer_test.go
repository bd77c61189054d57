package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testSummary struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Deleted   int    `json:"deleted" yaml:"deleted"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testSummary{
		{Namespace: "default", Deleted: 3},
		{Namespace: "kube-system", Deleted: 0},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Verify it's valid JSON
	var result []testSummary
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Namespace != "default" || result[0].Deleted != 3 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testSummary{Namespace: "default", Deleted: 2}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testSummary
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if result != data {
		t.Errorf("Expected %+v, got %+v", data, result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testSummary{Namespace: "default", Deleted: 2}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "FIELD") || !strings.Contains(out, "VALUE") {
		t.Errorf("table output missing header: %q", out)
	}
	if !strings.Contains(out, "Namespace") || !strings.Contains(out, "default") {
		t.Errorf("table output missing flattened field: %q", out)
	}
}

func TestWriter_UnknownFormatDefaultsToYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("bogus"), &buf)

	if err := writer.Serialize(context.Background(), testSummary{Namespace: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testSummary
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("fallback output should be YAML: %v", err)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	writer := NewFileWriterOrStdout(FormatYAML, path)
	if err := writer.Serialize(context.Background(), testSummary{Namespace: "ns", Deleted: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !strings.Contains(string(content), "namespace: ns") {
		t.Errorf("unexpected file content: %q", content)
	}

	// Empty path falls back to stdout and Close is a no-op
	stdout := NewFileWriterOrStdout(FormatJSON, "")
	if err := stdout.Close(); err != nil {
		t.Errorf("Close on stdout writer should not error: %v", err)
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Fatalf("expected 3 formats, got %d", len(formats))
	}
	for _, f := range formats {
		if Format(f).IsUnknown() {
			t.Errorf("supported format %q reported unknown", f)
		}
	}
}
