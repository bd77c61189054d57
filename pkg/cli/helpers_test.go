// Copyright (c) 2025, the podbox authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	apperrors "github.com/clusterops/podbox/pkg/errors"
	"github.com/clusterops/podbox/pkg/serializer"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestRootCmd_CommandTree(t *testing.T) {
	root := rootCmd()

	want := []string{"deploy", "cleanup", "images", "templates"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands {
			if c.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestDeployCmd_RequiresPurpose(t *testing.T) {
	err := deployCmd().Run(context.Background(), []string{"deploy"})
	if err == nil {
		t.Fatal("expected error when purpose is missing")
	}
}

func TestDeployCmd_UnknownPurposeFailsBeforeCluster(t *testing.T) {
	// no kubeconfig is available in this test; the lookup must fail first
	t.Setenv("KUBECONFIG", "/nonexistent/kubeconfig")

	err := deployCmd().Run(context.Background(), []string{"deploy", "no-such-purpose"})
	if err == nil {
		t.Fatal("expected error for unknown purpose")
	}
	if code := apperrors.CodeOf(err); code != apperrors.ErrCodeTemplateNotFound {
		t.Errorf("expected %s, got %s (err: %v)", apperrors.ErrCodeTemplateNotFound, code, err)
	}
}

func TestCleanupCmd_RequiresScope(t *testing.T) {
	err := cleanupCmd().Run(context.Background(), []string{"cleanup"})
	if err == nil {
		t.Fatal("expected error without --all or --type")
	}

	err = cleanupCmd().Run(context.Background(),
		[]string{"cleanup", "--all", "--type", "dns-debug"})
	if err == nil {
		t.Fatal("expected error for --all combined with --type")
	}
}

func TestTemplatesPushCmd_RequiresTarget(t *testing.T) {
	err := templatesPushCmd().Run(context.Background(), []string{"push"})
	if err == nil {
		t.Fatal("expected error when push target is missing")
	}

	err = templatesPushCmd().Run(context.Background(),
		[]string{"push", "ghcr.io/no/scheme:v1"})
	if err == nil {
		t.Fatal("expected error for target without oci:// scheme")
	}
}
