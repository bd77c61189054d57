/*
Copyright © 2025 the podbox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/clusterops/podbox/pkg/logging"
	"github.com/clusterops/podbox/pkg/serializer"
)

const (
	name           = "podbox"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags used across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
		Value:   string(serializer.FormatYAML),
	}

	kubeconfigFlag = &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "Path to the kubeconfig file",
		Sources: cli.EnvVars("KUBECONFIG"),
	}

	contextFlag = &cli.StringFlag{
		Name:    "context",
		Aliases: []string{"c"},
		Usage:   "Kubeconfig context to use (default: current context)",
	}

	namespaceFlag = &cli.StringFlag{
		Name:    "namespace",
		Aliases: []string{"n"},
		Usage:   "Kubernetes namespace",
		Sources: cli.EnvVars("PODBOX_NAMESPACE"),
		Value:   "default",
	}

	templateDirFlag = &cli.StringFlag{
		Name:    "template-dir",
		Usage:   "Directory with additional pod templates (overrides built-ins by file name)",
		Sources: cli.EnvVars("PODBOX_TEMPLATE_DIR"),
	}
)

// rootCmd assembles the full command tree.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:   "Deploy, attach to, and clean up ephemeral debug pods",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			deployCmd(),
			cleanupCmd(),
			imagesCmd(),
			templatesCmd(),
		},
	}
}

// Run executes the CLI. Called by main; SIGINT/SIGTERM cancel the context so
// in-flight cluster calls can unwind.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
