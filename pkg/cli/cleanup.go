/*
Copyright © 2025 the podbox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/clusterops/podbox/pkg/cleaner"
	"github.com/clusterops/podbox/pkg/defaults"
	"github.com/clusterops/podbox/pkg/metrics"
)

func cleanupCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cleanup",
		EnableShellCompletion: true,
		Usage:                 "Delete debug pods from a namespace",
		Description: `Delete debug pods matching the labels the deploy command stamps on every
pod it creates. Unrelated workloads in the namespace are never touched.
Individual delete failures are reported in the summary without aborting the
run.

# Examples

Delete all debug pods in the default namespace:

  podbox cleanup --all

Delete only dns-debug pods in a specific namespace:

  podbox cleanup -n infra --type dns-debug`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Delete debug pods of every purpose",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "Delete only debug pods of this purpose",
			},
			&cli.FloatFlag{
				Name:  "delete-rate",
				Usage: "Maximum pod deletions per second",
				Value: defaults.CleanupDeleteRate,
			},
			namespaceFlag,
			contextFlag,
			kubeconfigFlag,
			outputFlag,
			formatFlag,
		},
		Action: runCleanup,
	}
}

func runCleanup(ctx context.Context, cmd *cli.Command) error {
	defer metrics.Push(ctx)

	purpose := cmd.String("type")
	if !cmd.Bool("all") && purpose == "" {
		return fmt.Errorf("either --all or --type is required")
	}
	if cmd.Bool("all") && purpose != "" {
		return fmt.Errorf("--all and --type are mutually exclusive")
	}

	clientset, _, err := newKubeClients(cmd)
	if err != nil {
		return err
	}

	cln := cleaner.NewCleaner(clientset, cleaner.Config{
		Namespace:  cmd.String("namespace"),
		DeleteRate: cmd.Float("delete-rate"),
	})

	runCtx, cancel := context.WithTimeout(ctx, defaults.CleanupTimeout)
	defer cancel()

	summary, cleanErr := cln.Clean(runCtx, purpose)
	if summary != nil {
		writer, werr := newWriter(cmd)
		if werr != nil {
			return werr
		}
		defer writer.Close()
		if serr := writer.Serialize(ctx, summary); serr != nil {
			return serr
		}
	}
	return cleanErr
}
