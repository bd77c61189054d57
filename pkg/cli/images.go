/*
Copyright © 2025 the podbox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clusterops/podbox/pkg/defaults"
	"github.com/clusterops/podbox/pkg/registry"
)

func imagesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "images",
		EnableShellCompletion: true,
		Usage:                 "List or verify the container images used by the templates",
		Description: `List the container image each known template points at, optionally
resolving every image against its registry to confirm it can be pulled.

# Examples

List template images:

  podbox images

Verify that every image resolves:

  podbox images --verify`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "Resolve every image against its registry",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Maximum parallel registry lookups during verification",
				Value: defaults.RegistryVerifyConcurrency,
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for registry connections",
			},
			&cli.BoolFlag{
				Name:  "insecure",
				Usage: "Skip TLS certificate verification",
			},
			templateDirFlag,
			outputFlag,
			formatFlag,
		},
		Action: runImages,
	}
}

func runImages(ctx context.Context, cmd *cli.Command) error {
	reg, err := newTemplateRegistry(cmd)
	if err != nil {
		return err
	}

	writer, err := newWriter(cmd)
	if err != nil {
		return err
	}
	defer writer.Close()

	images := reg.Images()
	if !cmd.Bool("verify") {
		return writer.Serialize(ctx, images)
	}

	verifyCtx, cancel := context.WithTimeout(ctx, defaults.RegistryVerifyTimeout)
	defer cancel()

	results, err := registry.VerifyImages(verifyCtx, images, registry.VerifyOptions{
		Concurrency: cmd.Int("concurrency"),
		PlainHTTP:   cmd.Bool("plain-http"),
		InsecureTLS: cmd.Bool("insecure"),
	})
	if err != nil {
		return err
	}
	return writer.Serialize(ctx, results)
}
