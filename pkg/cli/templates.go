/*
Copyright © 2025 the podbox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/clusterops/podbox/pkg/defaults"
	"github.com/clusterops/podbox/pkg/registry"
)

func templatesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "templates",
		EnableShellCompletion: true,
		Usage:                 "Inspect and publish the pod templates",
		Commands: []*cli.Command{
			templatesListCmd(),
			templatesShowCmd(),
			templatesPushCmd(),
		},
	}
}

func templatesListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the known template purposes",
		Flags: []cli.Flag{
			templateDirFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reg, err := newTemplateRegistry(cmd)
			if err != nil {
				return err
			}
			writer, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer writer.Close()
			return writer.Serialize(ctx, reg.Purposes())
		},
	}
}

func templatesShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the manifest of one template",
		ArgsUsage: "PURPOSE",
		Flags: []cli.Flag{
			templateDirFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			purpose := cmd.Args().First()
			if purpose == "" {
				return fmt.Errorf("purpose is required")
			}
			reg, err := newTemplateRegistry(cmd)
			if err != nil {
				return err
			}
			tmpl, err := reg.Lookup(purpose)
			if err != nil {
				return err
			}
			data, err := tmpl.Render()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.Writer, string(data))
			return nil
		},
	}
}

func templatesPushCmd() *cli.Command {
	return &cli.Command{
		Name:      "push",
		Usage:     "Publish the templates as an OCI artifact",
		ArgsUsage: "oci://REGISTRY/REPOSITORY[:TAG]",
		Description: `Bundle every known template into a single OCI artifact and push it to a
registry, one YAML file per purpose. When the target has no tag, the CLI
version is used.

# Examples

  podbox templates push oci://ghcr.io/clusterops/podbox-templates:v1.0.0

  podbox templates push oci://localhost:5000/debug/templates --plain-http`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for the registry connection",
			},
			&cli.BoolFlag{
				Name:  "insecure",
				Usage: "Skip TLS certificate verification",
			},
			templateDirFlag,
			outputFlag,
			formatFlag,
		},
		Action: runTemplatesPush,
	}
}

func runTemplatesPush(ctx context.Context, cmd *cli.Command) error {
	target := cmd.Args().First()
	if target == "" {
		return fmt.Errorf("push target is required (e.g. oci://ghcr.io/org/repo:tag)")
	}

	ref, err := registry.ParseTarget(target)
	if err != nil {
		return err
	}
	if ref.Tag == "" {
		ref.Tag = version
	}

	reg, err := newTemplateRegistry(cmd)
	if err != nil {
		return err
	}

	pushCtx, cancel := context.WithTimeout(ctx, defaults.RegistryPushTimeout)
	defer cancel()

	result, err := registry.PushTemplates(pushCtx, reg, registry.PushOptions{
		Target:      ref,
		Version:     version,
		PlainHTTP:   cmd.Bool("plain-http"),
		InsecureTLS: cmd.Bool("insecure"),
	})
	if err != nil {
		return err
	}

	writer, err := newWriter(cmd)
	if err != nil {
		return err
	}
	defer writer.Close()
	return writer.Serialize(ctx, result)
}
