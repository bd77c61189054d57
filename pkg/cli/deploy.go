/*
Copyright © 2025 the podbox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/clusterops/podbox/pkg/defaults"
	"github.com/clusterops/podbox/pkg/deployer"
	"github.com/clusterops/podbox/pkg/metrics"
	"github.com/clusterops/podbox/pkg/registry"
	"github.com/clusterops/podbox/pkg/template"
)

// DeployResult is the command output for a non-interactive deploy.
type DeployResult struct {
	Pod       string `json:"pod" yaml:"pod"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Purpose   string `json:"purpose" yaml:"purpose"`
	Image     string `json:"image" yaml:"image"`
}

func deployCmd() *cli.Command {
	return &cli.Command{
		Name:                  "deploy",
		EnableShellCompletion: true,
		Usage:                 "Deploy an ephemeral debug pod for a given purpose",
		ArgsUsage:             "PURPOSE",
		Description: `Deploy a debug pod from a named template. The pod gets a unique name
derived from the purpose, the app/type labels the cleanup command selects on,
and optional resource overrides applied to its first container.

# Examples

Deploy a network debug pod and wait for an interactive shell:

  podbox deploy network-debug --auto

Deploy with more memory in a specific namespace and context:

  podbox deploy storage-debug -n infra -c staging -m 1Gi

List the container images the known templates use:

  podbox deploy --list-images`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "memory",
				Aliases: []string{"m"},
				Usage:   "Memory request/limit override (e.g. 512Mi)",
			},
			&cli.StringFlag{
				Name:    "ephemeral-storage",
				Aliases: []string{"e"},
				Usage:   "Ephemeral storage request/limit override (e.g. 2Gi)",
			},
			&cli.StringFlag{
				Name:  "cpu",
				Usage: "CPU request/limit override (e.g. 500m)",
			},
			&cli.BoolFlag{
				Name:  "auto",
				Usage: "Wait for the pod to become ready and attach an interactive shell",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for waiting for pod readiness",
				Value: defaults.PodReadyTimeout,
			},
			&cli.BoolFlag{
				Name:  "list-images",
				Usage: "List the container images used by the known templates and exit",
			},
			templateDirFlag,
			namespaceFlag,
			contextFlag,
			kubeconfigFlag,
			outputFlag,
			formatFlag,
		},
		Action: runDeploy,
	}
}

func runDeploy(ctx context.Context, cmd *cli.Command) error {
	defer metrics.Push(ctx)

	reg, err := newTemplateRegistry(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("list-images") {
		writer, werr := newWriter(cmd)
		if werr != nil {
			return werr
		}
		defer writer.Close()
		return writer.Serialize(ctx, reg.Images())
	}

	purpose := cmd.Args().First()
	if purpose == "" {
		return fmt.Errorf("purpose is required (known purposes: %v)", reg.Purposes())
	}

	tmpl, err := reg.Lookup(purpose)
	if err != nil {
		return err
	}
	if err := registry.ValidateImage(tmpl.Image()); err != nil {
		return err
	}

	pod, err := tmpl.Instantiate(template.Overrides{
		Memory:           cmd.String("memory"),
		EphemeralStorage: cmd.String("ephemeral-storage"),
		CPU:              cmd.String("cpu"),
	})
	if err != nil {
		return err
	}

	clientset, restConfig, err := newKubeClients(cmd)
	if err != nil {
		return err
	}

	namespace := cmd.String("namespace")
	dep := deployer.NewDeployer(clientset, deployer.Config{
		Namespace:  namespace,
		RESTConfig: restConfig,
	})

	created, err := dep.Deploy(ctx, pod)
	if err != nil {
		return err
	}

	if !cmd.Bool("auto") {
		writer, werr := newWriter(cmd)
		if werr != nil {
			return werr
		}
		defer writer.Close()
		return writer.Serialize(ctx, DeployResult{
			Pod:       created.Name,
			Namespace: namespace,
			Purpose:   purpose,
			Image:     tmpl.Image(),
		})
	}

	timeout := cmd.Duration("timeout")
	if timeout <= 0 {
		timeout = defaults.PodReadyTimeout
	}
	waitCtx, cancel := context.WithTimeout(ctx, timeout+time.Second)
	defer cancel()
	if err := dep.WaitForReady(waitCtx, created.Name, timeout); err != nil {
		return err
	}

	return dep.Attach(ctx, created.Name, "", nil)
}
