/*
Copyright © 2025 the podbox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"

	"github.com/clusterops/podbox/pkg/k8s/client"
	"github.com/clusterops/podbox/pkg/serializer"
	"github.com/clusterops/podbox/pkg/template"
)

// parseFormat resolves the output format flag.
func parseFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// newWriter builds a serializer from the shared format and output flags.
func newWriter(cmd *cli.Command) (*serializer.Writer, error) {
	outFormat, err := parseFormat(cmd)
	if err != nil {
		return nil, err
	}
	return serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")), nil
}

// newTemplateRegistry loads the built-in templates plus any overlay directory.
func newTemplateRegistry(cmd *cli.Command) (*template.Registry, error) {
	return template.NewRegistry(cmd.String("template-dir"))
}

// newKubeClients builds a clientset and REST config from the shared
// kubeconfig and context flags.
func newKubeClients(cmd *cli.Command) (*kubernetes.Clientset, *rest.Config, error) {
	return client.BuildKubeClient(cmd.String("kubeconfig"), cmd.String("context"))
}
