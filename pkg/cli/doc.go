// Package cli implements the command-line interface for the podbox tool.
//
// # Overview
//
// The podbox CLI deploys ephemeral debug pods from named templates, attaches
// interactive shells to them, and cleans them up again. It is aimed at
// operators who need a throwaway pod with the right tooling in a cluster
// namespace, without writing pod manifests by hand.
//
// # Commands
//
// deploy - Deploy a debug pod for a purpose:
//
//	podbox deploy network-debug [--auto] [-n NAMESPACE] [-m 512Mi] [--cpu 500m]
//
// Loads the template for the given purpose, applies a unique pod name, the
// selection labels, and any resource overrides, then submits the pod. With
// --auto it also waits for readiness and opens an interactive shell.
//
// cleanup - Delete debug pods:
//
//	podbox cleanup --all | --type PURPOSE [-n NAMESPACE]
//
// Deletes pods by the labels deploy stamps on them. Per-pod delete failures
// are collected into the summary; unrelated workloads are never touched.
//
// images - List or verify template images:
//
//	podbox images [--verify]
//
// templates - Inspect and publish templates:
//
//	podbox templates list
//	podbox templates show PURPOSE
//	podbox templates push oci://REGISTRY/REPOSITORY[:TAG]
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format       Output format: yaml, json, table (default: yaml)
//	--kubeconfig   Path to the kubeconfig file (default: $KUBECONFIG, ~/.kube/config)
//	--context, -c  Kubeconfig context (default: current context)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL               Set logging verbosity (debug, info, warn, error)
//	KUBECONFIG              Kubeconfig file path
//	PODBOX_NAMESPACE        Default namespace
//	PODBOX_TEMPLATE_DIR     Additional template directory
//	PODBOX_PUSHGATEWAY_URL  Prometheus Pushgateway for run metrics (optional)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/template - Template loading and pod instantiation
//   - pkg/deployer - Pod submission, readiness, interactive attach
//   - pkg/cleaner - Label-selected pod deletion
//   - pkg/registry - OCI bundle publishing and image verification
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/clusterops/podbox/pkg/cli.version=1.0.0'"
package cli
