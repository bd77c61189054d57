// Package client creates Kubernetes API clients for podbox commands.
//
// Configuration discovery follows the usual chain: explicit --kubeconfig
// flag, KUBECONFIG environment variable, ~/.kube/config, then in-cluster
// service account. A kubeconfig context can be selected by name, matching
// kubectl's --context flag.
package client
