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

package client

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// Interface is an alias for kubernetes.Interface to allow easier mocking in tests.
// This enables using fake.NewClientset() which returns kubernetes.Interface.
type Interface = kubernetes.Interface

// BuildKubeClient creates a Kubernetes client from the given kubeconfig file
// and context name.
//
// Parameters:
//   - kubeconfig: Path to kubeconfig file. If empty, uses automatic discovery:
//     1. KUBECONFIG environment variable
//     2. ~/.kube/config (if it exists)
//     3. In-cluster configuration (service account)
//   - kubeContext: Name of the kubeconfig context to use. If empty, the
//     file's current context applies. Ignored for in-cluster configuration.
//
// Returns:
//   - *kubernetes.Clientset: The Kubernetes client
//   - *rest.Config: The rest configuration used to create the client
//   - error: Any error encountered during client creation
func BuildKubeClient(kubeconfig, kubeContext string) (*kubernetes.Clientset, *rest.Config, error) {
	config, err := buildRestConfig(kubeconfig, kubeContext)
	if err != nil {
		return nil, nil, err
	}

	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return client, config, nil
}

func buildRestConfig(kubeconfig, kubeContext string) (*rest.Config, error) {
	if kubeconfig == "" {
		kubeconfig = os.Getenv("KUBECONFIG")

		if kubeconfig == "" {
			candidate := filepath.Join(homedir.HomeDir(), ".kube", "config")
			if _, err := os.Stat(candidate); err == nil {
				kubeconfig = candidate
			}
		}
	}

	// Use InClusterConfig directly when no kubeconfig is available
	// This avoids the warning: "Neither --kubeconfig nor --master was specified"
	if kubeconfig == "" {
		if kubeContext != "" {
			return nil, fmt.Errorf("context %q requested but no kubeconfig was found", kubeContext)
		}
		config, err := rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
		return config, nil
	}

	loader := &clientcmd.ClientConfigLoadingRules{ExplicitPath: kubeconfig}
	overrides := &clientcmd.ConfigOverrides{CurrentContext: kubeContext}

	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loader, overrides).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
	}
	return config, nil
}
