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

package deployer

import (
	"io"

	"k8s.io/client-go/rest"

	"github.com/clusterops/podbox/pkg/k8s/client"
)

// Config holds the configuration for deploying debug pods.
type Config struct {
	// Namespace is the target namespace for all operations.
	Namespace string

	// RESTConfig is required for Attach; Deploy and WaitForReady work
	// without it (e.g. in tests against a fake clientset).
	RESTConfig *rest.Config

	// Attach session streams. Nil values default to the process's
	// stdin/stdout.
	In  io.Reader
	Out io.Writer
}

// Deployer submits debug pods to a cluster and manages the session lifecycle:
// create, wait for Running, optionally attach an interactive shell.
type Deployer struct {
	clientset client.Interface
	config    Config
}

// NewDeployer creates a new Deployer with the given configuration.
func NewDeployer(clientset client.Interface, config Config) *Deployer {
	return &Deployer{
		clientset: clientset,
		config:    config,
	}
}
