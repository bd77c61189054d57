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

package defaults

import "time"

// Deploy timeouts for pod lifecycle operations.
const (
	// PodCreateTimeout is the timeout for submitting a pod manifest.
	PodCreateTimeout = 30 * time.Second

	// PodReadyTimeout is the default timeout for waiting for a deployed
	// pod to reach Running. On expiry the pod is left in place for
	// manual inspection.
	PodReadyTimeout = 2 * time.Minute

	// PodReadyPollInterval is the poll interval for the readiness loop.
	PodReadyPollInterval = 500 * time.Millisecond
)

// Cleanup timeouts and pacing for batch pod deletion.
const (
	// CleanupTimeout bounds a full cleanup batch (list + deletes).
	CleanupTimeout = 2 * time.Minute

	// CleanupDeleteRate is the sustained delete request rate against the
	// API server during cleanup.
	CleanupDeleteRate = 10.0

	// CleanupDeleteBurst is the delete request burst allowance.
	CleanupDeleteBurst = 5
)

// Registry timeouts for OCI operations.
const (
	// RegistryPushTimeout bounds a template bundle push.
	RegistryPushTimeout = 2 * time.Minute

	// RegistryVerifyTimeout bounds a full image verification pass.
	RegistryVerifyTimeout = 60 * time.Second

	// RegistryVerifyConcurrency caps concurrent image resolutions.
	RegistryVerifyConcurrency = 4
)

// Metrics timeouts for Pushgateway delivery.
const (
	// MetricsPushTimeout bounds the post-run metrics push.
	MetricsPushTimeout = 10 * time.Second
)
