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

package metrics

import (
	"context"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/clusterops/podbox/pkg/defaults"
)

const (
	// GatewayEnvVar names the Pushgateway address; push is a no-op when unset.
	GatewayEnvVar = "PODBOX_PUSHGATEWAY_URL"

	jobName = "podbox"
)

// Push sends all registered metrics to the Pushgateway configured through
// GatewayEnvVar. Pushes are best effort: failures are logged, never returned,
// so a flaky gateway cannot break a cleanup or deploy run.
func Push(ctx context.Context) {
	gateway := os.Getenv(GatewayEnvVar)
	if gateway == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.MetricsPushTimeout)
	defer cancel()

	hostname, _ := os.Hostname()
	err := push.New(gateway, jobName).
		Gatherer(prometheus.DefaultGatherer).
		Grouping("instance", hostname).
		PushContext(ctx)
	if err != nil {
		slog.Warn("metrics push failed", "gateway", gateway, "error", err)
		return
	}
	slog.Debug("metrics pushed", "gateway", gateway)
}
