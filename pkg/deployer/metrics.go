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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	// Pod deployment metrics
	deploysTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podbox_deploys_total",
			Help: "Total number of debug pod deployments",
		},
		[]string{"status"},
	)

	// Interactive session metrics
	attachesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podbox_attaches_total",
			Help: "Total number of interactive pod sessions",
		},
		[]string{"status"},
	)
)
