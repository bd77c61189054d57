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

package cleaner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Cleanup metrics
	podsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "podbox_pods_deleted_total",
			Help: "Total number of debug pods deleted during cleanup",
		},
	)

	deleteErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "podbox_delete_errors_total",
			Help: "Total number of pod delete failures during cleanup",
		},
	)
)
