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
	"context"
	"fmt"
	"log/slog"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/clusterops/podbox/pkg/defaults"
	apperrors "github.com/clusterops/podbox/pkg/errors"
	"github.com/clusterops/podbox/pkg/template"
)

// Deploy submits the instantiated pod manifest to the cluster. The manifest
// is expected to already carry its unique name, labels, and resource patch
// (see template.Instantiate). Returns the created pod as reported by the API.
func (d *Deployer) Deploy(ctx context.Context, pod *corev1.Pod) (*corev1.Pod, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, defaults.PodCreateTimeout)
	defer cancel()

	created, err := d.clientset.CoreV1().Pods(d.config.Namespace).
		Create(ctx, pod, metav1.CreateOptions{})
	if err != nil {
		deploysTotal.WithLabelValues(statusError).Inc()
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeSubmission,
			fmt.Sprintf("cluster rejected pod %s", pod.Name), err,
			map[string]any{
				"namespace": d.config.Namespace,
				"purpose":   pod.Labels[template.LabelType],
			})
	}

	deploysTotal.WithLabelValues(statusSuccess).Inc()
	slog.Info("pod created",
		"pod", created.Name,
		"namespace", d.config.Namespace,
		"purpose", created.Labels[template.LabelType],
		"duration_ms", time.Since(start).Milliseconds())

	return created, nil
}
