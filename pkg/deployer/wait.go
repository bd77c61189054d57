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
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/clusterops/podbox/pkg/defaults"
	apperrors "github.com/clusterops/podbox/pkg/errors"
)

// WaitForReady polls until the named pod reports phase Running, the pod
// terminates, or the timeout elapses. On timeout the pod is left in place so
// it can be inspected or cleaned up later.
func (d *Deployer) WaitForReady(ctx context.Context, podName string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaults.PodReadyTimeout
	}

	slog.Debug("waiting for pod to become ready",
		"pod", podName, "namespace", d.config.Namespace, "timeout", timeout)

	err := wait.PollUntilContextTimeout(ctx, defaults.PodReadyPollInterval, timeout, true,
		func(ctx context.Context) (bool, error) {
			pod, err := d.clientset.CoreV1().Pods(d.config.Namespace).
				Get(ctx, podName, metav1.GetOptions{})
			if err != nil {
				if apierrors.IsNotFound(err) {
					return false, apperrors.New(apperrors.ErrCodeSubmission,
						fmt.Sprintf("pod %s disappeared while waiting", podName))
				}
				// transient API errors are retried until the deadline
				slog.Debug("pod status check failed, retrying", "pod", podName, "error", err)
				return false, nil
			}

			switch pod.Status.Phase {
			case corev1.PodRunning:
				return true, nil
			case corev1.PodFailed, corev1.PodSucceeded:
				return false, apperrors.NewWithContext(apperrors.ErrCodeSubmission,
					fmt.Sprintf("pod %s terminated before becoming ready", podName),
					map[string]any{"phase": string(pod.Status.Phase)})
			default:
				return false, nil
			}
		})
	if err != nil {
		if wait.Interrupted(err) {
			return apperrors.WrapWithContext(apperrors.ErrCodeTimeout,
				fmt.Sprintf("pod %s not ready after %s, pod left running for inspection", podName, timeout),
				err, map[string]any{"namespace": d.config.Namespace})
		}
		return err
	}

	slog.Info("pod ready", "pod", podName, "namespace", d.config.Namespace)
	return nil
}
