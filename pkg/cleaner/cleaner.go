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
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/clusterops/podbox/pkg/defaults"
	apperrors "github.com/clusterops/podbox/pkg/errors"
	"github.com/clusterops/podbox/pkg/k8s/client"
	"github.com/clusterops/podbox/pkg/template"
)

// Config holds the cleaner settings.
type Config struct {
	// Namespace scopes the listing and deletion.
	Namespace string

	// DeleteRate caps deletions per second; zero means the default.
	DeleteRate float64

	// DeleteBurst is the rate limiter burst; zero means the default.
	DeleteBurst int
}

// Cleaner removes debug pods from a namespace by label selector.
type Cleaner struct {
	clientset client.Interface
	config    Config
	limiter   *rate.Limiter
}

// NewCleaner creates a cleaner for the given clientset and config.
func NewCleaner(clientset client.Interface, config Config) *Cleaner {
	r := config.DeleteRate
	if r <= 0 {
		r = defaults.CleanupDeleteRate
	}
	b := config.DeleteBurst
	if b <= 0 {
		b = defaults.CleanupDeleteBurst
	}
	return &Cleaner{
		clientset: clientset,
		config:    config,
		limiter:   rate.NewLimiter(rate.Limit(r), b),
	}
}

// DeleteError records a single pod that could not be deleted.
type DeleteError struct {
	Pod     string `json:"pod" yaml:"pod"`
	Message string `json:"message" yaml:"message"`
}

// Summary reports the outcome of one cleanup run.
type Summary struct {
	Namespace string        `json:"namespace" yaml:"namespace"`
	Selector  string        `json:"selector" yaml:"selector"`
	Deleted   []string      `json:"deleted" yaml:"deleted"`
	Errors    []DeleteError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// selectorFor builds the label selector matching debug pods, optionally
// narrowed to a single purpose.
func selectorFor(purpose string) string {
	set := labels.Set{template.LabelApp: template.AppName}
	if purpose != "" {
		set[template.LabelType] = purpose
	}
	return labels.SelectorFromSet(set).String()
}

// Clean lists debug pods matching the selector and deletes them one by one,
// pacing deletions through the rate limiter. Pods already gone count as
// deleted. Individual delete failures are collected in the summary instead of
// aborting the run; the returned error is non-nil only when listing fails or
// at least one delete failed.
func (c *Cleaner) Clean(ctx context.Context, purpose string) (*Summary, error) {
	selector := selectorFor(purpose)
	summary := &Summary{
		Namespace: c.config.Namespace,
		Selector:  selector,
		Deleted:   []string{},
	}

	pods, err := c.clientset.CoreV1().Pods(c.config.Namespace).
		List(ctx, metav1.ListOptions{LabelSelector: selector})
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeDelete,
			"failed to list debug pods", err,
			map[string]any{"namespace": c.config.Namespace, "selector": selector})
	}

	slog.Info("cleaning debug pods",
		"namespace", c.config.Namespace, "selector", selector, "count", len(pods.Items))

	for i := range pods.Items {
		name := pods.Items[i].Name

		if err := c.limiter.Wait(ctx); err != nil {
			return summary, apperrors.Wrap(apperrors.ErrCodeDelete,
				"cleanup interrupted", err)
		}

		err := c.clientset.CoreV1().Pods(c.config.Namespace).
			Delete(ctx, name, metav1.DeleteOptions{})
		switch {
		case err == nil, apierrors.IsNotFound(err):
			summary.Deleted = append(summary.Deleted, name)
			podsDeletedTotal.Inc()
			slog.Debug("pod deleted", "pod", name, "namespace", c.config.Namespace)
		default:
			summary.Errors = append(summary.Errors, DeleteError{
				Pod:     name,
				Message: err.Error(),
			})
			deleteErrorsTotal.Inc()
			slog.Warn("failed to delete pod",
				"pod", name, "namespace", c.config.Namespace, "error", err)
		}
	}

	if len(summary.Errors) > 0 {
		return summary, apperrors.NewWithContext(apperrors.ErrCodeDelete,
			fmt.Sprintf("%d of %d pods could not be deleted",
				len(summary.Errors), len(pods.Items)),
			map[string]any{"namespace": c.config.Namespace, "selector": selector})
	}
	return summary, nil
}
