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

package template

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"

	apperrors "github.com/clusterops/podbox/pkg/errors"
)

// Pod labels shared by every debug pod. Cleanup selectors depend on them:
// LabelApp/AppName identify all podbox-managed pods, LabelType carries the
// purpose so type-scoped cleanup works.
const (
	LabelApp  = "app"
	LabelType = "type"
	AppName   = "debug-pod"
)

// Template is a baseline pod manifest for a given purpose. It holds defaults
// for all fields except the pod name and the first container's resources,
// which are patched per invocation. Everything else passes through to the
// cluster unmodified.
type Template struct {
	// Purpose is the identifier naming the debug image/template pair.
	Purpose string
	// Source describes where the template was loaded from
	// (a file path, or "embedded" for built-ins).
	Source string

	pod corev1.Pod
}

// Parse decodes a YAML pod manifest into a Template for the given purpose
// and validates the fixed shape podbox depends on.
func Parse(purpose, source string, data []byte) (*Template, error) {
	var pod corev1.Pod
	if err := yaml.UnmarshalStrict(data, &pod); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("template %q is not a valid pod manifest", purpose), err)
	}

	t := &Template{
		Purpose: purpose,
		Source:  source,
		pod:     pod,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate enforces the invariants of the template shape. In particular
// labels.type must equal the purpose so cleanup selectors match what
// deploy submits.
func (t *Template) validate() error {
	if t.pod.Kind != "Pod" {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("template %q: kind must be Pod, got %q", t.Purpose, t.pod.Kind),
			map[string]any{"source": t.Source})
	}
	if t.pod.APIVersion != "v1" {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("template %q: apiVersion must be v1, got %q", t.Purpose, t.pod.APIVersion),
			map[string]any{"source": t.Source})
	}
	if len(t.pod.Spec.Containers) == 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("template %q: no containers", t.Purpose),
			map[string]any{"source": t.Source})
	}
	if typ := t.pod.Labels[LabelType]; typ != t.Purpose {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("template %q: labels.%s is %q, must equal the purpose", t.Purpose, LabelType, typ),
			map[string]any{"source": t.Source})
	}
	return nil
}

// Image returns the image of the first container.
func (t *Template) Image() string {
	return t.pod.Spec.Containers[0].Image
}

// Pod returns a deep copy of the underlying manifest.
func (t *Template) Pod() *corev1.Pod {
	return t.pod.DeepCopy()
}

// Instantiate produces a pod ready for submission: a unique name, the debug
// pod labels, and any resource overrides applied to the first container.
// All other manifest fields pass through unmodified. Returns an
// INVALID_OVERRIDE error before touching the manifest if any override
// quantity is malformed.
func (t *Template) Instantiate(overrides Overrides) (*corev1.Pod, error) {
	patch, err := overrides.resourcePatch()
	if err != nil {
		return nil, err
	}

	pod := t.pod.DeepCopy()
	pod.Name = UniqueName(t.Purpose)
	if pod.Labels == nil {
		pod.Labels = map[string]string{}
	}
	pod.Labels[LabelApp] = AppName
	pod.Labels[LabelType] = t.Purpose

	// Only the first container's resources are patched. Multi-container
	// templates keep their remaining containers untouched.
	applyResourcePatch(&pod.Spec.Containers[0], patch)

	return pod, nil
}

// Render serializes the template back to YAML.
func (t *Template) Render() ([]byte, error) {
	out, err := yaml.Marshal(&t.pod)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			fmt.Sprintf("failed to render template %q", t.Purpose), err)
	}
	return out, nil
}

// UniqueName returns a pod name unique per invocation: the purpose with a
// short random suffix. Stays well under the 63 character DNS label limit
// for any reasonable purpose name.
func UniqueName(purpose string) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s-%s", purpose, suffix)
}
