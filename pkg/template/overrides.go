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

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	apperrors "github.com/clusterops/podbox/pkg/errors"
)

// Overrides are caller-supplied replacements for the template's resource
// defaults. Empty fields leave the template's literal quantities in place.
// Each override is applied to both requests and limits of the first
// container.
type Overrides struct {
	Memory           string
	EphemeralStorage string
	CPU              string
}

// IsZero reports whether no override was supplied.
func (o Overrides) IsZero() bool {
	return o.Memory == "" && o.EphemeralStorage == "" && o.CPU == ""
}

// resourcePatch parses the supplied overrides into quantities, failing with
// an INVALID_OVERRIDE error on the first malformed value. The returned map
// contains only the resources that were actually supplied.
func (o Overrides) resourcePatch() (map[corev1.ResourceName]resource.Quantity, error) {
	patch := map[corev1.ResourceName]resource.Quantity{}

	for _, f := range []struct {
		name  corev1.ResourceName
		value string
	}{
		{corev1.ResourceMemory, o.Memory},
		{corev1.ResourceEphemeralStorage, o.EphemeralStorage},
		{corev1.ResourceCPU, o.CPU},
	} {
		if f.value == "" {
			continue
		}
		q, err := resource.ParseQuantity(f.value)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidOverride,
				fmt.Sprintf("invalid %s quantity %q", f.name, f.value), err)
		}
		patch[f.name] = q
	}

	return patch, nil
}

// applyResourcePatch sets the given quantities on both the requests and
// limits of a container, creating the resource lists if absent.
func applyResourcePatch(c *corev1.Container, patch map[corev1.ResourceName]resource.Quantity) {
	if len(patch) == 0 {
		return
	}
	if c.Resources.Requests == nil {
		c.Resources.Requests = corev1.ResourceList{}
	}
	if c.Resources.Limits == nil {
		c.Resources.Limits = corev1.ResourceList{}
	}
	for name, q := range patch {
		c.Resources.Requests[name] = q
		c.Resources.Limits[name] = q
	}
}
