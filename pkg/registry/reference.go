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

package registry

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/clusterops/podbox/pkg/errors"
)

// URIScheme prefixes OCI registry targets (e.g. "oci://ghcr.io/org/repo:tag").
const URIScheme = "oci://"

// Reference is a parsed OCI registry target for a template bundle.
type Reference struct {
	// Registry is the registry host (e.g. "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the repository path (e.g. "clusterops/podbox-templates").
	Repository string
	// Tag is the bundle tag. Empty means the caller should apply a default.
	Tag string
}

// ParseTarget parses an oci:// target string into its components.
func ParseTarget(target string) (*Reference, error) {
	if !strings.HasPrefix(target, URIScheme) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("target must start with %s, got %q", URIScheme, target))
	}

	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			"invalid OCI reference", err)
	}

	var tag string
	if tagged, ok := ref.(reference.Tagged); ok {
		tag = tagged.Tag()
	}

	return &Reference{
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
		Tag:        tag,
	}, nil
}

// String returns the full target string with the oci:// scheme.
func (r *Reference) String() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s%s/%s", URIScheme, r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s%s/%s:%s", URIScheme, r.Registry, r.Repository, r.Tag)
}

// ImageReference returns the Docker-style reference without the scheme.
func (r *Reference) ImageReference() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// ValidateImage checks that an image string from a pod template is a valid
// normalized reference.
func ValidateImage(image string) error {
	if image == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "image reference is empty")
	}
	if _, err := reference.ParseNormalizedNamed(image); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid image reference %q", image), err)
	}
	return nil
}
