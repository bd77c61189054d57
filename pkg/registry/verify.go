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
	"context"
	"fmt"
	"log/slog"

	"github.com/distribution/reference"
	"golang.org/x/sync/errgroup"
	"oras.land/oras-go/v2/registry/remote"

	"github.com/clusterops/podbox/pkg/defaults"
	"github.com/clusterops/podbox/pkg/template"
)

// VerifyResult reports whether one template image resolves in its registry.
type VerifyResult struct {
	Purpose string `json:"purpose" yaml:"purpose"`
	Image   string `json:"image" yaml:"image"`
	Digest  string `json:"digest,omitempty" yaml:"digest,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// VerifyOptions configures registry access during verification.
type VerifyOptions struct {
	// Concurrency bounds parallel registry lookups; zero means the default.
	Concurrency int
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// VerifyImages resolves every template image against its registry and reports
// per-image results in input order. An unresolvable image is a result entry,
// not an error; the returned error covers only setup failures.
func VerifyImages(ctx context.Context, images []template.Image, opts VerifyOptions) ([]VerifyResult, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = defaults.RegistryVerifyConcurrency
	}

	results := make([]VerifyResult, len(images))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, img := range images {
		g.Go(func() error {
			results[i] = verifyOne(ctx, img, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func verifyOne(ctx context.Context, img template.Image, opts VerifyOptions) VerifyResult {
	result := VerifyResult{Purpose: img.Purpose, Image: img.Image}

	named, err := reference.ParseNormalizedNamed(img.Image)
	if err != nil {
		result.Error = fmt.Sprintf("invalid image reference: %v", err)
		return result
	}

	tag := "latest"
	if tagged, ok := named.(reference.Tagged); ok {
		tag = tagged.Tag()
	}

	repo, err := remote.NewRepository(reference.TrimNamed(named).String())
	if err != nil {
		result.Error = fmt.Sprintf("failed to initialize repository: %v", err)
		return result
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = newAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	desc, err := repo.Resolve(ctx, tag)
	if err != nil {
		slog.Debug("image resolution failed",
			"purpose", img.Purpose, "image", img.Image, "error", err)
		result.Error = err.Error()
		return result
	}

	result.Digest = desc.Digest.String()
	return result
}
