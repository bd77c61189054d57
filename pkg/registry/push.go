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
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	apperrors "github.com/clusterops/podbox/pkg/errors"
	"github.com/clusterops/podbox/pkg/template"
)

// ArtifactType is the media type for podbox template bundles.
const ArtifactType = "application/vnd.clusterops.podbox.templates"

// PushOptions configures a template bundle push.
type PushOptions struct {
	// Target is the parsed OCI reference to push to.
	Target *Reference
	// Version is stamped into the bundle annotations.
	Version string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PushResult describes a pushed bundle.
type PushResult struct {
	// Digest is the SHA256 digest of the pushed manifest.
	Digest string `json:"digest" yaml:"digest"`
	// Reference is the full image reference (registry/repository:tag).
	Reference string `json:"reference" yaml:"reference"`
	// Templates lists the purposes included in the bundle.
	Templates []string `json:"templates" yaml:"templates"`
}

// PushTemplates renders every template in the registry into a staging
// directory and pushes the directory as a single OCI artifact, one YAML file
// per purpose.
func PushTemplates(ctx context.Context, reg *template.Registry, opts PushOptions) (*PushResult, error) {
	if opts.Target == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			"push target is required")
	}
	if opts.Target.Tag == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			"tag is required to push a template bundle")
	}

	stageDir, err := os.MkdirTemp("", "podbox-templates-*")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to create staging directory", err)
	}
	defer os.RemoveAll(stageDir)

	purposes := reg.Purposes()
	for _, purpose := range purposes {
		tmpl, lookupErr := reg.Lookup(purpose)
		if lookupErr != nil {
			return nil, lookupErr
		}
		data, renderErr := tmpl.Render()
		if renderErr != nil {
			return nil, renderErr
		}
		path := filepath.Join(stageDir, purpose+".yaml")
		if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
				fmt.Sprintf("failed to stage template %s", purpose), writeErr)
		}
	}

	fs, err := file.New(stageDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to create file store", err)
	}
	defer func() { _ = fs.Close() }()
	fs.TarReproducible = true

	layerDesc, err := fs.Add(ctx, ".", ociv1.MediaTypeImageLayerGzip, stageDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to add templates to store", err)
	}

	manifestDesc, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{
			Layers: []ociv1.Descriptor{layerDesc},
			ManifestAnnotations: map[string]string{
				"org.opencontainers.image.version": opts.Version,
				"org.opencontainers.image.title":   "podbox debug pod templates",
			},
		})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to pack manifest", err)
	}

	if tagErr := fs.Tag(ctx, manifestDesc, opts.Target.Tag); tagErr != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to tag manifest in local store", tagErr)
	}

	repo, err := remote.NewRepository(
		fmt.Sprintf("%s/%s", opts.Target.Registry, opts.Target.Repository))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			"failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = newAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	slog.Info("pushing template bundle",
		"reference", opts.Target.ImageReference(), "templates", len(purposes))

	desc, err := oras.Copy(ctx, fs, opts.Target.Tag, repo, opts.Target.Tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal,
			"failed to push template bundle to registry", err)
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: opts.Target.ImageReference(),
		Templates: purposes,
	}, nil
}

// newAuthClient builds an ORAS auth client backed by the local Docker
// credential store.
func newAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, _ := credentials.NewStoreFromDocker(credentials.StoreOptions{})

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	return &auth.Client{
		Client:     &http.Client{Transport: transport},
		Cache:      auth.NewCache(),
		Credential: credentials.Credential(credStore),
	}
}
