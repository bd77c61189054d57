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
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/clusterops/podbox/pkg/errors"
)

//go:embed templates/*.yaml
var builtins embed.FS

// builtinSource marks templates loaded from the embedded set.
const builtinSource = "embedded"

// Registry holds the loaded templates keyed by purpose.
type Registry struct {
	templates map[string]*Template
}

// Image describes the purpose-to-image mapping of one template.
type Image struct {
	Purpose string `json:"purpose" yaml:"purpose"`
	Image   string `json:"image" yaml:"image"`
	Source  string `json:"source" yaml:"source"`
}

// NewRegistry loads the built-in templates and, if dir is non-empty, overlays
// templates from that directory. A directory template with the same purpose
// as a built-in replaces it. Each file must be named <purpose>.yaml.
func NewRegistry(dir string) (*Registry, error) {
	r := &Registry{templates: map[string]*Template{}}

	if err := r.loadEmbedded(); err != nil {
		return nil, err
	}
	if dir != "" {
		if err := r.loadDir(dir); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) loadEmbedded() error {
	entries, err := fs.ReadDir(builtins, "templates")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to read embedded templates", err)
	}

	for _, entry := range entries {
		purpose := purposeFromFileName(entry.Name())
		data, err := builtins.ReadFile("templates/" + entry.Name())
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal,
				fmt.Sprintf("failed to read embedded template %q", entry.Name()), err)
		}
		t, err := Parse(purpose, builtinSource, data)
		if err != nil {
			return err
		}
		r.templates[purpose] = t
	}
	return nil
}

func (r *Registry) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to read template directory %q", dir), err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to read template %q", path), err)
		}
		purpose := purposeFromFileName(name)
		t, err := Parse(purpose, path, data)
		if err != nil {
			return err
		}
		r.templates[purpose] = t
	}
	return nil
}

// Lookup returns the template for a purpose, or a TEMPLATE_NOT_FOUND error
// listing the known purposes. The lookup never touches the cluster.
func (r *Registry) Lookup(purpose string) (*Template, error) {
	t, ok := r.templates[purpose]
	if !ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeTemplateNotFound,
			fmt.Sprintf("no template for purpose %q", purpose),
			map[string]any{"known": r.Purposes()})
	}
	return t, nil
}

// Purposes returns the sorted list of purposes with a template, each exactly once.
func (r *Registry) Purposes() []string {
	purposes := make([]string, 0, len(r.templates))
	for p := range r.templates {
		purposes = append(purposes, p)
	}
	sort.Strings(purposes)
	return purposes
}

// Images returns the purpose-to-image inventory, sorted by purpose.
func (r *Registry) Images() []Image {
	images := make([]Image, 0, len(r.templates))
	for _, p := range r.Purposes() {
		t := r.templates[p]
		images = append(images, Image{
			Purpose: p,
			Image:   t.Image(),
			Source:  t.Source,
		})
	}
	return images
}

func purposeFromFileName(name string) string {
	name = strings.TrimSuffix(name, ".yaml")
	return strings.TrimSuffix(name, ".yml")
}
