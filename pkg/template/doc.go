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

// Package template implements the pod template registry and the
// template + field patch model podbox deploys from.
//
// A template is a YAML pod manifest keyed by a purpose identifier
// (e.g. "network-debug"). Templates decode into typed corev1.Pod values, so
// every field outside the patch whitelist (volumes, env, extra containers,
// security context) passes through to the cluster exactly as authored.
// The whitelist is:
//
//   - metadata.name: replaced with a unique per-invocation name
//   - metadata.labels app/type: pinned so cleanup selectors always match
//   - spec.containers[0].resources: requests and limits for memory,
//     ephemeral-storage, and cpu, when the caller supplies overrides
//
// Only the first container is patched; additional containers in a template
// keep their authored resources.
//
// The registry loads an embedded default template set and can overlay a
// directory of <purpose>.yaml files, with directory entries replacing
// built-ins of the same purpose.
package template
