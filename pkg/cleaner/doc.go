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

// Package cleaner removes debug pods from a namespace. Pods are found by the
// label selector the deployer stamps on every pod it creates, deletions are
// rate limited, and per-pod failures are collected into a summary rather than
// aborting the run.
package cleaner
