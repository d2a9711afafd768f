// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package defaults

import "time"

// Kubernetes timeouts for K8s API operations.
const (
	// K8sRequestTimeout bounds a single existence check, create, or delete
	// call so that one unresponsive resource cannot hang the whole batch.
	K8sRequestTimeout = 30 * time.Second

	// K8sNodeListTimeout is the timeout for enumerating cluster nodes.
	K8sNodeListTimeout = 30 * time.Second

	// K8sClientQPS is the default client-side rate for cluster writes.
	K8sClientQPS = 20.0

	// K8sClientBurst is the default burst for cluster writes.
	K8sClientBurst = 40
)

// Apply limits for per-manifest fan-out.
const (
	// ApplyConcurrency is the default number of manifests processed at once.
	ApplyConcurrency = 8

	// ApplyMaxConcurrency caps user supplied concurrency.
	ApplyMaxConcurrency = 64
)

// CLI timeouts for command-line operations.
const (
	// CLIOperationTimeout is the default timeout for a full deploy or delete run.
	CLIOperationTimeout = 10 * time.Minute
)

// Layout defaults.
const (
	// AppsDir is the default applications root, relative to the working directory.
	AppsDir = "apps"

	// Namespace is used for namespaced manifests that do not declare one.
	Namespace = "default"
)

// ManifestExtensions lists the file extensions loaded as manifests.
var ManifestExtensions = []string{".yaml", ".yml", ".json"}
