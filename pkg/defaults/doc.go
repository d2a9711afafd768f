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

// Package defaults provides centralized configuration constants for appctl.
//
// This package defines timeout values, concurrency limits, and other configuration
// defaults used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Categories
//
//   - Kubernetes timeouts: per-call bounds for API requests
//   - Apply limits: fan-out and client-side throttling for manifest operations
//   - Layout: applications root and manifest file extensions
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/appctl/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.K8sRequestTimeout)
//	defer cancel()
package defaults
