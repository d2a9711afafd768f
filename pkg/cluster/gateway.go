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

// Package cluster is the narrow boundary between appctl and the Kubernetes
// API. The deployer and remover depend on the Gateway interface only, so
// tests can substitute an in-memory implementation.
package cluster

import (
	"context"

	"github.com/NVIDIA/appctl/pkg/errors"
	"github.com/NVIDIA/appctl/pkg/k8s/node"
	"github.com/NVIDIA/appctl/pkg/manifest"
)

// ErrUnknownClusterState is returned by ResourceExists when the cluster could
// not confirm whether the resource exists. Callers must not create under
// this condition.
var ErrUnknownClusterState = errors.New(errors.ErrCodeUnknownState,
	"cluster could not confirm resource existence")

// Gateway defines the minimal cluster interactions appctl needs.
// Implementations must be safe for concurrent use.
type Gateway interface {
	// ResourceExists returns (false, nil) only when the cluster reports the
	// resource as not found.
	ResourceExists(ctx context.Context, doc *manifest.Document) (bool, error)
	// CreateResource submits the document as-is.
	CreateResource(ctx context.Context, doc *manifest.Document) error
	// DeleteResource removes the resource identified by the document.
	DeleteResource(ctx context.Context, doc *manifest.Document) error
	// ListNodes returns the cluster's nodes ordered by name.
	ListNodes(ctx context.Context) ([]node.WorkerNode, error)
}
