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

package apply

import (
	"context"

	"github.com/NVIDIA/appctl/pkg/cluster"
	"github.com/NVIDIA/appctl/pkg/manifest"
)

// Precondition runs before the cluster action for each document. A
// non-empty status ends processing of the document with that status.
type Precondition interface {
	Check(ctx context.Context, gw cluster.Gateway, doc *manifest.Document) (Status, error)
}

// CheckExists skips documents whose resource already exists. A resource
// whose existence cannot be confirmed is a cluster error.
type CheckExists struct{}

// Check implements Precondition.
func (CheckExists) Check(ctx context.Context, gw cluster.Gateway, doc *manifest.Document) (Status, error) {
	exists, err := gw.ResourceExists(ctx, doc)
	if err != nil {
		return StatusClusterError, err
	}
	if exists {
		return StatusAlreadyExists, nil
	}
	return "", nil
}

// NoPrecondition always proceeds.
type NoPrecondition struct{}

// Check implements Precondition.
func (NoPrecondition) Check(context.Context, cluster.Gateway, *manifest.Document) (Status, error) {
	return "", nil
}
