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
)

// Remover deletes the resources of an application.
type Remover struct {
	engine
}

// NewRemover returns a Remover reading manifests from source.
func NewRemover(source ManifestSource, gw cluster.Gateway, opts ...Option) *Remover {
	return &Remover{engine: newEngine(source, gw, opts...)}
}

// Remove deletes every resource of app. There is no existence check, so a
// resource that is already gone is reported as a cluster error.
func (r *Remover) Remove(ctx context.Context, app string) (*Report, error) {
	return r.run(ctx, app, nil, step{
		op:           OperationDelete,
		precondition: NoPrecondition{},
		action:       r.gateway.DeleteResource,
		done:         StatusDeleted,
	})
}
